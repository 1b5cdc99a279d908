package main

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/smartcampus-id/campus-backend/internal/config"
	"github.com/smartcampus-id/campus-backend/internal/model"
	"github.com/smartcampus-id/campus-backend/internal/server"
	"github.com/smartcampus-id/campus-backend/pkg/database"
	"github.com/smartcampus-id/campus-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.LogLevel, cfg.AppEnv)

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		redisClient = redis.NewClient(opts)
	} else {
		log.Warn().Msg("REDIS_URL not set, stats caching disabled")
	}

	srv := server.NewServer(cfg, db, redisClient, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.AppEnv).Msg("starting server")
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Course{},
	)
}
