package server

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/smartcampus-id/campus-backend/internal/config"
	"github.com/smartcampus-id/campus-backend/internal/handler"
	"github.com/smartcampus-id/campus-backend/internal/middleware"
	"github.com/smartcampus-id/campus-backend/internal/repository"
	"github.com/smartcampus-id/campus-backend/internal/service"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, log zerolog.Logger) *Server {
	userRepo := repository.NewUserRepository(db)
	userSvc := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userSvc)

	courseRepo := repository.NewCourseRepository(db)
	courseSvc := service.NewCourseService(courseRepo)
	courseHandler := handler.NewCourseHandler(courseSvc)

	statSvc := service.NewStatService(userRepo, courseRepo, redisClient)
	statHandler := handler.NewStatHandler(statSvc)

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))

	setupCORS(router, cfg.AllowedOrigins)

	api := router.Group("/api")

	users := api.Group("/users")
	{
		users.GET("", userHandler.GetAllUsers)
		users.GET("/paginated", userHandler.GetUsersPage)
		users.GET("/search", userHandler.SearchUsers)
		users.GET("/username/:username", userHandler.GetUserByUsername)
		users.GET("/email/:email", userHandler.GetUserByEmail)
		users.GET("/student/:studentId", userHandler.GetUserByStudentID)
		users.GET("/role/:role", userHandler.GetUsersByRole)
		users.GET("/department/:department", userHandler.GetUsersByDepartment)
		users.GET("/active/role/:role", userHandler.GetActiveUsersByRole)
		users.GET("/active/department/:department", userHandler.GetActiveUsersByDepartment)
		users.GET("/state/:state", userHandler.GetUsersByActive)
		users.GET("/:id", userHandler.GetUserByID)
		users.POST("", userHandler.CreateUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
		users.PUT("/:id/activate", userHandler.ActivateUser)
		users.PUT("/:id/deactivate", userHandler.DeactivateUser)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", courseHandler.GetAllCourses)
		courses.GET("/code/:code", courseHandler.GetCourseByCode)
		courses.GET("/:id", courseHandler.GetCourseByID)
		courses.POST("", courseHandler.CreateCourse)
		courses.PUT("/:id", courseHandler.UpdateCourse)
		courses.DELETE("/:id", courseHandler.DeleteCourse)
		courses.PUT("/:id/activate", courseHandler.ActivateCourse)
		courses.PUT("/:id/deactivate", courseHandler.DeactivateCourse)
		courses.POST("/:id/enroll", courseHandler.EnrollStudent)
		courses.POST("/:id/drop", courseHandler.DropStudent)
	}

	stats := api.Group("/stats")
	{
		stats.GET("/users/count", statHandler.GetTotalUsers)
		stats.GET("/users/count/:role", statHandler.GetTotalUsersByRole)
		stats.GET("/courses/count", statHandler.GetTotalCourses)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	origins := []string{"http://localhost:4200"}
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
