package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/smartcampus-id/campus-backend/internal/model"
	"github.com/smartcampus-id/campus-backend/internal/repository"
)

const statsCacheTTL = 30 * time.Second

type StatService interface {
	GetTotalUsers(ctx context.Context) (int64, error)
	GetTotalUsersByRole(ctx context.Context, role model.UserRole) (int64, error)
	GetTotalCourses(ctx context.Context) (int64, error)
}

type statService struct {
	userRepo   repository.UserRepository
	courseRepo repository.CourseRepository
	rdb        *redis.Client
}

// NewStatService builds the stats service. rdb may be nil; totals then
// always come straight from the store.
func NewStatService(userRepo repository.UserRepository, courseRepo repository.CourseRepository, rdb *redis.Client) StatService {
	return &statService{
		userRepo:   userRepo,
		courseRepo: courseRepo,
		rdb:        rdb,
	}
}

func (s *statService) GetTotalUsers(ctx context.Context) (int64, error) {
	return s.cached(ctx, "stats:users:total", func() (int64, error) {
		return s.userRepo.Count(ctx)
	})
}

func (s *statService) GetTotalUsersByRole(ctx context.Context, role model.UserRole) (int64, error) {
	key := fmt.Sprintf("stats:users:role:%s", role)
	return s.cached(ctx, key, func() (int64, error) {
		return s.userRepo.CountByRole(ctx, role)
	})
}

func (s *statService) GetTotalCourses(ctx context.Context) (int64, error) {
	return s.cached(ctx, "stats:courses:total", func() (int64, error) {
		return s.courseRepo.Count(ctx)
	})
}

// cached is a cache-aside over redis with a short TTL. Redis failures
// fall through to the store; the stats endpoints never depend on it.
func (s *statService) cached(ctx context.Context, key string, load func() (int64, error)) (int64, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
			if value, parseErr := strconv.ParseInt(raw, 10, 64); parseErr == nil {
				return value, nil
			}
		}
	}

	value, err := load()
	if err != nil {
		return 0, err
	}

	if s.rdb != nil {
		s.rdb.Set(ctx, key, strconv.FormatInt(value, 10), statsCacheTTL)
	}

	return value, nil
}
