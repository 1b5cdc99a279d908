package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcampus-id/campus-backend/internal/model"
	"github.com/smartcampus-id/campus-backend/internal/repository"
)

// Without redis the stats service reads straight from the store.
func TestStatServiceWithoutRedis(t *testing.T) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	userSvc := NewUserService(userRepo)
	courseSvc := NewCourseService(courseRepo)
	statSvc := NewStatService(userRepo, courseRepo, nil)

	ctx := context.Background()

	_, err := userSvc.Create(ctx, studentInput("jdoe", "j@x.edu"))
	require.NoError(t, err)
	_, err = courseSvc.Create(ctx, courseInput("CS101"))
	require.NoError(t, err)

	totalUsers, err := statSvc.GetTotalUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), totalUsers)

	students, err := statSvc.GetTotalUsersByRole(ctx, model.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, int64(1), students)

	teachers, err := statSvc.GetTotalUsersByRole(ctx, model.RoleTeacher)
	require.NoError(t, err)
	assert.Equal(t, int64(0), teachers)

	totalCourses, err := statSvc.GetTotalCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), totalCourses)
}
