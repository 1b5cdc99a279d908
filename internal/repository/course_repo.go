package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/smartcampus-id/campus-backend/internal/dto"
	"github.com/smartcampus-id/campus-backend/internal/model"
	"gorm.io/gorm"
)

type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	Save(ctx context.Context, course *model.Course) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Course, error)
	FindByCourseCode(ctx context.Context, code string) (*model.Course, error)
	FindAll(ctx context.Context, filter dto.CourseFilter) ([]*model.Course, error)
	ExistsByCourseCode(ctx context.Context, code string) (bool, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepository) Save(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *courseRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindByCourseCode(ctx context.Context, code string) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).Where("course_code = ?", code).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindAll(ctx context.Context, filter dto.CourseFilter) ([]*model.Course, error) {
	query := r.db.WithContext(ctx)

	if filter.Department != "" {
		query = query.Where("department = ?", filter.Department)
	}
	if filter.Semester != "" {
		query = query.Where("semester = ?", filter.Semester)
	}
	if filter.InstructorID != "" {
		query = query.Where("instructor_id = ?", filter.InstructorID)
	}

	var courses []*model.Course
	if err := query.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepository) ExistsByCourseCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Course{}).
		Where("course_code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *courseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Course{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *courseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Course{}, "id = ?", id).Error
}
