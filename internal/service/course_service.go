package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/smartcampus-id/campus-backend/internal/dto"
	"github.com/smartcampus-id/campus-backend/internal/model"
	"github.com/smartcampus-id/campus-backend/internal/repository"
	"github.com/smartcampus-id/campus-backend/pkg/apperror"
)

type CourseService interface {
	Create(ctx context.Context, input dto.CreateCourseInput) (*model.Course, error)
	GetAll(ctx context.Context, filter dto.CourseFilter) ([]*model.Course, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error)
	GetByCourseCode(ctx context.Context, code string) (*model.Course, error)
	Update(ctx context.Context, id uuid.UUID, input dto.UpdateCourseInput) (*model.Course, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) (*model.Course, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*model.Course, error)
	Enroll(ctx context.Context, id uuid.UUID) (*model.Course, error)
	Drop(ctx context.Context, id uuid.UUID) (*model.Course, error)
}

type courseService struct {
	repo repository.CourseRepository
}

func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) Create(ctx context.Context, input dto.CreateCourseInput) (*model.Course, error) {
	taken, err := s.repo.ExistsByCourseCode(ctx, input.CourseCode)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.Duplicate("course_code", input.CourseCode)
	}

	now := time.Now()
	course := &model.Course{
		CourseCode:   input.CourseCode,
		CourseName:   input.CourseName,
		Description:  input.Description,
		Credits:      input.Credits,
		Department:   input.Department,
		InstructorID: input.InstructorID,
		MaxStudents:  input.MaxStudents,
		IsActive:     true,
		Semester:     input.Semester,
		AcademicYear: input.AcademicYear,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

func (s *courseService) GetAll(ctx context.Context, filter dto.CourseFilter) ([]*model.Course, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *courseService) GetByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	return s.findCourse(ctx, id)
}

func (s *courseService) GetByCourseCode(ctx context.Context, code string) (*model.Course, error) {
	course, err := s.repo.FindByCourseCode(ctx, code)
	if err != nil {
		return nil, notFoundOr(err, "course", code)
	}
	return course, nil
}

func (s *courseService) Update(ctx context.Context, id uuid.UUID, input dto.UpdateCourseInput) (*model.Course, error) {
	course, err := s.findCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.CourseName != nil {
		course.CourseName = *input.CourseName
	}
	if input.Description != nil {
		course.Description = input.Description
	}
	if input.Credits != nil {
		course.Credits = *input.Credits
	}
	if input.Department != nil {
		course.Department = *input.Department
	}
	if input.InstructorID != nil {
		course.InstructorID = input.InstructorID
	}
	if input.MaxStudents != nil {
		course.MaxStudents = input.MaxStudents
	}
	if input.Semester != nil {
		course.Semester = input.Semester
	}
	if input.AcademicYear != nil {
		course.AcademicYear = input.AcademicYear
	}
	if input.IsActive != nil {
		course.IsActive = *input.IsActive
	}

	course.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

func (s *courseService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findCourse(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *courseService) Activate(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	return s.setActive(ctx, id, true)
}

func (s *courseService) Deactivate(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	return s.setActive(ctx, id, false)
}

func (s *courseService) Enroll(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	course, err := s.findCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	if !course.IsActive {
		return nil, fmt.Errorf("course %s is not active: %w", course.CourseCode, apperror.ErrBadRequest)
	}
	if course.MaxStudents != nil && course.CurrentEnrollment >= *course.MaxStudents {
		return nil, apperror.ErrCourseFull
	}

	course.CurrentEnrollment++
	course.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

func (s *courseService) Drop(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	course, err := s.findCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	if course.CurrentEnrollment <= 0 {
		return nil, fmt.Errorf("course %s has no enrollment to drop: %w", course.CourseCode, apperror.ErrBadRequest)
	}

	course.CurrentEnrollment--
	course.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

func (s *courseService) setActive(ctx context.Context, id uuid.UUID, active bool) (*model.Course, error) {
	course, err := s.findCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	course.IsActive = active
	course.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

func (s *courseService) findCourse(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "course", id.String())
	}
	return course, nil
}
