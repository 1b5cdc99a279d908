package dto

import "github.com/google/uuid"

type CreateCourseInput struct {
	CourseCode   string     `json:"course_code" binding:"required,max=20"`
	CourseName   string     `json:"course_name" binding:"required"`
	Description  *string    `json:"description"`
	Credits      int        `json:"credits" binding:"required,min=1"`
	Department   string     `json:"department" binding:"required"`
	InstructorID *uuid.UUID `json:"instructor_id"`
	MaxStudents  *int       `json:"max_students" binding:"omitempty,min=1"`
	Semester     *string    `json:"semester"`
	AcademicYear *string    `json:"academic_year"`
}

type UpdateCourseInput struct {
	CourseName   *string    `json:"course_name"`
	Description  *string    `json:"description"`
	Credits      *int       `json:"credits" binding:"omitempty,min=1"`
	Department   *string    `json:"department"`
	InstructorID *uuid.UUID `json:"instructor_id"`
	MaxStudents  *int       `json:"max_students" binding:"omitempty,min=1"`
	Semester     *string    `json:"semester"`
	AcademicYear *string    `json:"academic_year"`
	IsActive     *bool      `json:"is_active"`
}

type CourseFilter struct {
	Department   string `form:"department"`
	Semester     string `form:"semester"`
	InstructorID string `form:"instructor_id"`
}
