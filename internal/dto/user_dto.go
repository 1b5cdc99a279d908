package dto

import (
	"github.com/smartcampus-id/campus-backend/internal/model"
)

type CreateUserInput struct {
	Username    string         `json:"username" binding:"required,min=3,max=50"`
	Email       string         `json:"email" binding:"required,email"`
	FirstName   string         `json:"first_name" binding:"required"`
	LastName    string         `json:"last_name" binding:"required"`
	PhoneNumber *string        `json:"phone_number"`
	Role        model.UserRole `json:"role" binding:"required,oneof=STUDENT TEACHER ADMIN"`
	StudentID   *string        `json:"student_id"`
	EmployeeID  *string        `json:"employee_id"`
	Department  *string        `json:"department"`
	YearOfStudy *int           `json:"year_of_study"`
	DateOfBirth *string        `json:"date_of_birth"`
	Address     *string        `json:"address"`
}

// UpdateUserInput carries the partial-update fields. Only non-nil
// fields overwrite the stored record; role, username, student_id and
// employee_id have no update path.
type UpdateUserInput struct {
	Email       *string `json:"email" binding:"omitempty,email"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	Department  *string `json:"department"`
	YearOfStudy *int    `json:"year_of_study"`
	DateOfBirth *string `json:"date_of_birth"`
	Address     *string `json:"address"`
	IsActive    *bool   `json:"is_active"`
}

type UserPageFilter struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}

type SearchFilter struct {
	Q string `form:"q" binding:"required"`
}

type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalItems  int64 `json:"total_items"`
	Limit       int   `json:"limit"`
}

type PaginatedUserResponse struct {
	Data []*model.User  `json:"data"`
	Meta PaginationMeta `json:"meta"`
}
