package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleStudent UserRole = "STUDENT"
	RoleTeacher UserRole = "TEACHER"
	RoleAdmin   UserRole = "ADMIN"
)

// Valid reports whether the role is one of the known campus roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username    string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	FirstName   string    `gorm:"size:100;not null" json:"first_name"`
	LastName    string    `gorm:"size:100;not null" json:"last_name"`
	PhoneNumber *string   `gorm:"size:30" json:"phone_number,omitempty"`
	Role        UserRole  `gorm:"size:20;not null" json:"role"`
	StudentID   *string   `gorm:"size:20;uniqueIndex" json:"student_id,omitempty"`
	EmployeeID  *string   `gorm:"size:20;uniqueIndex" json:"employee_id,omitempty"`
	Department  *string   `gorm:"size:100" json:"department,omitempty"`
	YearOfStudy *int      `json:"year_of_study,omitempty"`
	DateOfBirth *string   `gorm:"size:50" json:"date_of_birth,omitempty"`
	Address     *string   `gorm:"type:text" json:"address,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
