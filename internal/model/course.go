package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CourseCode        string     `gorm:"size:20;uniqueIndex;not null" json:"course_code"`
	CourseName        string     `gorm:"size:150;not null" json:"course_name"`
	Description       *string    `gorm:"type:text" json:"description,omitempty"`
	Credits           int        `gorm:"not null" json:"credits"`
	Department        string     `gorm:"size:100;not null" json:"department"`
	InstructorID      *uuid.UUID `gorm:"type:uuid" json:"instructor_id,omitempty"`
	MaxStudents       *int       `json:"max_students,omitempty"`
	CurrentEnrollment int        `gorm:"default:0" json:"current_enrollment"`
	IsActive          bool       `gorm:"default:true" json:"is_active"`
	Semester          *string    `gorm:"size:20" json:"semester,omitempty"`
	AcademicYear      *string    `gorm:"size:20" json:"academic_year,omitempty"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
