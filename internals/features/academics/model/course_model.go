// file: internals/features/academics/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CollegeID    uuid.UUID `gorm:"type:uuid;not null;index" json:"college_id"`
	DepartmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"department_id" validate:"required"`
	Name         string    `gorm:"size:150;not null" json:"name" validate:"required,min=2,max=150"`
	Code         string    `gorm:"size:20;not null" json:"code" validate:"required,min=2,max=20"`
	// duration in semesters
	Semesters int       `gorm:"not null;default:6" json:"semesters" validate:"gte=1,lte=12"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (CourseModel) TableName() string {
	return "courses"
}
