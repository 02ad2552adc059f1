// file: internals/features/people/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeacherModel is the staff profile behind a TEACHER user account.
type TeacherModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CollegeID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"college_id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	DepartmentID *uuid.UUID `gorm:"type:uuid;index" json:"department_id,omitempty"`

	Designation   string     `gorm:"size:100;not null;default:'Lecturer'" json:"designation"`
	Qualification *string    `gorm:"size:150" json:"qualification,omitempty"`
	JoinedAt      *time.Time `gorm:"type:date" json:"joined_at,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
