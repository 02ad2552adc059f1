// file: internals/features/academics/model/department_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CollegeID uuid.UUID      `gorm:"type:uuid;not null;index" json:"college_id"`
	Name      string         `gorm:"size:150;not null" json:"name" validate:"required,min=2,max=150"`
	Code      string         `gorm:"size:20;not null" json:"code" validate:"required,min=2,max=20"`
	HeadName  *string        `gorm:"size:100" json:"head_name,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}
