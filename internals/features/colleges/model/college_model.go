// file: internals/features/colleges/model/college_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CollegeModel is the tenant root: every scoped table carries college_id.
type CollegeModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string         `gorm:"size:150;not null" json:"name" validate:"required,min=3,max=150"`
	Code      string         `gorm:"size:20;unique;not null" json:"code" validate:"required,min=3,max=20"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	Email     *string        `gorm:"size:255" json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string        `gorm:"size:20" json:"phone,omitempty"`
	IsActive  bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (CollegeModel) TableName() string {
	return "colleges"
}
