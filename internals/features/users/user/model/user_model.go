// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	"smartcollege_backend/internals/constants"
)

// UserModel maps the users table. CollegeID is nil only for SUPER_ADMIN.
type UserModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FullName  string     `gorm:"size:100;not null" json:"full_name" validate:"required,min=3,max=100"`
	Email     string     `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password  string     `gorm:"not null" json:"-" validate:"required,min=8"`
	Role      string     `gorm:"type:varchar(20);not null;default:'STUDENT'" json:"role"`
	CollegeID *uuid.UUID `gorm:"type:uuid;index" json:"college_id,omitempty"`
	Phone     *string    `gorm:"size:20" json:"phone,omitempty"`
	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues fills defaults before validation.
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.RoleStudent
	}
}
