// file: internals/features/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NotificationModel is a broadcast to an audience within one college.
// Audience is a role name, or "ALL" for everyone in the college.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CollegeID uuid.UUID `gorm:"type:uuid;not null;index" json:"college_id"`

	Title    string         `gorm:"size:150;not null" json:"title" validate:"required,min=3,max=150"`
	Body     string         `gorm:"type:text;not null" json:"body" validate:"required"`
	Audience string         `gorm:"size:20;not null;default:'ALL'" json:"audience"`
	Payload  datatypes.JSON `gorm:"type:jsonb" json:"payload,omitempty"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

const AudienceAll = "ALL"
