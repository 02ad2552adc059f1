// file: internals/features/settings/model/setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SettingModel is one per-college configuration entry. Keys are unique
// within a college.
type SettingModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CollegeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_setting_college_key" json:"college_id"`
	Key       string    `gorm:"size:100;not null;uniqueIndex:uq_setting_college_key" json:"key" validate:"required,min=1,max=100"`
	Value     string    `gorm:"type:text;not null" json:"value"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SettingModel) TableName() string {
	return "college_settings"
}
