// file: internals/features/notifications/dto/notification_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"smartcollege_backend/internals/constants"
	model "smartcollege_backend/internals/features/notifications/model"
)

type CreateNotificationRequest struct {
	Title    string         `json:"title" validate:"required,min=3,max=150"`
	Body     string         `json:"body" validate:"required"`
	Audience string         `json:"audience" validate:"omitempty,oneof=ALL SUPER_ADMIN COLLEGE_ADMIN TEACHER STUDENT"`
	Payload  datatypes.JSON `json:"payload"`
}

func (r *CreateNotificationRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Body = strings.TrimSpace(r.Body)
	r.Audience = strings.ToUpper(strings.TrimSpace(r.Audience))
	if r.Audience == "" {
		r.Audience = model.AudienceAll
	}
}

func (r *CreateNotificationRequest) ToModel(collegeID, createdBy uuid.UUID) *model.NotificationModel {
	return &model.NotificationModel{
		CollegeID: collegeID,
		Title:     r.Title,
		Body:      r.Body,
		Audience:  r.Audience,
		Payload:   r.Payload,
		CreatedBy: createdBy,
	}
}

// AudienceForRole returns the audience values visible to a role.
func AudienceForRole(role string) []string {
	if constants.IsValidRole(role) {
		return []string{model.AudienceAll, strings.ToUpper(role)}
	}
	return []string{model.AudienceAll}
}
