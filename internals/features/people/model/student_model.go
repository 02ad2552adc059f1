// file: internals/features/people/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel is the academic profile behind a STUDENT user account.
type StudentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CollegeID uuid.UUID `gorm:"type:uuid;not null;index" json:"college_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id" validate:"required"`

	RollNumber    string `gorm:"size:30;not null" json:"roll_number" validate:"required,min=1,max=30"`
	Semester      int    `gorm:"not null;default:1" json:"semester" validate:"gte=1,lte=12"`
	AdmissionYear int    `gorm:"not null" json:"admission_year" validate:"gte=2000,lte=2100"`

	GuardianName  *string `gorm:"size:100" json:"guardian_name,omitempty"`
	GuardianPhone *string `gorm:"size:20" json:"guardian_phone,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}
