// file: internals/features/academics/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CollegeID uuid.UUID `gorm:"type:uuid;not null;index" json:"college_id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id" validate:"required"`
	Name      string    `gorm:"size:150;not null" json:"name" validate:"required,min=2,max=150"`
	Code      string    `gorm:"size:20;not null" json:"code" validate:"required,min=2,max=20"`
	Semester  int       `gorm:"not null;default:1" json:"semester" validate:"gte=1,lte=12"`

	// assigned teacher (users.id with role TEACHER), optional until staffing is set
	TeacherID *uuid.UUID `gorm:"type:uuid;index" json:"teacher_id,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
