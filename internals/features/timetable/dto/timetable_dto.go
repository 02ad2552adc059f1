// file: internals/features/timetable/dto/timetable_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "smartcollege_backend/internals/features/timetable/model"
)

type CreateEntryRequest struct {
	CourseID  uuid.UUID `json:"course_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
	DayOfWeek int       `json:"day_of_week" validate:"required,gte=1,lte=7"`
	Period    int       `json:"period" validate:"required,gte=1,lte=12"`
	Semester  int       `json:"semester" validate:"gte=1,lte=12"`
	Room      *string   `json:"room" validate:"omitempty,max=50"`
}

func (r *CreateEntryRequest) Normalize() {
	if r.Semester == 0 {
		r.Semester = 1
	}
	if r.Room != nil {
		trimmed := strings.TrimSpace(*r.Room)
		r.Room = &trimmed
	}
}

func (r *CreateEntryRequest) ToModel(collegeID uuid.UUID) *model.TimetableEntryModel {
	return &model.TimetableEntryModel{
		CollegeID: collegeID,
		CourseID:  r.CourseID,
		SubjectID: r.SubjectID,
		TeacherID: r.TeacherID,
		DayOfWeek: model.DayOfWeek(r.DayOfWeek),
		Period:    r.Period,
		Semester:  r.Semester,
		Room:      r.Room,
	}
}

type UpdateEntryRequest struct {
	SubjectID *uuid.UUID `json:"subject_id"`
	TeacherID *uuid.UUID `json:"teacher_id"`
	DayOfWeek *int       `json:"day_of_week" validate:"omitempty,gte=1,lte=7"`
	Period    *int       `json:"period" validate:"omitempty,gte=1,lte=12"`
	Room      *string    `json:"room" validate:"omitempty,max=50"`
}

func (r *UpdateEntryRequest) Apply(m *model.TimetableEntryModel) {
	if r.SubjectID != nil {
		m.SubjectID = *r.SubjectID
	}
	if r.TeacherID != nil {
		m.TeacherID = *r.TeacherID
	}
	if r.DayOfWeek != nil {
		m.DayOfWeek = model.DayOfWeek(*r.DayOfWeek)
	}
	if r.Period != nil {
		m.Period = *r.Period
	}
	if r.Room != nil {
		trimmed := strings.TrimSpace(*r.Room)
		m.Room = &trimmed
	}
}
