// file: internals/features/attendance/dto/attendance_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	model "smartcollege_backend/internals/features/attendance/model"
)

/* =========================================================
   Requests
   ========================================================= */

type CreateSessionRequest struct {
	CourseID      uuid.UUID `json:"course_id" validate:"required"`
	SubjectID     uuid.UUID `json:"subject_id" validate:"required"`
	LectureDate   string    `json:"lecture_date" validate:"required"` // YYYY-MM-DD
	LectureNumber int       `json:"lecture_number" validate:"gte=1,lte=20"`
}

func (r *CreateSessionRequest) Normalize() {
	r.LectureDate = strings.TrimSpace(r.LectureDate)
	if r.LectureNumber == 0 {
		r.LectureNumber = 1
	}
}

func (r *CreateSessionRequest) ParseDate() (time.Time, error) {
	return time.ParseInLocation("2006-01-02", r.LectureDate, time.Local)
}

func (r *CreateSessionRequest) ToModel(collegeID, teacherID uuid.UUID, date time.Time) *model.AttendanceSessionModel {
	return &model.AttendanceSessionModel{
		AttendanceSessionCollegeID:     collegeID,
		AttendanceSessionCourseID:      r.CourseID,
		AttendanceSessionSubjectID:     r.SubjectID,
		AttendanceSessionTeacherID:     teacherID,
		AttendanceSessionLectureDate:   date,
		AttendanceSessionLectureNumber: r.LectureNumber,
		AttendanceSessionStatus:        model.SessionOpen,
	}
}

type MarkEntry struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=PRESENT ABSENT"`
}

type MarkRequest struct {
	Records []MarkEntry `json:"records" validate:"required,min=1,dive"`
}

func (r *MarkRequest) Normalize() {
	for i := range r.Records {
		r.Records[i].Status = strings.ToUpper(strings.TrimSpace(r.Records[i].Status))
	}
}

func (r *MarkRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// StudentIDs returns the distinct student IDs in the request, in first-seen
// order.
func (r *MarkRequest) StudentIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(r.Records))
	out := make([]uuid.UUID, 0, len(r.Records))
	for _, e := range r.Records {
		if _, ok := seen[e.StudentID]; ok {
			continue
		}
		seen[e.StudentID] = struct{}{}
		out = append(out, e.StudentID)
	}
	return out
}

/* =========================================================
   Responses
   ========================================================= */

type SessionResponse struct {
	ID            uuid.UUID           `json:"id"`
	CourseID      uuid.UUID           `json:"course_id"`
	SubjectID     uuid.UUID           `json:"subject_id"`
	TeacherID     uuid.UUID           `json:"teacher_id"`
	LectureDate   string              `json:"lecture_date"`
	LectureNumber int                 `json:"lecture_number"`
	Status        model.SessionStatus `json:"status"`
	ClosedAt      *time.Time          `json:"closed_at,omitempty"`
	Summary       *model.Summary      `json:"summary,omitempty"`
}

func ToSessionResponse(m *model.AttendanceSessionModel, summary *model.Summary) SessionResponse {
	return SessionResponse{
		ID:            m.AttendanceSessionID,
		CourseID:      m.AttendanceSessionCourseID,
		SubjectID:     m.AttendanceSessionSubjectID,
		TeacherID:     m.AttendanceSessionTeacherID,
		LectureDate:   m.AttendanceSessionLectureDate.Format("2006-01-02"),
		LectureNumber: m.AttendanceSessionLectureNumber,
		Status:        m.AttendanceSessionStatus,
		ClosedAt:      m.AttendanceSessionClosedAt,
		Summary:       summary,
	}
}

type RecordResponse struct {
	StudentID uuid.UUID          `json:"student_id"`
	Status    model.RecordStatus `json:"status"`
	MarkedAt  time.Time          `json:"marked_at"`
}

func ToRecordResponses(rows []model.AttendanceRecordModel) []RecordResponse {
	out := make([]RecordResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, RecordResponse{
			StudentID: r.AttendanceRecordStudentID,
			Status:    r.AttendanceRecordStatus,
			MarkedAt:  r.AttendanceRecordMarkedAt,
		})
	}
	return out
}
