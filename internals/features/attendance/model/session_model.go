// file: internals/features/attendance/model/session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/*
=========================================================

	Enums (mirror of attendance_session_status_enum in DB)
	=========================================================
*/
type SessionStatus string

const (
	SessionOpen   SessionStatus = "OPEN"
	SessionClosed SessionStatus = "CLOSED"
)

// AttendanceSessionModel is one lecture's attendance-taking window. It is
// created OPEN and can only ever move to CLOSED; CLOSED is terminal.
type AttendanceSessionModel struct {
	// PK
	AttendanceSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_session_id" json:"attendance_session_id"`

	// Tenant guard
	AttendanceSessionCollegeID uuid.UUID `gorm:"type:uuid;not null;column:attendance_session_college_id" json:"attendance_session_college_id"`

	// Relations
	AttendanceSessionCourseID  uuid.UUID `gorm:"type:uuid;not null;column:attendance_session_course_id" json:"attendance_session_course_id"`
	AttendanceSessionSubjectID uuid.UUID `gorm:"type:uuid;not null;column:attendance_session_subject_id" json:"attendance_session_subject_id"`
	AttendanceSessionTeacherID uuid.UUID `gorm:"type:uuid;not null;column:attendance_session_teacher_id" json:"attendance_session_teacher_id"`

	// Occurrence
	AttendanceSessionLectureDate   time.Time `gorm:"type:date;not null;column:attendance_session_lecture_date" json:"attendance_session_lecture_date"`
	AttendanceSessionLectureNumber int       `gorm:"not null;default:1;column:attendance_session_lecture_number" json:"attendance_session_lecture_number"`

	// Lifecycle
	AttendanceSessionStatus   SessionStatus `gorm:"type:varchar(10);not null;default:'OPEN';column:attendance_session_status" json:"attendance_session_status"`
	AttendanceSessionClosedAt *time.Time    `gorm:"type:timestamptz;column:attendance_session_closed_at" json:"attendance_session_closed_at,omitempty"`

	// Audit & soft delete
	AttendanceSessionCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:attendance_session_created_at" json:"attendance_session_created_at"`
	AttendanceSessionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:attendance_session_updated_at" json:"attendance_session_updated_at"`
	AttendanceSessionDeletedAt gorm.DeletedAt `gorm:"column:attendance_session_deleted_at;index" json:"attendance_session_deleted_at,omitempty"`
}

func (AttendanceSessionModel) TableName() string { return "attendance_sessions" }

/*
=========================================================

	State machine
	=========================================================
*/

func (s *AttendanceSessionModel) IsOpen() bool {
	return s.AttendanceSessionStatus == SessionOpen
}

// CanMark: records may be created or overwritten only while OPEN.
func (s *AttendanceSessionModel) CanMark() bool { return s.IsOpen() }

// CanDelete: the session itself may be removed only while OPEN.
func (s *AttendanceSessionModel) CanDelete() bool { return s.IsOpen() }

// CanFetchRoster: the raw student roster is served only while OPEN; a CLOSED
// session exposes nothing beyond its already-recorded rows.
func (s *AttendanceSessionModel) CanFetchRoster() bool { return s.IsOpen() }

// Close transitions OPEN→CLOSED. Idempotent: closing an already-CLOSED
// session reports changed=false and leaves the record untouched. There is no
// reverse transition.
func (s *AttendanceSessionModel) Close(now time.Time) (changed bool) {
	if !s.IsOpen() {
		return false
	}
	s.AttendanceSessionStatus = SessionClosed
	s.AttendanceSessionClosedAt = &now
	return true
}
