// file: internals/features/attendance/model/record_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type RecordStatus string

const (
	RecordPresent RecordStatus = "PRESENT"
	RecordAbsent  RecordStatus = "ABSENT"
)

func ValidRecordStatus(s string) bool {
	return s == string(RecordPresent) || s == string(RecordAbsent)
}

// AttendanceRecordModel is one student's outcome within a session. Unique per
// (session, student): marking again overwrites rather than duplicating.
// Rows become read-only the moment the parent session closes; that invariant
// is enforced at the controller, the table has no state of its own.
type AttendanceRecordModel struct {
	AttendanceRecordID        uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`
	AttendanceRecordSessionID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_record_session_student;column:attendance_record_session_id" json:"attendance_record_session_id"`
	AttendanceRecordStudentID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_record_session_student;column:attendance_record_student_id" json:"attendance_record_student_id"`
	AttendanceRecordStatus    RecordStatus `gorm:"type:varchar(10);not null;column:attendance_record_status" json:"attendance_record_status"`
	AttendanceRecordMarkedAt  time.Time    `gorm:"type:timestamptz;not null;default:now();column:attendance_record_marked_at" json:"attendance_record_marked_at"`

	AttendanceRecordCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:attendance_record_created_at" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:attendance_record_updated_at" json:"attendance_record_updated_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
