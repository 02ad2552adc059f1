// file: internals/features/timetable/model/timetable_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DayOfWeek follows ISO-8601 numbering: 1 = Monday .. 7 = Sunday.
type DayOfWeek int

const (
	Monday    DayOfWeek = 1
	Tuesday   DayOfWeek = 2
	Wednesday DayOfWeek = 3
	Thursday  DayOfWeek = 4
	Friday    DayOfWeek = 5
	Saturday  DayOfWeek = 6
	Sunday    DayOfWeek = 7
)

func ValidDayOfWeek(d DayOfWeek) bool {
	return d >= Monday && d <= Sunday
}

// TimetableEntryModel is one period slot on a course's weekly grid.
type TimetableEntryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CollegeID uuid.UUID `gorm:"type:uuid;not null;index" json:"college_id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	SubjectID uuid.UUID `gorm:"type:uuid;not null" json:"subject_id"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id"`

	DayOfWeek DayOfWeek `gorm:"not null" json:"day_of_week"`
	Period    int       `gorm:"not null" json:"period"`
	Semester  int       `gorm:"not null;default:1" json:"semester"`
	Room      *string   `gorm:"size:50" json:"room,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TimetableEntryModel) TableName() string {
	return "timetable_entries"
}

// Slot identifies when an entry is scheduled, independent of what is taught.
type Slot struct {
	CourseID  uuid.UUID
	Semester  int
	TeacherID uuid.UUID
	DayOfWeek DayOfWeek
	Period    int
}

func (m *TimetableEntryModel) Slot() Slot {
	return Slot{
		CourseID:  m.CourseID,
		Semester:  m.Semester,
		TeacherID: m.TeacherID,
		DayOfWeek: m.DayOfWeek,
		Period:    m.Period,
	}
}

// ClashReason names which axis of a slot collides with an existing entry.
type ClashReason string

const (
	ClashCourse  ClashReason = "COURSE_SLOT_TAKEN"
	ClashTeacher ClashReason = "TEACHER_SLOT_TAKEN"
)

// FindClash checks a candidate slot against existing entries. A slot clashes
// when the same course+semester already has that day/period taken, or when
// the teacher is already booked at that day/period anywhere in the college.
// Entries matching skipID are ignored so updates do not clash with themselves.
func FindClash(candidate Slot, existing []TimetableEntryModel, skipID uuid.UUID) (ClashReason, bool) {
	for i := range existing {
		e := &existing[i]
		if e.ID == skipID {
			continue
		}
		if e.DayOfWeek != candidate.DayOfWeek || e.Period != candidate.Period {
			continue
		}
		if e.CourseID == candidate.CourseID && e.Semester == candidate.Semester {
			return ClashCourse, true
		}
		if e.TeacherID == candidate.TeacherID {
			return ClashTeacher, true
		}
	}
	return "", false
}
