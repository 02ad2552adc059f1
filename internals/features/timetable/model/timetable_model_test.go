// file: internals/features/timetable/model/timetable_model_test.go
package model

import (
	"testing"

	"github.com/google/uuid"
)

func TestFindClash(t *testing.T) {
	courseA := uuid.New()
	courseB := uuid.New()
	teacherX := uuid.New()
	teacherY := uuid.New()
	existingID := uuid.New()

	existing := []TimetableEntryModel{
		{
			ID:        existingID,
			CourseID:  courseA,
			TeacherID: teacherX,
			DayOfWeek: Monday,
			Period:    1,
			Semester:  3,
		},
	}

	tests := []struct {
		name       string
		candidate  Slot
		skipID     uuid.UUID
		wantReason ClashReason
		wantClash  bool
	}{
		{
			name:      "free slot",
			candidate: Slot{CourseID: courseB, Semester: 3, TeacherID: teacherY, DayOfWeek: Monday, Period: 2},
		},
		{
			name:       "course already has the slot",
			candidate:  Slot{CourseID: courseA, Semester: 3, TeacherID: teacherY, DayOfWeek: Monday, Period: 1},
			wantReason: ClashCourse,
			wantClash:  true,
		},
		{
			name:      "same course different semester is fine",
			candidate: Slot{CourseID: courseA, Semester: 5, TeacherID: teacherY, DayOfWeek: Monday, Period: 1},
		},
		{
			name:       "teacher double booked across courses",
			candidate:  Slot{CourseID: courseB, Semester: 1, TeacherID: teacherX, DayOfWeek: Monday, Period: 1},
			wantReason: ClashTeacher,
			wantClash:  true,
		},
		{
			name:      "same teacher different period",
			candidate: Slot{CourseID: courseB, Semester: 1, TeacherID: teacherX, DayOfWeek: Monday, Period: 2},
		},
		{
			name:      "same teacher different day",
			candidate: Slot{CourseID: courseB, Semester: 1, TeacherID: teacherX, DayOfWeek: Tuesday, Period: 1},
		},
		{
			name:      "update skips its own row",
			candidate: Slot{CourseID: courseA, Semester: 3, TeacherID: teacherX, DayOfWeek: Monday, Period: 1},
			skipID:    existingID,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, clash := FindClash(tt.candidate, existing, tt.skipID)
			if clash != tt.wantClash {
				t.Fatalf("FindClash() clash = %v, want %v", clash, tt.wantClash)
			}
			if reason != tt.wantReason {
				t.Errorf("FindClash() reason = %q, want %q", reason, tt.wantReason)
			}
		})
	}
}

func TestValidDayOfWeek(t *testing.T) {
	for d := Monday; d <= Sunday; d++ {
		if !ValidDayOfWeek(d) {
			t.Errorf("ValidDayOfWeek(%d) = false, want true", d)
		}
	}
	for _, d := range []DayOfWeek{0, 8, -1} {
		if ValidDayOfWeek(d) {
			t.Errorf("ValidDayOfWeek(%d) = true, want false", d)
		}
	}
}
