// file: internals/features/attendance/model/session_model_test.go
package model

import (
	"testing"
	"time"
)

func openSession() AttendanceSessionModel {
	return AttendanceSessionModel{AttendanceSessionStatus: SessionOpen}
}

func TestSessionLifecycle(t *testing.T) {
	now := time.Now()

	t.Run("open session permits everything", func(t *testing.T) {
		s := openSession()
		if !s.IsOpen() || !s.CanMark() || !s.CanDelete() || !s.CanFetchRoster() {
			t.Fatalf("open session should permit mark, delete and roster: %+v", s)
		}
	})

	t.Run("close transitions and stamps closed_at", func(t *testing.T) {
		s := openSession()
		changed := s.Close(now)
		if !changed {
			t.Fatal("Close() on an open session should report changed")
		}
		if s.AttendanceSessionStatus != SessionClosed {
			t.Errorf("status = %q, want %q", s.AttendanceSessionStatus, SessionClosed)
		}
		if s.AttendanceSessionClosedAt == nil || !s.AttendanceSessionClosedAt.Equal(now) {
			t.Errorf("closed_at = %v, want %v", s.AttendanceSessionClosedAt, now)
		}
	})

	t.Run("close is idempotent", func(t *testing.T) {
		s := openSession()
		s.Close(now)
		firstClosedAt := *s.AttendanceSessionClosedAt

		later := now.Add(time.Hour)
		if s.Close(later) {
			t.Error("second Close() should report no change")
		}
		if !s.AttendanceSessionClosedAt.Equal(firstClosedAt) {
			t.Errorf("closed_at moved to %v after second close", s.AttendanceSessionClosedAt)
		}
	})

	t.Run("closed session is terminal and read only", func(t *testing.T) {
		s := openSession()
		s.Close(now)
		if s.CanMark() {
			t.Error("CanMark() = true on a closed session")
		}
		if s.CanDelete() {
			t.Error("CanDelete() = true on a closed session")
		}
		if s.CanFetchRoster() {
			t.Error("CanFetchRoster() = true on a closed session")
		}
	})
}

func TestValidRecordStatus(t *testing.T) {
	valid := []string{"PRESENT", "ABSENT"}
	for _, s := range valid {
		if !ValidRecordStatus(s) {
			t.Errorf("ValidRecordStatus(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "present", "LATE", "EXCUSED"}
	for _, s := range invalid {
		if ValidRecordStatus(s) {
			t.Errorf("ValidRecordStatus(%q) = true, want false", s)
		}
	}
}
