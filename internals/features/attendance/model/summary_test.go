// file: internals/features/attendance/model/summary_test.go
package model

import "testing"

func TestPercentage(t *testing.T) {
	tests := []struct {
		name    string
		present int
		total   int
		want    float64
	}{
		{"empty session", 0, 0, 0},
		{"negative total", 1, -1, 0},
		{"all present", 10, 10, 100},
		{"none present", 0, 10, 0},
		{"seven of ten", 7, 10, 70},
		{"one third rounds to two decimals", 1, 3, 33.33},
		{"two thirds rounds up", 2, 3, 66.67},
		{"one of seven", 1, 7, 14.29},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentage(tt.present, tt.total); got != tt.want {
				t.Errorf("Percentage(%d, %d) = %v, want %v", tt.present, tt.total, got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	records := []AttendanceRecordModel{
		{AttendanceRecordStatus: RecordPresent},
		{AttendanceRecordStatus: RecordPresent},
		{AttendanceRecordStatus: RecordAbsent},
		{AttendanceRecordStatus: RecordPresent},
	}

	s := Summarize(records)
	if s.Total != 4 {
		t.Errorf("Total = %d, want 4", s.Total)
	}
	if s.PresentCount != 3 {
		t.Errorf("PresentCount = %d, want 3", s.PresentCount)
	}
	if s.AbsentCount != 1 {
		t.Errorf("AbsentCount = %d, want 1", s.AbsentCount)
	}
	if s.Percentage != 75 {
		t.Errorf("Percentage = %v, want 75", s.Percentage)
	}

	empty := Summarize(nil)
	if empty.Total != 0 || empty.Percentage != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero summary", empty)
	}
}
