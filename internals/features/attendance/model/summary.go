// file: internals/features/attendance/model/summary.go
package model

import "math"

// Summary is the aggregate view of a session's records. The same computation
// serves OPEN sessions (partial, as marked so far) and CLOSED ones (final).
type Summary struct {
	Total        int     `json:"total"`
	PresentCount int     `json:"present_count"`
	AbsentCount  int     `json:"absent_count"`
	Percentage   float64 `json:"percentage"`
}

// Percentage computes present/total×100 rounded to two decimal places,
// defined as 0 when total is 0.
func Percentage(present, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*10000) / 100
}

func Summarize(records []AttendanceRecordModel) Summary {
	var s Summary
	for _, r := range records {
		switch r.AttendanceRecordStatus {
		case RecordPresent:
			s.PresentCount++
		case RecordAbsent:
			s.AbsentCount++
		}
	}
	s.Total = len(records)
	s.Percentage = Percentage(s.PresentCount, s.Total)
	return s
}
