// file: internals/features/attendance/dto/attendance_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMarkRequestStudentIDsDeduplicates(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	req := MarkRequest{Records: []MarkEntry{
		{StudentID: a, Status: "PRESENT"},
		{StudentID: b, Status: "ABSENT"},
		{StudentID: a, Status: "ABSENT"},
	}}

	got := req.StudentIDs()
	assert.Equal(t, []uuid.UUID{a, b}, got, "distinct IDs in first-seen order")
}

func TestMarkRequestNormalizeUppercasesStatus(t *testing.T) {
	req := MarkRequest{Records: []MarkEntry{
		{StudentID: uuid.New(), Status: " present "},
		{StudentID: uuid.New(), Status: "Absent"},
	}}
	req.Normalize()
	assert.Equal(t, "PRESENT", req.Records[0].Status)
	assert.Equal(t, "ABSENT", req.Records[1].Status)
}
