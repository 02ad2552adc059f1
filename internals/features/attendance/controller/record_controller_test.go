// file: internals/features/attendance/controller/record_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"smartcollege_backend/internals/constants"
	model "smartcollege_backend/internals/features/attendance/model"
	helper "smartcollege_backend/internals/helpers"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

// newAttendanceApp wires the teacher-area attendance handlers behind locals
// the auth middleware would normally set.
func newAttendanceApp(db *gorm.DB, collegeID, teacherID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserID, teacherID.String())
		c.Locals(helper.LocUserRole, constants.RoleTeacher)
		c.Locals(helper.LocCollegeID, collegeID.String())
		return c.Next()
	})
	sessions := NewSessionController(db)
	records := NewRecordController(db)
	app.Post("/sessions/:id/records", records.Mark)
	app.Delete("/sessions/:id", sessions.Delete)
	return app
}

func sessionRows(sessionID, collegeID, courseID, teacherID uuid.UUID, status model.SessionStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"attendance_session_id",
		"attendance_session_college_id",
		"attendance_session_course_id",
		"attendance_session_teacher_id",
		"attendance_session_status",
	}).AddRow(sessionID.String(), collegeID.String(), courseID.String(), teacherID.String(), string(status))
}

func markBody(t *testing.T, studentID uuid.UUID) io.Reader {
	t.Helper()
	body, err := json.Marshal(fiber.Map{
		"records": []fiber.Map{{"student_id": studentID.String(), "status": "PRESENT"}},
	})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload
}

func TestMarkRejectedWhenSessionAlreadyClosed(t *testing.T) {
	db, mock := newMockDB(t)
	sessionID, collegeID, courseID, teacherID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	app := newAttendanceApp(db, collegeID, teacherID)

	mock.ExpectQuery(`SELECT .* FROM "attendance_sessions"`).
		WillReturnRows(sessionRows(sessionID, collegeID, courseID, teacherID, model.SessionClosed))

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+sessionID.String()+"/records", markBody(t, uuid.New()))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, constants.CodeSessionClosed, decodeEnvelope(t, resp)["error_code"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A close committing between the initial load and the write must still be
// seen: the locked re-read inside the transaction finds CLOSED and the
// records are never inserted.
func TestMarkRejectedWhenCloseWinsTheRace(t *testing.T) {
	db, mock := newMockDB(t)
	sessionID, collegeID, courseID, teacherID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	studentID := uuid.New()
	app := newAttendanceApp(db, collegeID, teacherID)

	mock.ExpectQuery(`SELECT .* FROM "attendance_sessions"`).
		WillReturnRows(sessionRows(sessionID, collegeID, courseID, teacherID, model.SessionOpen))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "attendance_sessions".*FOR UPDATE`).
		WillReturnRows(sessionRows(sessionID, collegeID, courseID, teacherID, model.SessionClosed))
	mock.ExpectRollback()

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+sessionID.String()+"/records", markBody(t, studentID))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, constants.CodeSessionClosed, decodeEnvelope(t, resp)["error_code"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkWritesUnderTheLockWhileOpen(t *testing.T) {
	db, mock := newMockDB(t)
	sessionID, collegeID, courseID, teacherID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	studentID := uuid.New()
	app := newAttendanceApp(db, collegeID, teacherID)

	mock.ExpectQuery(`SELECT .* FROM "attendance_sessions"`).
		WillReturnRows(sessionRows(sessionID, collegeID, courseID, teacherID, model.SessionOpen))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "attendance_sessions".*FOR UPDATE`).
		WillReturnRows(sessionRows(sessionID, collegeID, courseID, teacherID, model.SessionOpen))
	mock.ExpectQuery(`INSERT INTO "attendance_records".*ON CONFLICT`).
		WillReturnRows(sqlmock.NewRows([]string{"attendance_record_id"}).AddRow(uuid.NewString()))
	mock.ExpectCommit()

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+sessionID.String()+"/records", markBody(t, studentID))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRejectedWhenCloseWinsTheRace(t *testing.T) {
	db, mock := newMockDB(t)
	sessionID, collegeID, courseID, teacherID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	app := newAttendanceApp(db, collegeID, teacherID)

	mock.ExpectQuery(`SELECT .* FROM "attendance_sessions"`).
		WillReturnRows(sessionRows(sessionID, collegeID, courseID, teacherID, model.SessionOpen))
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "attendance_sessions".*FOR UPDATE`).
		WillReturnRows(sessionRows(sessionID, collegeID, courseID, teacherID, model.SessionClosed))
	mock.ExpectRollback()

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/sessions/"+sessionID.String(), nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, constants.CodeSessionClosed, decodeEnvelope(t, resp)["error_code"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
