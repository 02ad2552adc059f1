// file: internals/features/attendance/controller/record_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"smartcollege_backend/internals/constants"
	"smartcollege_backend/internals/features/attendance/dto"
	model "smartcollege_backend/internals/features/attendance/model"
	peopleModel "smartcollege_backend/internals/features/people/model"
	helper "smartcollege_backend/internals/helpers"
)

type RecordController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRecordController(db *gorm.DB) *RecordController {
	return &RecordController{DB: db, Validate: validator.New()}
}

/* =========================================================
   MARK (create/overwrite)
   ========================================================= */

// Mark handles POST /teacher/attendance/sessions/:id/records — bulk
// create-or-overwrite, rejected as SESSION_CLOSED once the session is CLOSED.
// Re-marking a student updates the row in place (unique per session+student).
func (ctrl *RecordController) Mark(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	sessCtrl := SessionController{DB: ctrl.DB}
	s, err := sessCtrl.findOwnedSession(c, id)
	if err != nil {
		return err
	}
	if !s.CanMark() {
		return helper.JsonErrorCode(c, fiber.StatusConflict,
			constants.CodeSessionClosed, "Session is closed; attendance can no longer be changed")
	}

	var req dto.MarkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := req.Validate(ctrl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// every marked student must sit in the session's course; one IN query,
	// cardinality compared against the distinct IDs
	studentIDs := req.StudentIDs()
	var members int64
	if err := ctrl.DB.Model(&peopleModel.StudentModel{}).
		Where("id IN ? AND college_id = ? AND course_id = ?",
			studentIDs, s.AttendanceSessionCollegeID, s.AttendanceSessionCourseID).
		Count(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify students")
	}
	if members != int64(len(studentIDs)) {
		return helper.JsonError(c, fiber.StatusBadRequest, "One or more students are not in this course")
	}

	// last entry wins for a student listed twice; the upsert cannot touch the
	// same row twice in one statement
	now := time.Now()
	byStudent := make(map[string]int, len(studentIDs))
	rows := make([]model.AttendanceRecordModel, 0, len(studentIDs))
	for _, entry := range req.Records {
		row := model.AttendanceRecordModel{
			AttendanceRecordSessionID: s.AttendanceSessionID,
			AttendanceRecordStudentID: entry.StudentID,
			AttendanceRecordStatus:    model.RecordStatus(entry.Status),
			AttendanceRecordMarkedAt:  now,
		}
		if i, ok := byStudent[entry.StudentID.String()]; ok {
			rows[i] = row
			continue
		}
		byStudent[entry.StudentID.String()] = len(rows)
		rows = append(rows, row)
	}

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		locked, err := lockSessionForWrite(tx, s.AttendanceSessionID)
		if err != nil {
			return err
		}
		if !locked.CanMark() {
			return errSessionClosed
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_record_session_id"},
				{Name: "attendance_record_student_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_record_status",
				"attendance_record_marked_at",
				"attendance_record_updated_at",
			}),
		}).Create(&rows).Error
	})
	if txErr != nil {
		if errors.Is(txErr, errSessionClosed) {
			return helper.JsonErrorCode(c, fiber.StatusConflict,
				constants.CodeSessionClosed, "Session is closed; attendance can no longer be changed")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save attendance")
	}

	return helper.JsonUpdated(c, "Attendance saved", fiber.Map{"saved": len(rows)})
}

/* =========================================================
   READ
   ========================================================= */

// GetRecords handles GET /teacher/attendance/sessions/:id/records — the
// recorded rows plus the aggregate. Works in both states: partial while OPEN,
// final once CLOSED.
func (ctrl *RecordController) GetRecords(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	sessCtrl := SessionController{DB: ctrl.DB}
	s, err := sessCtrl.findOwnedSession(c, id)
	if err != nil {
		return err
	}

	var records []model.AttendanceRecordModel
	if err := ctrl.DB.Where("attendance_record_session_id = ?", s.AttendanceSessionID).
		Order("attendance_record_marked_at ASC").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch records")
	}

	summary := model.Summarize(records)
	return helper.JsonOK(c, "OK", fiber.Map{
		"session": dto.ToSessionResponse(s, &summary),
		"records": dto.ToRecordResponses(records),
	})
}

// MyAttendance handles GET /student/attendance — the calling student's own
// rows across subjects, with per-subject percentages.
func (ctrl *RecordController) MyAttendance(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var student peopleModel.StudentModel
	if err := ctrl.DB.Where("user_id = ? AND college_id = ?", userID, collegeID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student profile")
	}

	type subjectRow struct {
		SubjectID string `json:"subject_id" gorm:"column:subject_id"`
		Total     int    `json:"total" gorm:"column:total"`
		Present   int    `json:"present" gorm:"column:present"`
	}
	var rows []subjectRow
	if err := ctrl.DB.Table("attendance_records AS r").
		Select(`s.attendance_session_subject_id AS subject_id,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE r.attendance_record_status = 'PRESENT') AS present`).
		Joins(`JOIN attendance_sessions s ON s.attendance_session_id = r.attendance_record_session_id
			AND s.attendance_session_deleted_at IS NULL`).
		Where("r.attendance_record_student_id = ?", student.ID).
		Group("s.attendance_session_subject_id").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	type subjectSummary struct {
		SubjectID  string  `json:"subject_id"`
		Total      int     `json:"total"`
		Present    int     `json:"present"`
		Absent     int     `json:"absent"`
		Percentage float64 `json:"percentage"`
	}
	out := make([]subjectSummary, 0, len(rows))
	grandTotal, grandPresent := 0, 0
	for _, r := range rows {
		out = append(out, subjectSummary{
			SubjectID:  r.SubjectID,
			Total:      r.Total,
			Present:    r.Present,
			Absent:     r.Total - r.Present,
			Percentage: model.Percentage(r.Present, r.Total),
		})
		grandTotal += r.Total
		grandPresent += r.Present
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"subjects":           out,
		"overall_percentage": model.Percentage(grandPresent, grandTotal),
	})
}
