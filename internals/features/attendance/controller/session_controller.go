// file: internals/features/attendance/controller/session_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"smartcollege_backend/internals/constants"
	"smartcollege_backend/internals/features/attendance/dto"
	model "smartcollege_backend/internals/features/attendance/model"
	peopleModel "smartcollege_backend/internals/features/people/model"
	helper "smartcollege_backend/internals/helpers"
)

type SessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db, Validate: validator.New()}
}

// errSessionClosed aborts a write transaction when the locked re-read finds
// the session no longer OPEN.
var errSessionClosed = errors.New("attendance session closed")

// lockSessionForWrite re-reads the session FOR UPDATE inside tx. Writers must
// go through this: the row lock serializes against a concurrent close, so the
// OPEN check cannot go stale between permission check and write.
func lockSessionForWrite(tx *gorm.DB, id uuid.UUID) (*model.AttendanceSessionModel, error) {
	var s model.AttendanceSessionModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("attendance_session_id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// findOwnedSession loads a session scoped to college + owning teacher.
func (ctrl *SessionController) findOwnedSession(c *fiber.Ctx, id uuid.UUID) (*model.AttendanceSessionModel, error) {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return nil, err
	}
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}

	var s model.AttendanceSessionModel
	err = ctrl.DB.
		Where("attendance_session_id = ? AND attendance_session_college_id = ? AND attendance_session_teacher_id = ?",
			id, collegeID, teacherID).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch session")
	}
	return &s, nil
}

/* =========================================================
   CREATE
   ========================================================= */

// Create handles POST /teacher/attendance/sessions — a new session always
// starts OPEN. One session per (subject, date, lecture number).
func (ctrl *SessionController) Create(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	date, err := req.ParseDate()
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "lecture_date must be YYYY-MM-DD")
	}

	var dup int64
	ctrl.DB.Model(&model.AttendanceSessionModel{}).
		Where("attendance_session_subject_id = ? AND attendance_session_lecture_date = ? AND attendance_session_lecture_number = ?",
			req.SubjectID, date, req.LectureNumber).
		Count(&dup)
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Session already exists for this lecture")
	}

	s := req.ToModel(collegeID, teacherID, date)
	if err := ctrl.DB.Create(s).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session")
	}
	return helper.JsonCreated(c, "Session created", dto.ToSessionResponse(s, nil))
}

/* =========================================================
   LIST / DETAIL
   ========================================================= */

// List handles GET /teacher/attendance/sessions — the caller's own sessions,
// newest first; ?status= and ?subject_id= filters.
func (ctrl *SessionController) List(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.AttendanceSessionModel{}).
		Where("attendance_session_college_id = ? AND attendance_session_teacher_id = ?", collegeID, teacherID)
	if status := strings.ToUpper(strings.TrimSpace(c.Query("status"))); status != "" {
		q = q.Where("attendance_session_status = ?", status)
	}
	if subj := strings.TrimSpace(c.Query("subject_id")); subj != "" {
		q = q.Where("attendance_session_subject_id = ?", subj)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count sessions")
	}
	var rows []model.AttendanceSessionModel
	if err := q.Order("attendance_session_lecture_date DESC, attendance_session_lecture_number DESC").
		Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch sessions")
	}

	out := make([]dto.SessionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToSessionResponse(&rows[i], nil))
	}
	return helper.JsonList(c, out, helper.BuildPagination(paging, total, len(out)))
}

// GetByID handles GET /teacher/attendance/sessions/:id — detail plus the
// aggregate summary. Same summary math whether the session is OPEN or CLOSED.
func (ctrl *SessionController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	s, err := ctrl.findOwnedSession(c, id)
	if err != nil {
		return err
	}

	var records []model.AttendanceRecordModel
	if err := ctrl.DB.Where("attendance_record_session_id = ?", s.AttendanceSessionID).Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch records")
	}
	summary := model.Summarize(records)
	return helper.JsonOK(c, "OK", dto.ToSessionResponse(s, &summary))
}

/* =========================================================
   ROSTER
   ========================================================= */

// Roster handles GET /teacher/attendance/sessions/:id/roster — the students
// eligible for marking. Served only while OPEN; after close, only the
// recorded rows remain visible via GetRecords.
func (ctrl *SessionController) Roster(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	s, err := ctrl.findOwnedSession(c, id)
	if err != nil {
		return err
	}
	if !s.CanFetchRoster() {
		return helper.JsonErrorCode(c, fiber.StatusConflict,
			constants.CodeSessionClosed, "Session is closed; roster is no longer available")
	}

	var students []peopleModel.StudentModel
	if err := ctrl.DB.
		Where("college_id = ? AND course_id = ?", s.AttendanceSessionCollegeID, s.AttendanceSessionCourseID).
		Order("roll_number ASC").
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch roster")
	}
	return helper.JsonOK(c, "OK", students)
}

/* =========================================================
   CLOSE / DELETE
   ========================================================= */

// Close handles POST /teacher/attendance/sessions/:id/close. OPEN→CLOSED is
// one-way; closing an already-CLOSED session is a no-op success so double
// clicks cannot fail or duplicate anything.
func (ctrl *SessionController) Close(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	s, err := ctrl.findOwnedSession(c, id)
	if err != nil {
		return err
	}

	if s.Close(time.Now()) {
		// guard the UPDATE too: a concurrent close must not win twice
		res := ctrl.DB.Model(&model.AttendanceSessionModel{}).
			Where("attendance_session_id = ? AND attendance_session_status = ?", s.AttendanceSessionID, model.SessionOpen).
			Updates(map[string]interface{}{
				"attendance_session_status":    model.SessionClosed,
				"attendance_session_closed_at": s.AttendanceSessionClosedAt,
			})
		if res.Error != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to close session")
		}
	}
	return helper.JsonUpdated(c, "Session closed", dto.ToSessionResponse(s, nil))
}

// Delete handles DELETE /teacher/attendance/sessions/:id — permitted only
// while OPEN. A CLOSED session is part of the academic record.
func (ctrl *SessionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	s, err := ctrl.findOwnedSession(c, id)
	if err != nil {
		return err
	}
	if !s.CanDelete() {
		return helper.JsonErrorCode(c, fiber.StatusConflict,
			constants.CodeSessionClosed, "Closed sessions cannot be deleted")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		locked, err := lockSessionForWrite(tx, s.AttendanceSessionID)
		if err != nil {
			return err
		}
		if !locked.CanDelete() {
			return errSessionClosed
		}
		if err := tx.Where("attendance_record_session_id = ?", s.AttendanceSessionID).
			Delete(&model.AttendanceRecordModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(s).Error
	}); err != nil {
		if errors.Is(err, errSessionClosed) {
			return helper.JsonErrorCode(c, fiber.StatusConflict,
				constants.CodeSessionClosed, "Closed sessions cannot be deleted")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete session")
	}
	return helper.JsonDeleted(c, "Session deleted", nil)
}
