// file: internals/features/timetable/controller/timetable_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartcollege_backend/internals/features/timetable/dto"
	model "smartcollege_backend/internals/features/timetable/model"
	helper "smartcollege_backend/internals/helpers"
)

type TimetableController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTimetableController(db *gorm.DB) *TimetableController {
	return &TimetableController{DB: db, Validate: validator.New()}
}

// loadRelevantEntries fetches the entries a candidate slot could clash with:
// same course+semester, or same teacher, within the college.
func (ctrl *TimetableController) loadRelevantEntries(collegeID uuid.UUID, slot model.Slot) ([]model.TimetableEntryModel, error) {
	var rows []model.TimetableEntryModel
	err := ctrl.DB.
		Where("college_id = ? AND day_of_week = ? AND period = ?", collegeID, slot.DayOfWeek, slot.Period).
		Where("(course_id = ? AND semester = ?) OR teacher_id = ?", slot.CourseID, slot.Semester, slot.TeacherID).
		Find(&rows).Error
	return rows, err
}

// List handles GET /timetable — ?course_id, ?semester, ?teacher_id,
// ?mine=true (teacher's own schedule).
func (ctrl *TimetableController) List(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&model.TimetableEntryModel{}).Where("college_id = ?", collegeID)
	if course := strings.TrimSpace(c.Query("course_id")); course != "" {
		q = q.Where("course_id = ?", course)
	}
	if sem := strings.TrimSpace(c.Query("semester")); sem != "" {
		q = q.Where("semester = ?", sem)
	}
	if teacher := strings.TrimSpace(c.Query("teacher_id")); teacher != "" {
		q = q.Where("teacher_id = ?", teacher)
	}
	if c.Query("mine") == "true" {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		q = q.Where("teacher_id = ?", userID)
	}

	var rows []model.TimetableEntryModel
	if err := q.Order("day_of_week ASC, period ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch timetable")
	}
	return helper.JsonOK(c, "OK", rows)
}

// Create handles POST /timetable
func (ctrl *TimetableController) Create(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(collegeID)
	existing, err := ctrl.loadRelevantEntries(collegeID, m.Slot())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check timetable")
	}
	if reason, clash := model.FindClash(m.Slot(), existing, uuid.Nil); clash {
		return helper.JsonErrorCode(c, fiber.StatusConflict, string(reason), clashMessage(reason))
	}

	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create timetable entry")
	}
	return helper.JsonCreated(c, "Timetable entry created", m)
}

// Update handles PUT /timetable/:id — re-runs the clash check when the slot
// or teacher moves.
func (ctrl *TimetableController) Update(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.TimetableEntryModel
	if err := ctrl.DB.Where("id = ? AND college_id = ?", id, collegeID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Timetable entry not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch timetable entry")
	}

	req.Apply(&m)
	existing, err := ctrl.loadRelevantEntries(collegeID, m.Slot())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check timetable")
	}
	if reason, clash := model.FindClash(m.Slot(), existing, m.ID); clash {
		return helper.JsonErrorCode(c, fiber.StatusConflict, string(reason), clashMessage(reason))
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update timetable entry")
	}
	return helper.JsonUpdated(c, "Timetable entry updated", m)
}

// Delete handles DELETE /timetable/:id
func (ctrl *TimetableController) Delete(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.Where("id = ? AND college_id = ?", id, collegeID).Delete(&model.TimetableEntryModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete timetable entry")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Timetable entry not found")
	}
	return helper.JsonDeleted(c, "Timetable entry deleted", nil)
}

// MySchedule handles GET /student/timetable — the weekly grid for the
// caller's course and semester.
func (ctrl *TimetableController) MySchedule(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var profile struct {
		CourseID uuid.UUID
		Semester int
	}
	err = ctrl.DB.Table("students").
		Select("course_id, semester").
		Where("user_id = ? AND college_id = ? AND deleted_at IS NULL", userID, collegeID).
		Take(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	var rows []model.TimetableEntryModel
	err = ctrl.DB.
		Where("college_id = ? AND course_id = ? AND semester = ?", collegeID, profile.CourseID, profile.Semester).
		Order("day_of_week ASC, period ASC").
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch timetable")
	}
	return helper.JsonOK(c, "OK", rows)
}

func clashMessage(reason model.ClashReason) string {
	if reason == model.ClashTeacher {
		return "Teacher is already scheduled in this slot"
	}
	return "This slot is already taken for the course"
}
