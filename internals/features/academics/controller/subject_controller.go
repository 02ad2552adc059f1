// file: internals/features/academics/controller/subject_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartcollege_backend/internals/constants"
	"smartcollege_backend/internals/features/academics/dto"
	model "smartcollege_backend/internals/features/academics/model"
	userModel "smartcollege_backend/internals/features/users/user/model"
	helper "smartcollege_backend/internals/helpers"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, Validate: validator.New()}
}

// List handles GET /subjects — filters: ?course_id=, ?semester=, ?teacher_id=.
// Teachers calling with ?mine=true get only their own assignments.
func (ctrl *SubjectController) List(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.SubjectModel{}).Where("college_id = ?", collegeID)
	if course := strings.TrimSpace(c.Query("course_id")); course != "" {
		q = q.Where("course_id = ?", course)
	}
	if sem := strings.TrimSpace(c.Query("semester")); sem != "" {
		q = q.Where("semester = ?", sem)
	}
	if tid := strings.TrimSpace(c.Query("teacher_id")); tid != "" {
		q = q.Where("teacher_id = ?", tid)
	}
	if c.QueryBool("mine") {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		q = q.Where("teacher_id = ?", userID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count subjects")
	}
	var rows []model.SubjectModel
	if err := q.Order("semester ASC, name ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subjects")
	}
	return helper.JsonList(c, rows, helper.BuildPagination(paging, total, len(rows)))
}

// Create handles POST /subjects
func (ctrl *SubjectController) Create(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var courseCount int64
	ctrl.DB.Model(&model.CourseModel{}).
		Where("id = ? AND college_id = ?", req.CourseID, collegeID).
		Count(&courseCount)
	if courseCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course not found in this college")
	}
	if req.TeacherID != nil {
		if err := ctrl.ensureTeacher(collegeID, *req.TeacherID); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	m := req.ToModel(collegeID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subject")
	}
	return helper.JsonCreated(c, "Subject created", m)
}

// Update handles PUT /subjects/:id
func (ctrl *SubjectController) Update(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.TeacherID != nil {
		if err := ctrl.ensureTeacher(collegeID, *req.TeacherID); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	var m model.SubjectModel
	if err := ctrl.DB.Where("id = ? AND college_id = ?", id, collegeID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch subject")
	}

	req.Apply(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update subject")
	}
	return helper.JsonUpdated(c, "Subject updated", m)
}

// Delete handles DELETE /subjects/:id
func (ctrl *SubjectController) Delete(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.Where("id = ? AND college_id = ?", id, collegeID).Delete(&model.SubjectModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}
	return helper.JsonDeleted(c, "Subject deleted", nil)
}

func (ctrl *SubjectController) ensureTeacher(collegeID, teacherID uuid.UUID) error {
	var count int64
	ctrl.DB.Model(&userModel.UserModel{}).
		Where("id = ? AND college_id = ? AND role = ? AND is_active = true",
			teacherID, collegeID, constants.RoleTeacher).
		Count(&count)
	if count == 0 {
		return errors.New("teacher not found in this college")
	}
	return nil
}
