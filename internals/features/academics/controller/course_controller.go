// file: internals/features/academics/controller/course_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartcollege_backend/internals/features/academics/dto"
	model "smartcollege_backend/internals/features/academics/model"
	helper "smartcollege_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validate: validator.New()}
}

// List handles GET /courses — optional ?department_id= filter.
func (ctrl *CourseController) List(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.CourseModel{}).Where("college_id = ?", collegeID)
	if dep := strings.TrimSpace(c.Query("department_id")); dep != "" {
		q = q.Where("department_id = ?", dep)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("name ILIKE ? OR code ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count courses")
	}
	var rows []model.CourseModel
	if err := q.Order("name ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch courses")
	}
	return helper.JsonList(c, rows, helper.BuildPagination(paging, total, len(rows)))
}

// Create handles POST /courses — the department must belong to the same college.
func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var depCount int64
	ctrl.DB.Model(&model.DepartmentModel{}).
		Where("id = ? AND college_id = ?", req.DepartmentID, collegeID).
		Count(&depCount)
	if depCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Department not found in this college")
	}

	m := req.ToModel(collegeID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.JsonCreated(c, "Course created", m)
}

// Update handles PUT /courses/:id
func (ctrl *CourseController) Update(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.CourseModel
	if err := ctrl.DB.Where("id = ? AND college_id = ?", id, collegeID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course")
	}

	req.Apply(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update course")
	}
	return helper.JsonUpdated(c, "Course updated", m)
}

// Delete handles DELETE /courses/:id
func (ctrl *CourseController) Delete(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.Where("id = ? AND college_id = ?", id, collegeID).Delete(&model.CourseModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete course")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
	}
	return helper.JsonDeleted(c, "Course deleted", nil)
}
