// file: internals/features/academics/controller/department_controller.go
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

type DepartmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db, Validate: validator.New()}
}

// List handles GET /departments — scoped to the caller's college.
func (ctrl *DepartmentController) List(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.DepartmentModel{}).Where("college_id = ?", collegeID)
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("name ILIKE ? OR code ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count departments")
	}
	var rows []model.DepartmentModel
	if err := q.Order("name ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch departments")
	}
	return helper.JsonList(c, rows, helper.BuildPagination(paging, total, len(rows)))
}

// Create handles POST /departments
func (ctrl *DepartmentController) Create(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var dup int64
	ctrl.DB.Model(&model.DepartmentModel{}).
		Where("college_id = ? AND code = ?", collegeID, req.Code).
		Count(&dup)
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Department code already in use")
	}

	m := req.ToModel(collegeID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create department")
	}
	return helper.JsonCreated(c, "Department created", m)
}

// Update handles PUT /departments/:id
func (ctrl *DepartmentController) Update(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.DepartmentModel
	if err := ctrl.DB.Where("id = ? AND college_id = ?", id, collegeID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Department not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch department")
	}

	req.Apply(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update department")
	}
	return helper.JsonUpdated(c, "Department updated", m)
}

// Delete handles DELETE /departments/:id (soft delete)
func (ctrl *DepartmentController) Delete(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.Where("id = ? AND college_id = ?", id, collegeID).Delete(&model.DepartmentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete department")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Department not found")
	}
	return helper.JsonDeleted(c, "Department deleted", nil)
}
