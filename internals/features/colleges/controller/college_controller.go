// file: internals/features/colleges/controller/college_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"smartcollege_backend/internals/features/colleges/dto"
	model "smartcollege_backend/internals/features/colleges/model"
	helper "smartcollege_backend/internals/helpers"
)

type CollegeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCollegeController(db *gorm.DB) *CollegeController {
	return &CollegeController{DB: db, Validate: validator.New()}
}

// List handles GET /api/super-admin/colleges
func (ctrl *CollegeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.CollegeModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("name ILIKE ? OR code ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count colleges")
	}

	var rows []model.CollegeModel
	if err := q.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch colleges")
	}

	return helper.JsonList(c, rows, helper.BuildPagination(paging, total, len(rows)))
}

// Create handles POST /api/super-admin/colleges
func (ctrl *CollegeController) Create(c *fiber.Ctx) error {
	var req dto.CreateCollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return helper.JsonError(c, fiber.StatusConflict, "College code already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create college")
	}
	return helper.JsonCreated(c, "College created", m)
}

// GetByID handles GET /api/super-admin/colleges/:id
func (ctrl *CollegeController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.CollegeModel
	if err := ctrl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "College not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch college")
	}
	return helper.JsonOK(c, "OK", m)
}

// Update handles PUT /api/super-admin/colleges/:id
func (ctrl *CollegeController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateCollegeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.CollegeModel
	if err := ctrl.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "College not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch college")
	}

	req.Apply(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update college")
	}
	return helper.JsonUpdated(c, "College updated", m)
}

// Delete handles DELETE /api/super-admin/colleges/:id (soft delete)
func (ctrl *CollegeController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctrl.DB.Delete(&model.CollegeModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete college")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "College not found")
	}
	return helper.JsonDeleted(c, "College deleted", nil)
}

// LookupByCode handles GET /api/public/colleges/:code — the self-registration
// form resolves its college from the code in the URL.
func (ctrl *CollegeController) LookupByCode(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing college code")
	}
	var m model.CollegeModel
	if err := ctrl.DB.Where("code = ? AND is_active = true", code).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "College code not recognized")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up college")
	}
	return helper.JsonOK(c, "OK", dto.ToPublicResponse(&m))
}
