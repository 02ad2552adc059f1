// file: internals/features/settings/controller/setting_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "smartcollege_backend/internals/features/settings/model"
	helper "smartcollege_backend/internals/helpers"
)

type SettingController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db, Validate: validator.New()}
}

type upsertSettingRequest struct {
	Key   string `json:"key" validate:"required,min=1,max=100"`
	Value string `json:"value"`
}

// List handles GET /settings
func (ctrl *SettingController) List(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.SettingModel
	if err := ctrl.DB.Where("college_id = ?", collegeID).Order("key ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch settings")
	}
	return helper.JsonOK(c, "OK", rows)
}

// Upsert handles PUT /settings — insert or overwrite one key.
func (ctrl *SettingController) Upsert(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}

	var req upsertSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Key = strings.TrimSpace(req.Key)
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := model.SettingModel{
		CollegeID: collegeID,
		Key:       req.Key,
		Value:     req.Value,
	}
	err = ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "college_id"}, {Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      req.Value,
			"updated_at": time.Now(),
		}),
	}).Create(&m).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save setting")
	}
	return helper.JsonUpdated(c, "Setting saved", m)
}

// Delete handles DELETE /settings/:key
func (ctrl *SettingController) Delete(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	key := strings.TrimSpace(c.Params("key"))
	if key == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid key")
	}

	res := ctrl.DB.Where("college_id = ? AND key = ?", collegeID, key).Delete(&model.SettingModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete setting")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Setting not found")
	}
	return helper.JsonDeleted(c, "Setting deleted", nil)
}
