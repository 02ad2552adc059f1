// file: internals/features/notifications/controller/notification_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartcollege_backend/internals/constants"
	"smartcollege_backend/internals/features/notifications/dto"
	model "smartcollege_backend/internals/features/notifications/model"
	helper "smartcollege_backend/internals/helpers"
)

type NotificationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db, Validate: validator.New()}
}

// Create handles POST /notifications (admin only).
func (ctrl *NotificationController) Create(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel(collegeID, userID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notification")
	}
	return helper.JsonCreated(c, "Notification created", m)
}

// ListMine handles GET /notifications — broadcasts visible to the caller's
// role within their college, newest first.
func (ctrl *NotificationController) ListMine(c *fiber.Ctx) error {
	role := helper.GetRoleFromLocals(c)
	paging := helper.ResolvePaging(c, 20, 100)

	// Platform operators carry no tenant scope and college broadcasts never
	// target them; an empty page beats a 403 on a shared endpoint.
	if constants.RoleAllowed(role, []string{constants.RoleSuperAdmin}) {
		return helper.JsonList(c, []model.NotificationModel{}, helper.BuildPagination(paging, 0, 0))
	}

	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&model.NotificationModel{}).
		Where("college_id = ? AND audience IN ?", collegeID, dto.AudienceForRole(role))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}
	var rows []model.NotificationModel
	if err := q.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}
	return helper.JsonList(c, rows, helper.BuildPagination(paging, total, len(rows)))
}

// Delete handles DELETE /notifications/:id (admin only).
func (ctrl *NotificationController) Delete(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	res := ctrl.DB.Where("id = ? AND college_id = ?", id, collegeID).Delete(&model.NotificationModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notification")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
	}
	return helper.JsonDeleted(c, "Notification deleted", nil)
}
