// file: internals/features/fees/controller/fee_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartcollege_backend/internals/features/fees/dto"
	model "smartcollege_backend/internals/features/fees/model"
	"smartcollege_backend/internals/features/fees/service"
	helper "smartcollege_backend/internals/helpers"
)

type FeeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{DB: db, Validate: validator.New()}
}

/* ===================== ADMIN ===================== */

// List handles GET /fees — ?student_id= and ?status= filters.
func (ctrl *FeeController) List(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.FeeInstallmentModel{}).Where("college_id = ?", collegeID)
	if student := strings.TrimSpace(c.Query("student_id")); student != "" {
		q = q.Where("student_id = ?", student)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count installments")
	}
	var rows []model.FeeInstallmentModel
	if err := q.Order("due_date ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch installments")
	}
	return helper.JsonList(c, rows, helper.BuildPagination(paging, total, len(rows)))
}

// Create handles POST /fees
func (ctrl *FeeController) Create(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateInstallmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	dueDate, err := req.ParseDueDate()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "due_date must be YYYY-MM-DD")
	}

	var exists int64
	if err := ctrl.DB.Table("students").
		Where("id = ? AND college_id = ? AND deleted_at IS NULL", req.StudentID, collegeID).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify student")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student not found in this college")
	}

	m := model.FeeInstallmentModel{
		CollegeID: collegeID,
		StudentID: req.StudentID,
		Title:     req.Title,
		Amount:    req.Amount,
		DueDate:   dueDate,
		Status:    model.FeeStatusPending,
		OrderID:   "FEE-" + uuid.NewString(),
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create installment")
	}
	return helper.JsonCreated(c, "Installment created", m)
}

// Update handles PUT /fees/:id — paid installments are immutable.
func (ctrl *FeeController) Update(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateInstallmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.FeeInstallmentModel
	if err := ctrl.DB.Where("id = ? AND college_id = ?", id, collegeID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Installment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch installment")
	}
	if m.Status == model.FeeStatusPaid {
		return helper.JsonError(c, fiber.StatusConflict, "Paid installments cannot be modified")
	}

	if err := req.Apply(&m); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "due_date must be YYYY-MM-DD")
	}
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update installment")
	}
	return helper.JsonUpdated(c, "Installment updated", m)
}

// Delete handles DELETE /fees/:id — only unpaid installments.
func (ctrl *FeeController) Delete(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.FeeInstallmentModel
	if err := ctrl.DB.Where("id = ? AND college_id = ?", id, collegeID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Installment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch installment")
	}
	if m.Status == model.FeeStatusPaid {
		return helper.JsonError(c, fiber.StatusConflict, "Paid installments cannot be deleted")
	}

	if err := ctrl.DB.Delete(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete installment")
	}
	return helper.JsonDeleted(c, "Installment deleted", nil)
}

/* ===================== STUDENT ===================== */

// studentProfileID resolves the caller's student row within their college.
func (ctrl *FeeController) studentProfileID(c *fiber.Ctx, collegeID uuid.UUID) (uuid.UUID, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return uuid.Nil, err
	}
	var profile struct{ ID uuid.UUID }
	err = ctrl.DB.Table("students").
		Select("id").
		Where("user_id = ? AND college_id = ? AND deleted_at IS NULL", userID, collegeID).
		Take(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Student profile not found")
		}
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch profile")
	}
	return profile.ID, nil
}

// MyFees handles GET /student/fees — installments plus the paid/remaining
// rollup.
func (ctrl *FeeController) MyFees(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := ctrl.studentProfileID(c, collegeID)
	if err != nil {
		return err
	}

	var rows []model.FeeInstallmentModel
	if err := ctrl.DB.
		Where("college_id = ? AND student_id = ?", collegeID, studentID).
		Order("due_date ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch installments")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"installments": rows,
		"summary":      model.Summarize(rows),
	})
}

// Checkout handles POST /student/fees/:id/checkout — creates a Snap
// transaction for one payable installment.
func (ctrl *FeeController) Checkout(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	studentID, err := ctrl.studentProfileID(c, collegeID)
	if err != nil {
		return err
	}

	var fee model.FeeInstallmentModel
	if err := ctrl.DB.
		Where("id = ? AND college_id = ? AND student_id = ?", id, collegeID, studentID).
		First(&fee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Installment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch installment")
	}
	if !fee.IsPayable() {
		return helper.JsonError(c, fiber.StatusConflict, "Installment is not payable")
	}

	var payer struct {
		FullName string
		Email    string
	}
	if err := ctrl.DB.Table("users").
		Select("full_name, email").
		Where("id = ?", userID).
		Take(&payer).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payer")
	}

	token, redirectURL, err := service.GenerateSnapToken(fee, payer.FullName, payer.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to create payment transaction")
	}

	return helper.JsonOK(c, "Checkout created", dto.CheckoutResponse{
		OrderID:     fee.OrderID,
		SnapToken:   token,
		RedirectURL: redirectURL,
	})
}

/* ===================== WEBHOOK ===================== */

// PaymentNotification handles POST /fees/payments/notification — the public
// gateway callback. Always replies 200 for payloads we recognize so the
// gateway stops retrying.
func (ctrl *FeeController) PaymentNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification payload")
	}
	if err := service.HandleFeeStatusWebhook(ctrl.DB, body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Notification rejected")
	}
	return helper.JsonOK(c, "Notification processed", nil)
}
