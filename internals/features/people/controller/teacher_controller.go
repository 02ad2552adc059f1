// file: internals/features/people/controller/teacher_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"smartcollege_backend/internals/constants"
	"smartcollege_backend/internals/features/people/dto"
	model "smartcollege_backend/internals/features/people/model"
	userModel "smartcollege_backend/internals/features/users/user/model"
	helper "smartcollege_backend/internals/helpers"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Validate: validator.New()}
}

// List handles GET /teachers — ?department_id= filter.
func (ctrl *TeacherController) List(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.TeacherModel{}).Where("college_id = ?", collegeID)
	if dept := strings.TrimSpace(c.Query("department_id")); dept != "" {
		q = q.Where("department_id = ?", dept)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count teachers")
	}
	var rows []model.TeacherModel
	if err := q.Order("created_at ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teachers")
	}
	return helper.JsonList(c, rows, helper.BuildPagination(paging, total, len(rows)))
}

// Create handles POST /teachers — user account + profile in one transaction.
func (ctrl *TeacherController) Create(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	now := time.Now()
	var teacher model.TeacherModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		user := userModel.UserModel{
			FullName:  req.FullName,
			Email:     req.Email,
			Password:  string(hashed),
			Role:      constants.RoleTeacher,
			CollegeID: &collegeID,
			Phone:     req.Phone,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		teacher = model.TeacherModel{
			CollegeID:     collegeID,
			UserID:        user.ID,
			DepartmentID:  req.DepartmentID,
			Designation:   req.Designation,
			Qualification: req.Qualification,
			JoinedAt:      &now,
		}
		return tx.Create(&teacher).Error
	})
	if txErr != nil {
		var pqErr *pq.Error
		if errors.As(txErr, &pqErr) && pqErr.Code == "23505" {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create teacher")
	}
	return helper.JsonCreated(c, "Teacher created", teacher)
}

// Update handles PUT /teachers/:id
func (ctrl *TeacherController) Update(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.TeacherModel
	if err := ctrl.DB.Where("id = ? AND college_id = ?", id, collegeID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	req.Apply(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update teacher")
	}
	return helper.JsonUpdated(c, "Teacher updated", m)
}

// Delete handles DELETE /teachers/:id
func (ctrl *TeacherController) Delete(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.TeacherModel
	if err := ctrl.DB.Where("id = ? AND college_id = ?", id, collegeID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&userModel.UserModel{}).
			Where("id = ?", m.UserID).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	return helper.JsonDeleted(c, "Teacher deleted", nil)
}

// MyProfile handles GET /teacher/profile
func (ctrl *TeacherController) MyProfile(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var m model.TeacherModel
	if err := ctrl.DB.Where("user_id = ? AND college_id = ?", userID, collegeID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}
	return helper.JsonOK(c, "OK", m)
}
