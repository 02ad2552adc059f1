// file: internals/features/people/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

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

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

// List handles GET /students — ?course_id= and ?semester= filters.
func (ctrl *StudentController) List(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 25, 200)

	q := ctrl.DB.Model(&model.StudentModel{}).Where("college_id = ?", collegeID)
	if course := strings.TrimSpace(c.Query("course_id")); course != "" {
		q = q.Where("course_id = ?", course)
	}
	if sem := strings.TrimSpace(c.Query("semester")); sem != "" {
		q = q.Where("semester = ?", sem)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}
	var rows []model.StudentModel
	if err := q.Order("roll_number ASC").Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}
	return helper.JsonList(c, rows, helper.BuildPagination(paging, total, len(rows)))
}

// Create handles POST /students — user account + profile in one transaction.
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentRequest
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

	var student model.StudentModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		user := userModel.UserModel{
			FullName:  req.FullName,
			Email:     req.Email,
			Password:  string(hashed),
			Role:      constants.RoleStudent,
			CollegeID: &collegeID,
			Phone:     req.Phone,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		student = model.StudentModel{
			CollegeID:     collegeID,
			UserID:        user.ID,
			CourseID:      req.CourseID,
			RollNumber:    req.RollNumber,
			Semester:      req.Semester,
			AdmissionYear: req.AdmissionYear,
			GuardianName:  req.GuardianName,
			GuardianPhone: req.GuardianPhone,
		}
		return tx.Create(&student).Error
	})
	if txErr != nil {
		var pqErr *pq.Error
		if errors.As(txErr, &pqErr) && pqErr.Code == "23505" {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}
	return helper.JsonCreated(c, "Student created", student)
}

// Update handles PUT /students/:id
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.StudentModel
	if err := ctrl.DB.Where("id = ? AND college_id = ?", id, collegeID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	req.Apply(&m)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.JsonUpdated(c, "Student updated", m)
}

// Delete handles DELETE /students/:id — deactivates the account and soft
// deletes the profile.
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var m model.StudentModel
	if err := ctrl.DB.Where("id = ? AND college_id = ?", id, collegeID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&userModel.UserModel{}).
			Where("id = ?", m.UserID).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Delete(&m).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	return helper.JsonDeleted(c, "Student deleted", nil)
}

// MyProfile handles GET /student/profile — the caller's own record.
func (ctrl *StudentController) MyProfile(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var m model.StudentModel
	if err := ctrl.DB.Where("user_id = ? AND college_id = ?", userID, collegeID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}
	return helper.JsonOK(c, "OK", m)
}
