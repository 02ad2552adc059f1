// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"smartcollege_backend/internals/constants"
	collegeModel "smartcollege_backend/internals/features/colleges/model"
	authRepo "smartcollege_backend/internals/features/users/auth/repository"
	userModel "smartcollege_backend/internals/features/users/user/model"
	helper "smartcollege_backend/internals/helpers"
)

var validate = validator.New()

/* ==========================
   REGISTER (by college code)
========================== */

type registerRequest struct {
	FullName string `json:"full_name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"omitempty,min=7,max=20"`
}

// Register handles POST /api/auth/register/:college_code — public self-service
// signup. The created account is always a STUDENT bound to the college the
// code resolves to; staff accounts are provisioned by admins.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	code := strings.TrimSpace(c.Params("college_code"))
	if code == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing college code")
	}

	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var college collegeModel.CollegeModel
	if err := db.Where("code = ? AND is_active = true", strings.ToUpper(code)).First(&college).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "College code not recognized")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up college")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		FullName:  req.FullName,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Password:  string(hashed),
		Role:      constants.RoleStudent,
		CollegeID: &college.ID,
		Phone:     strptr(req.Phone),
	}
	if err := authRepo.CreateUser(db, &user); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	return helper.JsonCreated(c, "Account created", fiber.Map{
		"id":         user.ID,
		"full_name":  user.FullName,
		"email":      user.Email,
		"role":       user.Role,
		"college_id": user.CollegeID,
	})
}

/* ==========================
   LOGIN
========================== */

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/auth/login. The response carries the landing path
// resolved from the role so the client's root redirect needs no second call.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := authRepo.FindUserByEmail(db, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		// same message for unknown email and bad password
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account deactivated")
	}

	access, refresh, err := issueTokenPair(db, c, user)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	setRefreshCookie(c, refresh, nowUTC())

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": access,
		"landing_path": constants.LandingPath(user.Role),
		"user": fiber.Map{
			"id":         user.ID,
			"full_name":  user.FullName,
			"email":      user.Email,
			"role":       user.Role,
			"college_id": user.CollegeID,
		},
	})
}

/* ==========================
   LOGOUT
========================== */

// Logout blacklists the access token and revokes the user's refresh tokens.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not logged in")
	}

	if err := authRepo.BlacklistToken(db, raw, nowUTC().Add(accessTTLDefault)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to invalidate token")
	}
	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		_ = authRepo.RevokeRefreshTokensForUser(db, userID)
	}

	c.ClearCookie("refresh_token", "access_token")
	return helper.JsonOK(c, "Logged out", nil)
}
