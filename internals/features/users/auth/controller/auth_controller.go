// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"smartcollege_backend/internals/constants"
	authRepo "smartcollege_backend/internals/features/users/auth/repository"
	"smartcollege_backend/internals/features/users/auth/service"
	helper "smartcollege_backend/internals/helpers"
	"smartcollege_backend/internals/services/mailer"
)

type AuthController struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Mailer mailer.Service
}

func NewAuthController(db *gorm.DB, rdb *redis.Client, mail mailer.Service) *AuthController {
	return &AuthController{DB: db, Redis: rdb, Mailer: mail}
}

// Me returns the identity behind the current token.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	user, err := authRepo.FindUserByID(ac.DB, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"user": fiber.Map{
			"id":         user.ID,
			"full_name":  user.FullName,
			"email":      user.Email,
			"role":       user.Role,
			"college_id": user.CollegeID,
			"phone":      user.Phone,
		},
		"landing_path": constants.LandingPath(user.Role),
	})
}

// ResolveLanding is the root-path resolver: role in, destination path out.
// Total by construction — unknown roles land on /login.
func (ac *AuthController) ResolveLanding(c *fiber.Ctx) error {
	role := helper.GetRoleFromLocals(c)
	return helper.JsonOK(c, "OK", fiber.Map{
		"landing_path": constants.LandingPath(role),
	})
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return service.RefreshToken(ac.DB, c)
}

func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	return service.ForgotPassword(ac.DB, ac.Redis, ac.Mailer, c)
}

func (ac *AuthController) VerifyOTP(c *fiber.Ctx) error {
	return service.VerifyOTP(ac.Redis, c)
}

func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	return service.ResetPassword(ac.DB, ac.Redis, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(ac.DB, c)
}
