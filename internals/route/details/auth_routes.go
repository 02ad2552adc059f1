// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartcollege_backend/internals/configs"
	databases "smartcollege_backend/internals/databases"
	collegeController "smartcollege_backend/internals/features/colleges/controller"
	feesController "smartcollege_backend/internals/features/fees/controller"
	authController "smartcollege_backend/internals/features/users/auth/controller"
	"smartcollege_backend/internals/middlewares"
	"smartcollege_backend/internals/services/mailer"
)

// AuthRoutes registers everything reachable without a session: the auth
// endpoints, the public college-code lookup used by the registration form,
// and the payment gateway webhook.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	mail := mailer.NewFromEnv(configs.SendgridAPIKey, configs.MailFromAddress)
	auth := authController.NewAuthController(db, databases.Redis, mail)
	colleges := collegeController.NewCollegeController(db)
	fees := feesController.NewFeeController(db)

	api := app.Group("/api")

	authGroup := api.Group("/auth", middlewares.AuthRateLimiter())
	authGroup.Post("/register/:college_code", auth.Register)
	authGroup.Post("/login", auth.Login)
	authGroup.Post("/refresh-token", auth.RefreshToken)
	authGroup.Post("/forgot-password", auth.ForgotPassword)
	authGroup.Post("/verify-otp", auth.VerifyOTP)
	authGroup.Post("/reset-password", auth.ResetPassword)

	api.Get("/colleges/code/:code", colleges.LookupByCode)

	// Gateway callback. Skipped by the auth middleware, validated by payload.
	api.Post("/fees/payments/notification", fees.PaymentNotification)
}
