// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartcollege_backend/internals/configs"
	databases "smartcollege_backend/internals/databases"
	authController "smartcollege_backend/internals/features/users/auth/controller"
	authmw "smartcollege_backend/internals/middlewares/auth"
	routeDetails "smartcollege_backend/internals/route/details"
	"smartcollege_backend/internals/services/mailer"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PRIVATE =====================
	log.Println("[INFO] Setting up authenticated groups...")
	api := app.Group("/api", authmw.AuthMiddleware(db))

	mail := mailer.NewFromEnv(configs.SendgridAPIKey, configs.MailFromAddress)
	auth := authController.NewAuthController(db, databases.Redis, mail)
	api.Get("/auth/me", auth.Me)
	api.Post("/auth/logout", auth.Logout)
	api.Post("/auth/change-password", auth.ChangePassword)
	api.Get("/resolve-landing", auth.ResolveLanding)

	routeDetails.SharedRoutes(api, db)
	routeDetails.SuperAdminRoutes(api, db)
	routeDetails.CollegeAdminRoutes(api, db)
	routeDetails.TeacherRoutes(api, db)
	routeDetails.StudentRoutes(api, db)
}
