// file: internals/route/details/shared_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "smartcollege_backend/internals/features/dashboard/controller"
	notificationController "smartcollege_backend/internals/features/notifications/controller"
)

// SharedRoutes registers endpoints every signed-in role can reach.
func SharedRoutes(api fiber.Router, db *gorm.DB) {
	notifications := notificationController.NewNotificationController(db)
	dashboard := dashboardController.NewDashboardController(db)

	api.Get("/notifications", notifications.ListMine)
	api.Get("/dashboard", dashboard.ForRole)
}
