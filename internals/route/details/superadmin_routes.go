// file: internals/route/details/superadmin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartcollege_backend/internals/constants"
	collegeController "smartcollege_backend/internals/features/colleges/controller"
	dashboardController "smartcollege_backend/internals/features/dashboard/controller"
	authmw "smartcollege_backend/internals/middlewares/auth"
)

// SuperAdminRoutes registers the platform-operator area: college onboarding
// and the cross-tenant dashboard.
func SuperAdminRoutes(api fiber.Router, db *gorm.DB) {
	colleges := collegeController.NewCollegeController(db)
	dashboard := dashboardController.NewDashboardController(db)

	group := api.Group("/superadmin", authmw.OnlyRoles(constants.RoleSuperAdmin))

	group.Get("/colleges", colleges.List)
	group.Post("/colleges", colleges.Create)
	group.Get("/colleges/:id", colleges.GetByID)
	group.Put("/colleges/:id", colleges.Update)
	group.Delete("/colleges/:id", colleges.Delete)

	group.Get("/dashboard", dashboard.SuperAdmin)
}
