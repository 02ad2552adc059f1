// file: internals/route/details/college_admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartcollege_backend/internals/constants"
	academicsController "smartcollege_backend/internals/features/academics/controller"
	dashboardController "smartcollege_backend/internals/features/dashboard/controller"
	feesController "smartcollege_backend/internals/features/fees/controller"
	notificationController "smartcollege_backend/internals/features/notifications/controller"
	peopleController "smartcollege_backend/internals/features/people/controller"
	settingController "smartcollege_backend/internals/features/settings/controller"
	timetableController "smartcollege_backend/internals/features/timetable/controller"
	authmw "smartcollege_backend/internals/middlewares/auth"
)

// CollegeAdminRoutes registers the tenant-admin area: academic structure,
// people, timetable, fees, notifications, and settings.
func CollegeAdminRoutes(api fiber.Router, db *gorm.DB) {
	departments := academicsController.NewDepartmentController(db)
	courses := academicsController.NewCourseController(db)
	subjects := academicsController.NewSubjectController(db)
	students := peopleController.NewStudentController(db)
	teachers := peopleController.NewTeacherController(db)
	timetable := timetableController.NewTimetableController(db)
	notifications := notificationController.NewNotificationController(db)
	settings := settingController.NewSettingController(db)
	fees := feesController.NewFeeController(db)
	dashboard := dashboardController.NewDashboardController(db)

	group := api.Group("/admin", authmw.OnlyRoles(constants.RoleCollegeAdmin))

	group.Get("/departments", departments.List)
	group.Post("/departments", departments.Create)
	group.Put("/departments/:id", departments.Update)
	group.Delete("/departments/:id", departments.Delete)

	group.Get("/courses", courses.List)
	group.Post("/courses", courses.Create)
	group.Put("/courses/:id", courses.Update)
	group.Delete("/courses/:id", courses.Delete)

	group.Get("/subjects", subjects.List)
	group.Post("/subjects", subjects.Create)
	group.Put("/subjects/:id", subjects.Update)
	group.Delete("/subjects/:id", subjects.Delete)

	group.Get("/students", students.List)
	group.Post("/students", students.Create)
	group.Put("/students/:id", students.Update)
	group.Delete("/students/:id", students.Delete)

	group.Get("/teachers", teachers.List)
	group.Post("/teachers", teachers.Create)
	group.Put("/teachers/:id", teachers.Update)
	group.Delete("/teachers/:id", teachers.Delete)

	group.Get("/timetable", timetable.List)
	group.Post("/timetable", timetable.Create)
	group.Put("/timetable/:id", timetable.Update)
	group.Delete("/timetable/:id", timetable.Delete)

	group.Post("/notifications", notifications.Create)
	group.Delete("/notifications/:id", notifications.Delete)

	group.Get("/settings", settings.List)
	group.Put("/settings", settings.Upsert)
	group.Delete("/settings/:key", settings.Delete)

	group.Get("/fees", fees.List)
	group.Post("/fees", fees.Create)
	group.Put("/fees/:id", fees.Update)
	group.Delete("/fees/:id", fees.Delete)

	group.Get("/dashboard", dashboard.CollegeAdmin)
}
