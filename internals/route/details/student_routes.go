// file: internals/route/details/student_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartcollege_backend/internals/constants"
	attendanceController "smartcollege_backend/internals/features/attendance/controller"
	dashboardController "smartcollege_backend/internals/features/dashboard/controller"
	feesController "smartcollege_backend/internals/features/fees/controller"
	peopleController "smartcollege_backend/internals/features/people/controller"
	timetableController "smartcollege_backend/internals/features/timetable/controller"
	authmw "smartcollege_backend/internals/middlewares/auth"
)

// StudentRoutes registers the student self-service area.
func StudentRoutes(api fiber.Router, db *gorm.DB) {
	students := peopleController.NewStudentController(db)
	timetable := timetableController.NewTimetableController(db)
	records := attendanceController.NewRecordController(db)
	fees := feesController.NewFeeController(db)
	dashboard := dashboardController.NewDashboardController(db)

	group := api.Group("/student", authmw.OnlyRoles(constants.RoleStudent))

	group.Get("/profile", students.MyProfile)
	group.Get("/timetable", timetable.MySchedule)
	group.Get("/attendance", records.MyAttendance)

	group.Get("/fees", fees.MyFees)
	group.Post("/fees/:id/checkout", fees.Checkout)

	group.Get("/dashboard", dashboard.Student)
}
