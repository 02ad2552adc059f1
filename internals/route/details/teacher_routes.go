// file: internals/route/details/teacher_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"smartcollege_backend/internals/constants"
	academicsController "smartcollege_backend/internals/features/academics/controller"
	attendanceController "smartcollege_backend/internals/features/attendance/controller"
	dashboardController "smartcollege_backend/internals/features/dashboard/controller"
	peopleController "smartcollege_backend/internals/features/people/controller"
	timetableController "smartcollege_backend/internals/features/timetable/controller"
	authmw "smartcollege_backend/internals/middlewares/auth"
)

// TeacherRoutes registers the teaching-staff area, attendance sessions in
// particular.
func TeacherRoutes(api fiber.Router, db *gorm.DB) {
	teachers := peopleController.NewTeacherController(db)
	subjects := academicsController.NewSubjectController(db)
	timetable := timetableController.NewTimetableController(db)
	sessions := attendanceController.NewSessionController(db)
	records := attendanceController.NewRecordController(db)
	dashboard := dashboardController.NewDashboardController(db)

	group := api.Group("/teacher", authmw.OnlyRoles(constants.RoleTeacher))

	group.Get("/profile", teachers.MyProfile)
	group.Get("/subjects", subjects.List)
	group.Get("/timetable", timetable.List)

	group.Get("/sessions", sessions.List)
	group.Post("/sessions", sessions.Create)
	group.Get("/sessions/:id", sessions.GetByID)
	group.Get("/sessions/:id/roster", sessions.Roster)
	group.Post("/sessions/:id/close", sessions.Close)
	group.Delete("/sessions/:id", sessions.Delete)

	group.Post("/sessions/:id/records", records.Mark)
	group.Get("/sessions/:id/records", records.GetRecords)

	group.Get("/dashboard", dashboard.Teacher)
}
