// file: internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartcollege_backend/internals/constants"
	attendanceModel "smartcollege_backend/internals/features/attendance/model"
	feeModel "smartcollege_backend/internals/features/fees/model"
	helper "smartcollege_backend/internals/helpers"
)

// DashboardController serves the landing-page counters for each role.
type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

func (ctrl *DashboardController) count(table string, query string, args ...interface{}) int64 {
	var n int64
	ctrl.DB.Table(table).Where("deleted_at IS NULL").Where(query, args...).Count(&n)
	return n
}

// SuperAdmin handles GET /superadmin/dashboard — platform-wide totals.
func (ctrl *DashboardController) SuperAdmin(c *fiber.Ctx) error {
	var activeColleges int64
	ctrl.DB.Table("colleges").Where("deleted_at IS NULL AND is_active = true").Count(&activeColleges)

	var totalUsers int64
	ctrl.DB.Table("users").Count(&totalUsers)

	return helper.JsonOK(c, "OK", fiber.Map{
		"total_colleges":  ctrl.count("colleges", "1=1"),
		"active_colleges": activeColleges,
		"total_users":     totalUsers,
	})
}

// CollegeAdmin handles GET /admin/dashboard — tenant-wide totals.
func (ctrl *DashboardController) CollegeAdmin(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}

	var pendingFees int64
	ctrl.DB.Model(&feeModel.FeeInstallmentModel{}).
		Where("college_id = ? AND status = ?", collegeID, feeModel.FeeStatusPending).
		Count(&pendingFees)

	return helper.JsonOK(c, "OK", fiber.Map{
		"students":                 ctrl.count("students", "college_id = ?", collegeID),
		"teachers":                 ctrl.count("teachers", "college_id = ?", collegeID),
		"departments":              ctrl.count("departments", "college_id = ?", collegeID),
		"courses":                  ctrl.count("courses", "college_id = ?", collegeID),
		"subjects":                 ctrl.count("subjects", "college_id = ?", collegeID),
		"pending_fee_installments": pendingFees,
	})
}

// Teacher handles GET /teacher/dashboard — the caller's teaching load.
func (ctrl *DashboardController) Teacher(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var openSessions int64
	ctrl.DB.Model(&attendanceModel.AttendanceSessionModel{}).
		Where("attendance_session_college_id = ? AND attendance_session_teacher_id = ? AND attendance_session_status = ?",
			collegeID, userID, attendanceModel.SessionOpen).
		Count(&openSessions)

	return helper.JsonOK(c, "OK", fiber.Map{
		"subjects":        ctrl.count("subjects", "college_id = ? AND teacher_id = ?", collegeID, userID),
		"timetable_slots": ctrl.count("timetable_entries", "college_id = ? AND teacher_id = ?", collegeID, userID),
		"open_sessions":   openSessions,
	})
}

// Student handles GET /student/dashboard — attendance and fee rollups.
func (ctrl *DashboardController) Student(c *fiber.Ctx) error {
	collegeID, err := helper.GetCollegeIDFromToken(c)
	if err != nil {
		return err
	}
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var profile struct{ ID uuid.UUID }
	if err := ctrl.DB.Table("students").
		Select("id").
		Where("user_id = ? AND college_id = ? AND deleted_at IS NULL", userID, collegeID).
		Take(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student profile not found")
	}

	var att struct {
		Total   int
		Present int
	}
	ctrl.DB.Table("attendance_records AS r").
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE r.attendance_record_status = ?) AS present", attendanceModel.RecordPresent).
		Where("r.attendance_record_student_id = ?", profile.ID).
		Take(&att)

	var fees []feeModel.FeeInstallmentModel
	ctrl.DB.Where("college_id = ? AND student_id = ?", collegeID, profile.ID).Find(&fees)

	return helper.JsonOK(c, "OK", fiber.Map{
		"attendance": fiber.Map{
			"total_lectures": att.Total,
			"present":        att.Present,
			"percentage":     attendanceModel.Percentage(att.Present, att.Total),
		},
		"fees": feeModel.Summarize(fees),
	})
}

// ForRole dispatches to the handler matching the caller's role claim.
func (ctrl *DashboardController) ForRole(c *fiber.Ctx) error {
	switch helper.GetRoleFromLocals(c) {
	case constants.RoleSuperAdmin:
		return ctrl.SuperAdmin(c)
	case constants.RoleCollegeAdmin:
		return ctrl.CollegeAdmin(c)
	case constants.RoleTeacher:
		return ctrl.Teacher(c)
	case constants.RoleStudent:
		return ctrl.Student(c)
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Unknown role")
	}
}
