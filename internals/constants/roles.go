// file: internals/constants/roles.go
package constants

import "strings"

// Closed role enumeration. Every role check in the codebase goes through
// RoleAllowed; handlers never compare role strings ad hoc.
const (
	RoleSuperAdmin   = "SUPER_ADMIN"
	RoleCollegeAdmin = "COLLEGE_ADMIN"
	RoleTeacher      = "TEACHER"
	RoleStudent      = "STUDENT"
)

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSuperAdmin,
		RoleCollegeAdmin,
		RoleTeacher,
		RoleStudent,
	}

	StaffRoles = []string{
		RoleSuperAdmin,
		RoleCollegeAdmin,
		RoleTeacher,
	}

	AdminRoles = []string{
		RoleSuperAdmin,
		RoleCollegeAdmin,
	}
)

// IsValidRole reports whether role is a member of the closed enumeration.
func IsValidRole(role string) bool {
	return RoleAllowed(role, AllRoles)
}

// RoleAllowed reports whether role is a member of allowed. Case-insensitive so
// tokens minted before the enum was uppercased keep working.
func RoleAllowed(role string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(role, a) {
			return true
		}
	}
	return false
}

// ==========================
// Landing paths
// ==========================
const (
	LoginPath             = "/login"
	SuperAdminDashboard   = "/super-admin/dashboard"
	CollegeAdminDashboard = "/college-admin/dashboard"
	TeacherDashboard      = "/teacher/dashboard"
	StudentDashboard      = "/student/dashboard"
)

var landingByRole = map[string]string{
	RoleSuperAdmin:   SuperAdminDashboard,
	RoleCollegeAdmin: CollegeAdminDashboard,
	RoleTeacher:      TeacherDashboard,
	RoleStudent:      StudentDashboard,
}

// LandingPath resolves the dashboard path for a role. Total over all inputs:
// empty or unrecognized roles fall back to the login path instead of erroring,
// so the root-path redirect can never dead-end.
func LandingPath(role string) string {
	if p, ok := landingByRole[strings.ToUpper(strings.TrimSpace(role))]; ok {
		return p
	}
	return LoginPath
}
