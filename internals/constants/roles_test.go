// file: internals/constants/roles_test.go
package constants

import "testing"

func TestLandingPath(t *testing.T) {
	tests := []struct {
		name string
		role string
		want string
	}{
		{"super admin", RoleSuperAdmin, SuperAdminDashboard},
		{"college admin", RoleCollegeAdmin, CollegeAdminDashboard},
		{"teacher", RoleTeacher, TeacherDashboard},
		{"student", RoleStudent, StudentDashboard},
		{"lowercase role", "student", StudentDashboard},
		{"mixed case role", "Teacher", TeacherDashboard},
		{"padded role", "  STUDENT  ", StudentDashboard},
		{"unknown role", "REGISTRAR", LoginPath},
		{"empty role", "", LoginPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LandingPath(tt.role); got != tt.want {
				t.Errorf("LandingPath(%q) = %q, want %q", tt.role, got, tt.want)
			}
		})
	}
}

func TestIsValidRole(t *testing.T) {
	for _, r := range AllRoles {
		if !IsValidRole(r) {
			t.Errorf("IsValidRole(%q) = false, want true", r)
		}
	}
	for _, r := range []string{"", "ADMIN", "superadmin "} {
		if IsValidRole(r) {
			t.Errorf("IsValidRole(%q) = true, want false", r)
		}
	}
}

func TestRoleAllowed(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		allowed []string
		want    bool
	}{
		{"member", RoleTeacher, StaffRoles, true},
		{"non member", RoleStudent, StaffRoles, false},
		{"case insensitive", "teacher", StaffRoles, true},
		{"empty allow list", RoleSuperAdmin, nil, false},
		{"empty role", "", AllRoles, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoleAllowed(tt.role, tt.allowed); got != tt.want {
				t.Errorf("RoleAllowed(%q, %v) = %v, want %v", tt.role, tt.allowed, got, tt.want)
			}
		})
	}
}
