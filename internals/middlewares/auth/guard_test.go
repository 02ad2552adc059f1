// file: internals/middlewares/auth/guard_test.go
package auth

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartcollege_backend/internals/constants"
	helper "smartcollege_backend/internals/helpers"
)

func TestDecide(t *testing.T) {
	student := &Identity{UserID: "u1", Role: constants.RoleStudent}
	teacher := &Identity{UserID: "u2", Role: constants.RoleTeacher}

	tests := []struct {
		name     string
		identity *Identity
		allowed  []string
		want     Decision
	}{
		{"nil identity", nil, constants.AllRoles, DecisionLogin},
		{"empty role", &Identity{UserID: "u3"}, constants.AllRoles, DecisionLogin},
		{"unknown role", &Identity{UserID: "u4", Role: "JANITOR"}, constants.AllRoles, DecisionLogin},
		{"student on student area", student, []string{constants.RoleStudent}, DecisionAllow},
		{"student on admin area", student, constants.AdminRoles, DecisionFallback},
		{"teacher on staff area", teacher, constants.StaffRoles, DecisionAllow},
		{"teacher on student area", teacher, []string{constants.RoleStudent}, DecisionFallback},
		{"lowercase role claim", &Identity{UserID: "u5", Role: "student"}, []string{constants.RoleStudent}, DecisionAllow},
		{"empty allow list", student, nil, DecisionFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.identity, tt.allowed); got != tt.want {
				t.Errorf("Decide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRedirectTarget(t *testing.T) {
	student := &Identity{UserID: "u1", Role: constants.RoleStudent}

	if got := RedirectTarget(student, DecisionFallback); got != constants.StudentDashboard {
		t.Errorf("fallback target = %q, want %q", got, constants.StudentDashboard)
	}
	if got := RedirectTarget(nil, DecisionLogin); got != constants.LoginPath {
		t.Errorf("login target = %q, want %q", got, constants.LoginPath)
	}
	if got := RedirectTarget(nil, DecisionFallback); got != constants.LoginPath {
		t.Errorf("fallback without identity = %q, want %q", got, constants.LoginPath)
	}
}

func newGuardedApp(identity *Identity, roles ...string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if identity != nil {
			c.Locals(helper.LocUserID, identity.UserID)
			c.Locals(helper.LocUserRole, identity.Role)
		}
		return c.Next()
	})
	app.Get("/guarded", OnlyRoles(roles...), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestOnlyRoles(t *testing.T) {
	t.Run("allowed role passes through", func(t *testing.T) {
		app := newGuardedApp(&Identity{UserID: "u1", Role: constants.RoleTeacher}, constants.RoleTeacher)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("wrong role gets redirect to own landing", func(t *testing.T) {
		app := newGuardedApp(&Identity{UserID: "u1", Role: constants.RoleStudent}, constants.RoleCollegeAdmin)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var payload struct {
			Status     string `json:"status"`
			RedirectTo string `json:"redirect_to"`
		}
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "redirect", payload.Status)
		assert.Equal(t, constants.StudentDashboard, payload.RedirectTo)
	})

	t.Run("no identity gets redirect to login", func(t *testing.T) {
		app := newGuardedApp(nil, constants.RoleStudent)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var payload struct {
			RedirectTo string `json:"redirect_to"`
		}
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, constants.LoginPath, payload.RedirectTo)
	})
}
