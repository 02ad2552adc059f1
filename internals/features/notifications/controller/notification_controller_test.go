// file: internals/features/notifications/controller/notification_controller_test.go
package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartcollege_backend/internals/constants"
	helper "smartcollege_backend/internals/helpers"
)

// A SUPER_ADMIN token carries no college_id, yet /notifications is shared
// across roles. The handler must answer with an empty page, not a 403.
func TestListMineSuperAdminGetsEmptyPage(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserID, uuid.NewString())
		c.Locals(helper.LocUserRole, constants.RoleSuperAdmin)
		return c.Next()
	})
	ctrl := NewNotificationController(nil)
	app.Get("/notifications", ctrl.ListMine)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/notifications", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload struct {
		Status     string                   `json:"status"`
		Data       []map[string]interface{} `json:"data"`
		Pagination map[string]interface{}   `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "success", payload.Status)
	assert.Empty(t, payload.Data)
	assert.EqualValues(t, 0, payload.Pagination["total"])
}
