// file: internals/middlewares/auth/guard.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"smartcollege_backend/internals/constants"
	helper "smartcollege_backend/internals/helpers"
)

// Identity is the authenticated principal as seen by the guard. Built from
// token claims by the auth middleware; nil means unauthenticated.
type Identity struct {
	UserID string
	Role   string
}

type Decision int

const (
	DecisionAllow    Decision = iota
	DecisionLogin             // no identity → go to login
	DecisionFallback          // wrong role → go to role landing page
)

// Decide is the whole access decision, kept free of fiber so it can be tested
// in isolation. An identity with an unknown role is treated as unauthenticated
// rather than forbidden: a token we cannot classify gets no fallback page.
func Decide(identity *Identity, allowed []string) Decision {
	if identity == nil || identity.Role == "" {
		return DecisionLogin
	}
	if !constants.IsValidRole(identity.Role) {
		return DecisionLogin
	}
	if constants.RoleAllowed(identity.Role, allowed) {
		return DecisionAllow
	}
	return DecisionFallback
}

// RedirectTarget resolves where a rejected request should be sent.
func RedirectTarget(identity *Identity, d Decision) string {
	if d == DecisionFallback && identity != nil {
		return constants.LandingPath(identity.Role)
	}
	return constants.LoginPath
}

// IdentityFromLocals rebuilds the Identity the auth middleware stored.
func IdentityFromLocals(c *fiber.Ctx) *Identity {
	id, _ := c.Locals(helper.LocUserID).(string)
	role, _ := c.Locals(helper.LocUserRole).(string)
	if id == "" {
		return nil
	}
	return &Identity{UserID: id, Role: role}
}

// OnlyRoles guards a route group with an allow-list. Rejections carry a
// machine-readable redirect target instead of an error message: the wrong-role
// case is a silent redirect on the client, not a toast.
func OnlyRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := IdentityFromLocals(c)
		switch d := Decide(identity, roles); d {
		case DecisionAllow:
			return c.Next()
		case DecisionFallback:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"code":        fiber.StatusForbidden,
				"status":      "redirect",
				"redirect_to": RedirectTarget(identity, d),
			})
		default:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":        fiber.StatusUnauthorized,
				"status":      "redirect",
				"redirect_to": constants.LoginPath,
			})
		}
	}
}
