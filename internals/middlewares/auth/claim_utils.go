// file: internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	helper "smartcollege_backend/internals/helpers"
)

func extractBearerToken(c *fiber.Ctx) (string, error) {
	if raw := helper.GetRawAccessToken(c); raw != "" {
		return raw, nil
	}
	return "", errors.New("Unauthorized - missing token")
}

// validateTokenExpiry checks exp with a small leeway for clock skew.
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	exp := time.Unix(int64(expFloat), 0)
	if time.Now().After(exp.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["id"]
	if !ok {
		raw, ok = claims["user_id"]
	}
	if !ok {
		return uuid.Nil, errors.New("missing user id claim")
	}
	s, ok := raw.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, errors.New("invalid user id claim")
	}
	return uuid.Parse(strings.TrimSpace(s))
}

// storeClaimsToLocals copies the claims every handler needs into Locals.
// Role is normalized to the uppercase enum once, here, so downstream code
// never has to care about token casing.
func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if role, ok := claims["role"].(string); ok {
		c.Locals(helper.LocUserRole, strings.ToUpper(strings.TrimSpace(role)))
	}
	if name, ok := claims["user_name"].(string); ok {
		c.Locals("user_name", name)
	}
	if collegeID, ok := claims["college_id"].(string); ok && collegeID != "" {
		c.Locals(helper.LocCollegeID, collegeID)
	}
}
