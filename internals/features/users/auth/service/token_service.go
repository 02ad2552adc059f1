// file: internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"smartcollege_backend/internals/configs"
	"smartcollege_backend/internals/constants"
	authModel "smartcollege_backend/internals/features/users/auth/model"
	authRepo "smartcollege_backend/internals/features/users/auth/repository"
	userModel "smartcollege_backend/internals/features/users/user/model"
	helper "smartcollege_backend/internals/helpers"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET is not set")
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// computeRefreshHash keys the refresh token under HMAC-SHA256 so the DB never
// holds a usable token.
func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

func buildAccessClaims(u userModel.UserModel, now time.Time) jwt.MapClaims {
	claims := jwt.MapClaims{
		"id":        u.ID.String(),
		"user_name": u.FullName,
		"role":      u.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTLDefault).Unix(),
	}
	if u.CollegeID != nil {
		claims["college_id"] = u.CollegeID.String()
	}
	return claims
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

// issueTokenPair signs a fresh access+refresh pair and stores the refresh hash.
func issueTokenPair(db *gorm.DB, c *fiber.Ctx, u *userModel.UserModel) (access string, refresh string, err error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", "", err
	}
	now := nowUTC()

	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(*u, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Failed to sign access token")
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(u.ID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Failed to sign refresh token")
	}

	if err := authRepo.CreateRefreshToken(db, &authModel.RefreshToken{
		UserID:    u.ID,
		TokenHash: computeRefreshHash(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(c.Get("User-Agent")),
		IP:        strptr(c.IP()),
	}); err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "Failed to persist refresh token")
	}
	return access, refresh, nil
}

func setRefreshCookie(c *fiber.Ctx, refresh string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  now.Add(refreshTTLDefault),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := helper.GetRefreshTokenFromCookie(c)
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	// the stored hash must still be live
	rt, err := authRepo.FindRefreshTokenByHashActive(db, computeRefreshHash(refreshCookie, refreshSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unknown refresh token")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account deactivated")
	}

	// ROTATE: revoke the old row before issuing
	_ = authRepo.RevokeRefreshTokenByID(db, rt.ID)

	access, refresh, err := issueTokenPair(db, c, user)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to rotate tokens")
	}
	setRefreshCookie(c, refresh, nowUTC())

	return helper.JsonOK(c, "Token refreshed", fiber.Map{
		"access_token": access,
		"landing_path": constants.LandingPath(user.Role),
	})
}
