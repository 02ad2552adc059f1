// file: internals/features/users/auth/service/password_service.go
package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"smartcollege_backend/internals/constants"
	authRepo "smartcollege_backend/internals/features/users/auth/repository"
	helper "smartcollege_backend/internals/helpers"
	"smartcollege_backend/internals/services/mailer"
)

const (
	otpTTL           = 10 * time.Minute
	otpMaxAttempts   = 5
	resetTokenTTL    = 15 * time.Minute
	otpRateWindow    = 15 * time.Minute
	otpRatePerWindow = 3
)

func otpKey(email string) string         { return "otp:" + email }
func otpAttemptsKey(email string) string { return "otp:attempts:" + email }
func otpRateKey(email string) string     { return "otp:rate:" + email }
func resetTokenKey(token string) string  { return "pwreset:" + token }

func hashOTP(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func generateResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

/* ========================== FORGOT PASSWORD ========================== */

// ForgotPassword handles POST /api/auth/forgot-password. Unknown emails are
// reported with EMAIL_NOT_FOUND (surfaced inline on the form, no toast);
// per-email request rate is capped with RATE_LIMIT_EXCEEDED.
func ForgotPassword(db *gorm.DB, rdb *redis.Client, mail mailer.Service, c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Email is required")
	}

	user, err := authRepo.FindUserByEmail(db, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorCode(c, fiber.StatusNotFound,
				constants.CodeEmailNotFound, "Please Enter Valid or Registered Email")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to look up email")
	}

	ctx := c.UserContext()

	// per-email rate window, enforced before generating anything
	count, err := rdb.Incr(ctx, otpRateKey(email)).Result()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "OTP service unavailable")
	}
	if count == 1 {
		rdb.Expire(ctx, otpRateKey(email), otpRateWindow)
	}
	if count > otpRatePerWindow {
		return helper.JsonErrorCode(c, fiber.StatusTooManyRequests,
			constants.CodeRateLimitExceeded, "Too many OTP requests, try again later")
	}

	code, err := generateOTP()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate OTP")
	}

	// only the hash is stored; a fresh request resets the attempt counter
	if err := rdb.Set(ctx, otpKey(email), hashOTP(code), otpTTL).Err(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "OTP service unavailable")
	}
	rdb.Del(ctx, otpAttemptsKey(email))

	mail.Send(user.Email, "Your password reset code",
		fmt.Sprintf("Hello %s,\n\nYour OTP is %s. It expires in %d minutes.", user.FullName, code, int(otpTTL.Minutes())))

	return helper.JsonOK(c, "OTP sent to your email", nil)
}

/* ========================== VERIFY OTP ========================== */

// VerifyOTP handles POST /api/auth/verify-otp and trades a valid OTP for a
// short-lived reset token. Attempts are bounded; the OTP burns on success.
func VerifyOTP(rdb *redis.Client, c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	code := strings.TrimSpace(input.OTP)
	if email == "" || code == "" {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Email and OTP are required")
	}

	ctx := c.UserContext()

	stored, err := rdb.Get(ctx, otpKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return helper.JsonErrorCode(c, fiber.StatusGone,
			constants.CodeOTPExpired, "OTP expired, request a new one")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "OTP service unavailable")
	}

	attempts, _ := rdb.Incr(ctx, otpAttemptsKey(email)).Result()
	if attempts == 1 {
		rdb.Expire(ctx, otpAttemptsKey(email), otpTTL)
	}
	if attempts > otpMaxAttempts {
		rdb.Del(ctx, otpKey(email))
		return helper.JsonErrorCode(c, fiber.StatusTooManyRequests,
			constants.CodeRateLimitExceeded, "Too many wrong attempts, request a new OTP")
	}

	if hashOTP(code) != stored {
		return helper.JsonErrorCode(c, fiber.StatusUnauthorized,
			constants.CodeInvalidOTP, "Incorrect OTP")
	}

	token, err := generateResetToken()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue reset token")
	}
	if err := rdb.Set(ctx, resetTokenKey(token), email, resetTokenTTL).Err(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "OTP service unavailable")
	}
	rdb.Del(ctx, otpKey(email), otpAttemptsKey(email))

	return helper.JsonOK(c, "OTP verified", fiber.Map{"reset_token": token})
}

/* ========================== RESET PASSWORD ========================== */

// ResetPassword handles POST /api/auth/reset-password with a reset token from
// VerifyOTP. The token is single use.
func ResetPassword(db *gorm.DB, rdb *redis.Client, c *fiber.Ctx) error {
	var input struct {
		ResetToken  string `json:"reset_token"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if len(input.NewPassword) < 8 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Password must be at least 8 characters")
	}

	ctx := c.UserContext()

	email, err := rdb.GetDel(ctx, resetTokenKey(strings.TrimSpace(input.ResetToken))).Result()
	if errors.Is(err, redis.Nil) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Reset token invalid or expired")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "OTP service unavailable")
	}

	user, err := authRepo.FindUserByEmail(db, email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := authRepo.UpdateUserPassword(db, user.ID, string(hashed)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	// force re-login everywhere
	_ = authRepo.RevokeRefreshTokensForUser(db, user.ID)

	return helper.JsonUpdated(c, "Password reset successfully", nil)
}

/* ========================== CHANGE PASSWORD ========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if len(input.NewPassword) < 8 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Password must be at least 8 characters")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}
	if err := authRepo.UpdateUserPassword(db, userID, string(newHash)); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
