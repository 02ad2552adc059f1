// file: internals/constants/error_codes.go
package constants

// Machine-readable error codes carried in the error envelope next to the
// human message. Clients branch on these for bespoke copy.
const (
	CodeEmailNotFound     = "EMAIL_NOT_FOUND"
	CodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	CodeSessionClosed     = "SESSION_CLOSED"
	CodeInvalidOTP        = "INVALID_OTP"
	CodeOTPExpired        = "OTP_EXPIRED"
)
