// file: internals/features/users/auth/service/password_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := generateOTP()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, ch := range code {
			assert.True(t, ch >= '0' && ch <= '9', "OTP %q contains non-digit", code)
		}
		seen[code] = true
	}
	// 50 draws from a million-value space colliding down to a handful would
	// point at a broken generator.
	assert.Greater(t, len(seen), 40)
}

func TestHashOTP(t *testing.T) {
	assert.Equal(t, hashOTP("123456"), hashOTP("123456"))
	assert.NotEqual(t, hashOTP("123456"), hashOTP("123457"))
	assert.Len(t, hashOTP("123456"), 64) // hex-encoded sha256
	assert.NotContains(t, hashOTP("123456"), "123456")
}

func TestGenerateResetToken(t *testing.T) {
	a, err := generateResetToken()
	require.NoError(t, err)
	b, err := generateResetToken()
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestRedisKeys(t *testing.T) {
	assert.Equal(t, "otp:a@b.c", otpKey("a@b.c"))
	assert.Equal(t, "otp:attempts:a@b.c", otpAttemptsKey("a@b.c"))
	assert.Equal(t, "otp:rate:a@b.c", otpRateKey("a@b.c"))
	assert.Equal(t, "pwreset:tok", resetTokenKey("tok"))
}
