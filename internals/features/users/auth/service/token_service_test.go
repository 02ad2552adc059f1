// file: internals/features/users/auth/service/token_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"smartcollege_backend/internals/constants"
	userModel "smartcollege_backend/internals/features/users/user/model"
)

func TestComputeRefreshHash(t *testing.T) {
	h1 := computeRefreshHash("token-a", "secret")
	h2 := computeRefreshHash("token-a", "secret")
	assert.Equal(t, h1, h2, "same token and secret must hash identically")
	assert.Len(t, h1, 32)

	assert.NotEqual(t, h1, computeRefreshHash("token-b", "secret"))
	assert.NotEqual(t, h1, computeRefreshHash("token-a", "other-secret"))
}

func TestBuildAccessClaims(t *testing.T) {
	collegeID := uuid.New()
	u := userModel.UserModel{
		ID:        uuid.New(),
		FullName:  "Asha Verma",
		Role:      constants.RoleTeacher,
		CollegeID: &collegeID,
	}
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	claims := buildAccessClaims(u, now)
	assert.Equal(t, u.ID.String(), claims["id"])
	assert.Equal(t, constants.RoleTeacher, claims["role"])
	assert.Equal(t, collegeID.String(), claims["college_id"])
	assert.Equal(t, now.Unix(), claims["iat"])
	assert.Equal(t, now.Add(accessTTLDefault).Unix(), claims["exp"])
}

func TestBuildAccessClaimsWithoutCollege(t *testing.T) {
	u := userModel.UserModel{
		ID:   uuid.New(),
		Role: constants.RoleSuperAdmin,
	}
	claims := buildAccessClaims(u, time.Now())

	_, hasCollege := claims["college_id"]
	assert.False(t, hasCollege, "platform operators carry no tenant claim")
}

func TestBuildRefreshClaims(t *testing.T) {
	id := uuid.New()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	claims := buildRefreshClaims(id, now)
	assert.Equal(t, id.String(), claims["sub"])
	assert.Equal(t, now.Add(refreshTTLDefault).Unix(), claims["exp"])
}
