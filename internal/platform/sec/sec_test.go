// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/flix/internal/platform/sec"
)

/*
TestPasswordHash verifies a hash round-trip and rejection of wrong passwords.
*/
func TestPasswordHash(t *testing.T) {
	hash, err := sec.HashPasswordWithCost("hunter22", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, sec.CheckPasswordHash("hunter22", hash))
	assert.False(t, sec.CheckPasswordHash("hunter23", hash))
}

/*
TestTokenService_RoundTrip issues a token and verifies its claims.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("secret", "flix.test")
	require.NoError(t, err)

	token, issued, err := service.GenerateAccessToken("fmercury", "fmercury", string(sec.RoleMember), time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, issued.ID)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "fmercury", claims.Username)
	assert.Equal(t, issued.ID, claims.ID)
	assert.Equal(t, "member", claims.Role)
}

/*
TestTokenService_Rejects covers expiry, foreign secrets and garbage input.
*/
func TestTokenService_Rejects(t *testing.T) {
	service, err := sec.NewTokenService("secret", "flix.test")
	require.NoError(t, err)
	other, err := sec.NewTokenService("another-secret", "flix.test")
	require.NoError(t, err)

	expired, _, err := service.GenerateAccessToken("u", "u", "member", -time.Minute)
	require.NoError(t, err)
	foreign, _, err := other.GenerateAccessToken("u", "u", "member", time.Minute)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired": expired,
		"foreign": foreign,
		"garbage": "not.a.token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := service.VerifyToken(token)
			assert.ErrorIs(t, err, sec.ErrInvalidToken)
		})
	}

	_, err = sec.NewTokenService("", "flix.test")
	assert.Error(t, err)
}

func TestUserRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleMember))
	assert.False(t, sec.RoleMember.AtLeast(sec.RoleAdmin))
	assert.False(t, sec.UserRole("guest").AtLeast(sec.RoleMember))
}
