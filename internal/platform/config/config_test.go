// Copyright (c) 2026 Flix. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/flix/internal/platform/config"
)

/*
TestLoad_Defaults verifies defaults when only the required secret is set.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "./data", cfg.DataPath)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Empty(t, cfg.RedisURL)
	assert.True(t, cfg.IsDevelopment())
}

/*
TestLoad_Lists parses comma-separated variables.
*/
func TestLoad_Lists(t *testing.T) {
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("ADMIN_USERNAMES", "thorke,fmercury")
	t.Setenv("EXTRA_ORIGINS", "https://flix.example")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsAdmin("fmercury"))
	assert.False(t, cfg.IsAdmin("mjackson"))
	assert.True(t, cfg.AllowsOrigin("https://flix.example"))
	assert.True(t, cfg.IsProduction())
}

func TestLoad_Failures(t *testing.T) {
	t.Run("missing_secret", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("bad_bcrypt_cost", func(t *testing.T) {
		t.Setenv("SESSION_SECRET", "secret")
		t.Setenv("BCRYPT_COST", "99")
		_, err := config.Load()
		assert.Error(t, err)
	})
}
