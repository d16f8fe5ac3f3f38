package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-secret-that-is-at-least-32-chars-long")

	cfg := Load()

	assert.Equal(t, "3000", cfg.HTTPPort)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.True(t, cfg.CORSEnabled)
	assert.False(t, cfg.AuthRequired)
	assert.True(t, cfg.Features.Inventory)
	assert.True(t, cfg.Features.MenuItems)
	assert.True(t, cfg.Features.Orders)
	assert.True(t, cfg.Features.Reviews)
	assert.True(t, cfg.Features.BranchLinkOnCreate)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "a-secret-that-is-at-least-32-chars-long")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("API_PREFIX", "")
	t.Setenv("CORS_ENABLED", "false")
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("FEATURE_INVENTORY", "false")
	t.Setenv("FEATURE_BRANCH_LINK_ON_CREATE", "false")

	cfg := Load()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "", cfg.APIPrefix)
	assert.False(t, cfg.CORSEnabled)
	assert.True(t, cfg.AuthRequired)
	assert.False(t, cfg.Features.Inventory)
	assert.False(t, cfg.Features.BranchLinkOnCreate)
}
