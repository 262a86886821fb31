package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, "cs_teaching.db", cfg.DBPath)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, 100, cfg.MaxUploadMB)
	assert.Equal(t, []string{".blend"}, cfg.AllowedExts)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.NotEmpty(t, cfg.SessionSecret)
}

func TestRandomSecretWhenUnset(t *testing.T) {
	first, err := LoadConfig()
	assert.NoError(t, err)
	second, err := LoadConfig()
	assert.NoError(t, err)

	// Unconfigured secrets are per-process random values
	assert.NotEqual(t, first.SessionSecret, second.SessionSecret)
}

func TestExplicitSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "configured-secret")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "configured-secret", cfg.SessionSecret)
}

func TestParseExtensions(t *testing.T) {
	assert.Equal(t, []string{".blend"}, parseExtensions(".blend"))
	assert.Equal(t, []string{".blend", ".fbx"}, parseExtensions("blend, FBX"))
	assert.Equal(t, []string{".obj"}, parseExtensions(" .OBJ ,"))
	assert.Nil(t, parseExtensions(""))
}

func TestMaxUploadBytes(t *testing.T) {
	t.Setenv("MAX_UPLOAD_MB", "2")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, 2*1024*1024, cfg.MaxUploadBytes())
}
