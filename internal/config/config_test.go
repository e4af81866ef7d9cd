package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_PATH", "JWT_EXPIRES_DAYS", "NODE_ENV", "WORDS_ALLOWED_FILE"} {
		t.Setenv(k, "")
	}
	c := FromEnv()
	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, "./data/wordboard.db", c.DBPath)
	assert.Equal(t, 14, c.JWTExpiresDays)
	assert.False(t, c.Production)
	assert.Empty(t, c.AllowedFile)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_EXPIRES_DAYS", "3")
	t.Setenv("NODE_ENV", "production")
	t.Setenv("WORDS_ALLOWED_FILE", "/tmp/allowed.txt")

	c := FromEnv()
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, 3, c.JWTExpiresDays)
	assert.True(t, c.Production)
	assert.Equal(t, "/tmp/allowed.txt", c.AllowedFile)
}

func TestBadIntFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRES_DAYS", "soon")
	assert.Equal(t, 14, FromEnv().JWTExpiresDays)
}
