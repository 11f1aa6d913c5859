package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("DOJO_TEST_INT", "42")
	assert.Equal(t, 42, getEnvAsInt("DOJO_TEST_INT", 1))

	t.Setenv("DOJO_TEST_INT", "forty-two")
	assert.Equal(t, 1, getEnvAsInt("DOJO_TEST_INT", 1))
	assert.Equal(t, 7, getEnvAsInt("DOJO_TEST_UNSET", 7))
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("DOJO_TEST_LIST", "https://a.example, ,https://b.example")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, getEnvAsList("DOJO_TEST_LIST", nil))
	assert.Equal(t, []string{"x"}, getEnvAsList("DOJO_TEST_LIST_UNSET", []string{"x"}))
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CATALOG_WATCH", "true")
	cfg := loadConfig()
	assert.Equal(t, "8000", cfg.Port)
	assert.True(t, cfg.WatchCatalog)
	assert.Equal(t, 60, cfg.CacheTTLSeconds)
}

func TestIsProduction(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	assert.True(t, IsProduction())
	t.Setenv("ENVIRONMENT", "")
	assert.True(t, IsDevelopment())
}
