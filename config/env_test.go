package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultsApplyWithoutConfigFiles(t *testing.T) {
	assert.Equal(t, "8080", AppPort())
	assert.Equal(t, "localhost:6379", RedisAddr())
	assert.Equal(t, "gpt-3.5-turbo", OpenAIModel())
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_DIALECT", "postgres")

	assert.Equal(t, "9090", AppPort())
	assert.Equal(t, "postgres", DatabaseDialect())
}

func TestUnknownDialectFallsBack(t *testing.T) {
	t.Setenv("DB_DIALECT", "oracle")
	assert.Equal(t, "mysql", DatabaseDialect())
}

func TestGetTrimsAndFallsBack(t *testing.T) {
	t.Setenv("CUSTOM_FLAG", "  on  ")

	assert.Equal(t, "on", Get("CUSTOM_FLAG", "off"))
	assert.Equal(t, "off", Get("MISSING_FLAG", "off"))
}
