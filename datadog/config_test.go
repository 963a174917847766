package datadog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingAPIKeyIsFatal(t *testing.T) {
	t.Setenv("DD_API_KEY", "")
	t.Setenv("DD_APP_KEY", "app-key")
	t.Setenv("DD_SITE", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DD_API_KEY")
}

func TestLoadConfig_MissingAppKeyIsFatal(t *testing.T) {
	t.Setenv("DD_API_KEY", "api-key")
	t.Setenv("DD_APP_KEY", "")
	t.Setenv("DD_SITE", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DD_APP_KEY")
}

func TestLoadConfig_DefaultsSite(t *testing.T) {
	t.Setenv("DD_API_KEY", "api-key")
	t.Setenv("DD_APP_KEY", "app-key")
	t.Setenv("DD_SITE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultSite, cfg.Site)
	assert.Equal(t, "api-key", cfg.APIKey)
	assert.Equal(t, "app-key", cfg.AppKey)
}

func TestLoadConfig_HonorsCustomSite(t *testing.T) {
	t.Setenv("DD_API_KEY", "api-key")
	t.Setenv("DD_APP_KEY", "app-key")
	t.Setenv("DD_SITE", "datadoghq.eu")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "datadoghq.eu", cfg.Site)
}
