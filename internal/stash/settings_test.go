package stash

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSettingsDefaults(t *testing.T) {
	settings, err := NewSettings(
		WithBucket("media"),
		WithCredentials("account", "secret"),
	)
	assert.NoError(t, err)
	assert.Equal(t, DefaultEndpoint, settings.Provider.Endpoint)
	assert.Equal(t, DefaultRegion, settings.Provider.Region)
	assert.NotNil(t, settings.Forwarder)
	assert.IsType(t, noRetry{}, settings.Retry())
	assert.Equal(t, 10, settings.Pool)
	assert.Equal(t, 10*time.Minute, settings.Timeout)
}

func TestSettingsPoolAndTimeout(t *testing.T) {
	settings, err := NewSettings(
		WithBucket("media"),
		WithCredentials("account", "secret"),
		WithPool(4),
		WithTimeout(30*time.Second),
	)
	assert.NoError(t, err)
	assert.Equal(t, 4, settings.Pool)
	assert.Equal(t, 30*time.Second, settings.Timeout)
	assert.NotNil(t, settings.Forwarder)
}

func TestSettingsValidation(t *testing.T) {
	_, err := NewSettings()
	assert.Error(t, err)

	_, err = NewSettings(WithBucket("media"))
	assert.Error(t, err)

	_, err = NewSettings(WithBucket("media"), WithCredentials("account", ""))
	assert.Error(t, err)
}

func TestProviderHost(t *testing.T) {
	settings, err := NewSettings(
		WithBucket("media"),
		UseWasabi("eu-central-1"),
		WithCredentials("account", "secret"),
	)
	assert.NoError(t, err)
	assert.Equal(t, "media.s3.eu-central-1.wasabisys.com", settings.Provider.host())
	assert.Equal(t, "https://media.s3.eu-central-1.wasabisys.com/a.txt", settings.Provider.url("/a.txt"))
}
