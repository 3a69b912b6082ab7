package loft

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"loft/internal/stash"
)

func TestReadSettings(t *testing.T) {
	raw := `
	{
		"bucket": "media",
		"endpoint": "s3.eu-central-003.backblazeb2.com",
		"region": "eu-central-003",
		"account": "123456789",
		"secret": "SSSSHH",
		"template": "/uploads/{name}.{ext}",
		"threads": 20
	}
	`

	dir := t.TempDir()
	file := filepath.Join(dir, "loft.conf")
	assert.NoError(t, ioutil.WriteFile(file, []byte(raw), os.FileMode(0600)))

	settings := NewSettings()
	assert.NoError(t, settings.Load(file))

	assert.Equal(t, "media", settings.Bucket)
	assert.Equal(t, "s3.eu-central-003.backblazeb2.com", settings.Endpoint)
	assert.Equal(t, "eu-central-003", settings.Region)
	assert.Equal(t, "123456789", settings.Account)
	assert.Equal(t, "SSSSHH", settings.Secret)
	assert.Equal(t, "/uploads/{name}.{ext}", settings.Template)
	assert.Equal(t, 20, settings.Threads)
	assert.NoError(t, settings.Validate())
}

func TestSettingsDefaults(t *testing.T) {
	settings := NewSettings()
	assert.Equal(t, stash.DefaultEndpoint, settings.Endpoint)
	assert.Equal(t, stash.DefaultRegion, settings.Region)
	assert.Equal(t, DefaultTemplate, settings.Template)
	assert.Equal(t, Threads, settings.Threads)
}

func TestSettingsValidation(t *testing.T) {
	settings := NewSettings()
	assert.Error(t, settings.Validate())

	settings.Bucket = "media"
	assert.Error(t, settings.Validate())

	settings.Account = "123456789"
	assert.Error(t, settings.Validate())

	settings.Secret = "SSSSHH"
	assert.NoError(t, settings.Validate())
}

func TestSettingsLoadMissingFile(t *testing.T) {
	settings := NewSettings()
	assert.Error(t, settings.Load("/does/not/exist.conf"))
}

func TestNewBackend(t *testing.T) {
	settings := NewSettings()
	settings.Bucket = "media"
	settings.Account = "123456789"
	settings.Secret = "SSSSHH"

	backend, err := settings.NewBackend(Logger)
	assert.NoError(t, err)
	assert.NotNil(t, backend)
}
