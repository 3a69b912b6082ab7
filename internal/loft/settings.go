package loft

import (
	"fmt"
	"io/ioutil"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"loft/internal/stash"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Settings represents the configuration.
type Settings struct {
	Bucket   string
	Endpoint string
	Region   string
	Account  string
	Secret   string
	Template string
	Threads  int
}

// NewSettings instantiates new settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Endpoint: stash.DefaultEndpoint,
		Region:   stash.DefaultRegion,
		Template: DefaultTemplate,
		Threads:  Threads,
	}
}

// Load will load settings from a JSON encoded configuration file.
func (s *Settings) Load(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("unable to load settings from %s (%w)", file, err)
	}

	defer f.Close()

	raw, err := ioutil.ReadAll(f)
	if err != nil {
		return fmt.Errorf("unable to read settings from %s (%w)", file, err)
	}

	err = json.Unmarshal(raw, s)
	if err != nil {
		return fmt.Errorf("unable to unmarshal settings from %s (%w)", file, err)
	}
	return nil
}

// Validate will perform checks on the loaded fields.
func (s *Settings) Validate() error {
	if s.Bucket == "" {
		return fmt.Errorf("missing bucket name")
	}

	if s.Account == "" {
		return fmt.Errorf("missing account")
	}

	if s.Secret == "" {
		return fmt.Errorf("missing secret")
	}
	return nil
}

// NewBackend creates a stash client from the stored fields.
func (s *Settings) NewBackend(log zerolog.Logger) (Backend, error) {
	settings, err := stash.NewSettings(
		stash.WithBucket(s.Bucket),
		stash.Use(s.Endpoint, s.Region),
		stash.WithCredentials(s.Account, s.Secret),
		stash.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	return stash.New(settings)
}
