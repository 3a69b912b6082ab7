package stash

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetOption allows overridding of settings.
type SetOption func(*Settings) error

// Credentials holds authentication details.
type Credentials struct {
	Account string
	Secret  string
}

// Provider represents an S3 compatible storage provider.
type Provider struct {
	Bucket   string
	Endpoint string
	Region   string
}

func (p Provider) host() string {
	return fmt.Sprintf("%s.%s", p.Bucket, p.Endpoint)
}

func (p Provider) url(path string) string {
	return fmt.Sprintf("https://%s%s", p.host(), path)
}

// Settings provide a set of options used to instantiate a client.
type Settings struct {
	Log         zerolog.Logger
	Provider    Provider
	Credentials Credentials
	Forwarder   Forwarder
	Retry       func() retryStrategy
	Pool        int
	Timeout     time.Duration
}

// NewSettings creates a default settings and then applies any given overrides.
func NewSettings(overrides ...SetOption) (s *Settings, err error) {
	s = &Settings{
		Log: log.Logger,
	}

	for _, override := range overrides {
		if err := override(s); err != nil {
			return nil, err
		}
	}

	s.applyDefaults()

	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) applyDefaults() {
	if s.Provider.Endpoint == "" {
		s.Provider.Endpoint = DefaultEndpoint
	}

	if s.Provider.Region == "" {
		s.Provider.Region = DefaultRegion
	}

	if s.Pool == 0 {
		s.Pool = 10
	}

	if s.Timeout == 0 {
		s.Timeout = 10 * time.Minute
	}

	if s.Forwarder == nil {
		s.Forwarder = NewForwarder(s.Pool, s.Timeout)
	}

	if s.Retry == nil {
		s.Retry = func() retryStrategy {
			return noRetry{}
		}
	}
}

func (s *Settings) validate() error {
	if len(s.Provider.Bucket) == 0 {
		return fmt.Errorf("a bucket is required")
	}

	if len(s.Credentials.Account) == 0 {
		return fmt.Errorf("a key is required")
	}

	if len(s.Credentials.Secret) == 0 {
		return fmt.Errorf("a secret is required")
	}
	return nil
}

// WithBucket sets the bucket objects are stored in.
func WithBucket(name string) SetOption {
	return func(s *Settings) error {
		s.Provider.Bucket = name
		return nil
	}
}

// WithCredentials sets the credentials used.
func WithCredentials(account, secret string) SetOption {
	return func(s *Settings) error {
		s.Credentials = Credentials{account, secret}
		return nil
	}
}

// Use sets the endpoint and region.
func Use(endpoint, region string) SetOption {
	return func(settings *Settings) error {
		settings.Provider.Endpoint = endpoint
		settings.Provider.Region = region
		return nil
	}
}

// UseWasabi sets the endpoint for the region.
func UseWasabi(region string) SetOption {
	return func(settings *Settings) error {
		return Use(fmt.Sprintf("s3.%s.wasabisys.com", region), region)(settings)
	}
}

// UseBackblaze sets the endpoint for the region.
func UseBackblaze(region string) SetOption {
	return func(settings *Settings) error {
		return Use(fmt.Sprintf("s3.%s.backblazeb2.com", region), region)(settings)
	}
}

// WithLogger sets the logger used.
func WithLogger(log zerolog.Logger) SetOption {
	return func(settings *Settings) error {
		settings.Log = log
		return nil
	}
}

// WithPool sets the connection pool size used by the default forwarder.
func WithPool(pool int) SetOption {
	return func(settings *Settings) error {
		settings.Pool = pool
		return nil
	}
}

// WithTimeout sets the request timeout used by the default forwarder.
func WithTimeout(timeout time.Duration) SetOption {
	return func(settings *Settings) error {
		settings.Timeout = timeout
		return nil
	}
}

// WithForwarder sets the HTTP forwarder used.
func WithForwarder(forwarder Forwarder) SetOption {
	return func(settings *Settings) error {
		settings.Forwarder = forwarder
		return nil
	}
}

// WithRetry sets the retry strategy used.
func WithRetry(retry func() retryStrategy) SetOption {
	return func(settings *Settings) error {
		settings.Retry = retry
		return nil
	}
}
