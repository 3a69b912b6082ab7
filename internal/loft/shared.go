package loft

import (
	"os"

	"github.com/rs/zerolog"
)

const (
	// PublicRead is the ACL requested for every uploaded object.
	PublicRead = "public-read"

	// Threads is the default number of concurrent uploads.
	Threads = 10
)

// Logger is the default logger for the package.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
