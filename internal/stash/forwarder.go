package stash

import (
	"net/http"
	"time"
)

// Forwarder dispatches a request and returns the raw response. Status code
// handling belongs to the caller.
type Forwarder func(*http.Request) (*http.Response, error)

// NewForwarder creates a Forwarder over http.Client with a bounded connection
// pool and an overall request timeout.
func NewForwarder(pool int, timeout time.Duration) Forwarder {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxConnsPerHost = pool + 1
	t.MaxIdleConnsPerHost = pool + 1

	c := http.Client{
		Transport: t,
		Timeout:   timeout,
	}
	return c.Do
}
