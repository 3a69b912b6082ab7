package stash

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Stash stores, retrieves, and deletes objects in an S3 compatible store by
// issuing signed requests against the REST API.
type Stash struct {
	log       zerolog.Logger
	provider  Provider
	forwarder Forwarder
	retry     func() retryStrategy
	auth      authenticator
}

// New returns an initialized client based on the settings.
func New(s *Settings) (*Stash, error) {
	return &Stash{
		s.Log,
		s.Provider,
		s.Forwarder,
		s.Retry,
		newAuthenticator(s.Provider.host(), s.Provider.Region, s.Credentials.Account, s.Credentials.Secret),
	}, nil
}

func (s *Stash) String() string {
	return s.provider.host()
}

// Upload stores data under path with the given ACL and returns the path
// (see: https://docs.aws.amazon.com/AmazonS3/latest/API/API_PutObject.html).
func (s *Stash) Upload(ctx context.Context, data []byte, path, acl string) (string, error) {
	headers := make(http.Header)
	headers.Set(header.acl, acl)

	res, err := s.do(ctx, Bytes(data), http.MethodPut, path, headers)
	if err != nil {
		return "", err
	}

	res.Body.Close()
	return path, nil
}

// Get retrieves the object stored under path
// (see: https://docs.aws.amazon.com/AmazonS3/latest/API/API_GetObject.html).
func (s *Stash) Get(ctx context.Context, path string) ([]byte, error) {
	res, err := s.do(ctx, None(), http.MethodGet, path, make(http.Header))
	if err != nil {
		return nil, err
	}

	defer res.Body.Close()
	return ioutil.ReadAll(res.Body)
}

// Delete removes the object stored under path
// (see: https://docs.aws.amazon.com/AmazonS3/latest/API/API_DeleteObject.html).
func (s *Stash) Delete(ctx context.Context, path string) error {
	res, err := s.do(ctx, None(), http.MethodDelete, path, make(http.Header))
	if err != nil {
		return err
	}

	res.Body.Close()
	return nil
}

func (s *Stash) do(ctx context.Context, p Payload, method, path string, headers http.Header) (*http.Response, error) {
	target := s.provider.url(path)

	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("invalid path '%s' (%w)", path, err)
	}

	retries := s.retry()
	for {
		req, err := s.formRequest(ctx, p, method, target, u, headers)
		if err != nil {
			return nil, err
		}

		res, err := s.forwarder(req)
		if err == nil && res.StatusCode >= 200 && res.StatusCode < 300 {
			return res, nil
		}

		if err == nil {
			err = errorFromResponse(*res)
		}

		if delay := retries.retry(err); delay > 0 {
			s.log.Warn().Err(err).Stack().Msg("retrying request")
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		} else {
			return nil, err
		}
	}
}

func (s *Stash) formRequest(ctx context.Context, p Payload, method, target string, u *url.URL, headers http.Header) (*http.Request, error) {
	var body io.Reader = http.NoBody
	if data := p.Data(); len(data) > 0 {
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}

	req.Header = s.auth.Sign(p, method, u.Path, u.RawQuery, headers)
	req.Host = s.provider.host()
	return req, nil
}
