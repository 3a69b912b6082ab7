package stash

import (
	"context"
	"errors"
	"time"
)

type retryStrategy interface {
	retry(cause error) time.Duration
}

// noRetry surfaces every failure to the caller immediately. It is the default:
// callers own retry policy.
type noRetry struct{}

func (noRetry) retry(error) time.Duration {
	return 0
}

type fixedRetry struct {
	count     int
	delay     time.Duration
	retryable statusCodes
	fatal     []error
}

type statusCodes []int

func (s statusCodes) contains(statusCode int) bool {
	for _, code := range s {
		if statusCode == code {
			return true
		}
	}
	return false
}

// FixedRetry builds an opt-in strategy which retries transient status codes a
// fixed number of times with a constant delay.
func FixedRetry(count int, delay time.Duration) func() retryStrategy {
	return func() retryStrategy {
		return &fixedRetry{
			count:     count,
			delay:     delay,
			retryable: []int{408, 429, 500, 502, 503, 504},
			fatal:     []error{context.Canceled},
		}
	}
}

func (r *fixedRetry) retry(cause error) time.Duration {
	for _, e := range r.fatal {
		if errors.Is(cause, e) {
			return 0
		}
	}

	var res *StatusError
	if errors.As(cause, &res) {
		if !r.retryable.contains(res.StatusCode) {
			return 0
		}
	}

	r.count = r.count - 1
	if r.count >= 0 {
		return r.delay
	}
	return 0
}
