package secrets

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// RetryProvider retries transient provider failures with exponential
// backoff. Only StatusIO counts as transient; not-found, duplicate and
// parameter statuses return immediately. The Adapter itself never retries,
// so wrap its provider when transient tolerance is wanted.
type RetryProvider struct {
	inner           Provider
	maxElapsed      time.Duration
	initialInterval time.Duration
}

func NewRetryProvider(inner Provider, maxElapsed time.Duration) *RetryProvider {
	if maxElapsed <= 0 {
		maxElapsed = 10 * time.Second
	}
	return &RetryProvider{
		inner:           inner,
		maxElapsed:      maxElapsed,
		initialInterval: backoff.DefaultInitialInterval,
	}
}

func (r *RetryProvider) retry(op func() Status) Status {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = r.initialInterval
	expBackoff.MaxElapsedTime = r.maxElapsed

	var attempt int
	var last Status
	_ = backoff.Retry(func() error {
		attempt++
		last = op()
		if last == StatusIO {
			logger.Debugf("Retrying provider operation, attempt %d, status %d", attempt, last)
			return fmt.Errorf("transient provider status %d", last)
		}
		return nil
	}, expBackoff)
	return last
}

func (r *RetryProvider) Delete(service, key string) Status {
	return r.retry(func() Status { return r.inner.Delete(service, key) })
}

func (r *RetryProvider) Insert(service, key string, value []byte) Status {
	return r.retry(func() Status { return r.inner.Insert(service, key, value) })
}

func (r *RetryProvider) QueryOne(service, key string, wantData bool) (Status, []byte) {
	var data []byte
	st := r.retry(func() Status {
		var s Status
		s, data = r.inner.QueryOne(service, key, wantData)
		return s
	})
	return st, data
}

func (r *RetryProvider) UpdateAttributes(service, key string, value []byte) Status {
	return r.retry(func() Status { return r.inner.UpdateAttributes(service, key, value) })
}
