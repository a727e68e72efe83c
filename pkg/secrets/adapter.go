package secrets

import (
	"sync"
	"unicode/utf8"

	"github.com/Nikita06122002/credstore/pkg/logging"
)

var logger = logging.Component("pkg/secrets")

// Adapter is a thread-safe credential store scoped to a single service
// namespace. Every operation round-trips to the provider; the adapter keeps
// no copy of stored values. A single mutex serializes all provider
// interaction, including reads.
type Adapter struct {
	service  string
	mu       sync.Mutex
	provider Provider
}

func New(service string, p Provider) *Adapter {
	return &Adapter{service: service, provider: p}
}

// Service returns the namespace this adapter was constructed with.
func (a *Adapter) Service() string {
	return a.service
}

// Save stores value under key, replacing any existing entry. The removal of
// a previous entry is unconditional and its outcome is ignored; only the
// insert step can fail.
func (a *Adapter) Save(value, key string) error {
	if key == "" {
		return ErrKeyEmpty
	}
	if value == "" {
		return ErrValueEmpty
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	a.provider.Delete(a.service, key)
	if st := a.provider.Insert(a.service, key, []byte(value)); !st.OK() {
		logger.Debugf("Insert for key %s failed with status %d", key, st)
		return &ProviderError{Code: st}
	}
	return nil
}

// Get returns the value stored under key. A missing entry is not an error:
// ok is false when no entry exists, and also when the stored payload is not
// valid text. Callers cannot tell those two cases apart.
func (a *Adapter) Get(key string) (value string, ok bool, err error) {
	if key == "" {
		return "", false, ErrKeyEmpty
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	st, data := a.provider.QueryOne(a.service, key, true)
	if !st.OK() || !utf8.Valid(data) {
		return "", false, nil
	}
	return string(data), true, nil
}

// Update replaces the value of an existing entry in place. It does not
// create the entry when absent; a missing key surfaces as a ProviderError
// like any other provider failure.
func (a *Adapter) Update(value, key string) error {
	if key == "" {
		return ErrKeyEmpty
	}
	if value == "" {
		return ErrValueEmpty
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if st := a.provider.UpdateAttributes(a.service, key, []byte(value)); !st.OK() {
		logger.Debugf("Update for key %s failed with status %d", key, st)
		return &ProviderError{Code: st}
	}
	return nil
}

// Delete removes the entry under key. Deleting an absent key surfaces the
// provider's not-found status as a ProviderError; callers wanting
// idempotent deletes must check the code themselves.
func (a *Adapter) Delete(key string) error {
	if key == "" {
		return ErrKeyEmpty
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if st := a.provider.Delete(a.service, key); !st.OK() {
		return &ProviderError{Code: st}
	}
	return nil
}

// Exists reports whether an entry is stored under key.
func (a *Adapter) Exists(key string) (bool, error) {
	_, ok, err := a.Get(key)
	return ok, err
}
