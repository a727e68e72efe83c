package secrets

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyEmpty is returned when a key argument is an empty string.
	ErrKeyEmpty = errors.New("key must not be empty")
	// ErrValueEmpty is returned when a value argument is an empty string.
	ErrValueEmpty = errors.New("value must not be empty")
)

// ProviderError carries the provider status code of a failed delete, insert
// or update operation. The code is preserved verbatim; the adapter does not
// distinguish missing items from other provider failures.
type ProviderError struct {
	Code Status
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("secure storage provider failed with status %d", e.Code)
}
