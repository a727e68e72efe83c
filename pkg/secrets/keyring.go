package secrets

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// keyringProvider adapts zalando/go-keyring to the Provider surface. It
// talks to the macOS Keychain, the freedesktop Secret Service over D-Bus or
// the Windows Credential Manager, depending on the platform.
type keyringProvider struct{}

func NewKeyringProvider() Provider {
	return keyringProvider{}
}

func (keyringProvider) Delete(service, key string) Status {
	return keyringStatus(keyring.Delete(service, key))
}

func (keyringProvider) Insert(service, key string, value []byte) Status {
	// go-keyring Set overwrites silently, so probe first to keep
	// duplicate-item semantics.
	if _, err := keyring.Get(service, key); err == nil {
		return StatusDuplicateItem
	} else if !errors.Is(err, keyring.ErrNotFound) {
		return keyringStatus(err)
	}
	return keyringStatus(keyring.Set(service, key, string(value)))
}

func (keyringProvider) QueryOne(service, key string, wantData bool) (Status, []byte) {
	val, err := keyring.Get(service, key)
	if err != nil {
		return keyringStatus(err), nil
	}
	if !wantData {
		return StatusSuccess, nil
	}
	return StatusSuccess, []byte(scrubValue(val))
}

func (keyringProvider) UpdateAttributes(service, key string, value []byte) Status {
	if _, err := keyring.Get(service, key); err != nil {
		return keyringStatus(err)
	}
	return keyringStatus(keyring.Set(service, key, string(value)))
}

func keyringStatus(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, keyring.ErrNotFound):
		return StatusItemNotFound
	default:
		return StatusIO
	}
}
