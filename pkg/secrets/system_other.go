//go:build !darwin

package secrets

// NewSystemProvider returns the go-keyring provider outside macOS.
func NewSystemProvider() Provider {
	return NewKeyringProvider()
}
