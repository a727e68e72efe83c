//go:build darwin

package secrets

// NewSystemProvider returns the native Keychain provider on macOS.
func NewSystemProvider() Provider {
	return NewNativeProvider()
}
