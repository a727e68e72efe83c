//go:build windows

package secrets

import "strings"

// cmdkey stores values as UTF-16 and leaves null bytes between characters
// when read back through the Credential Manager.
func scrubValue(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}
