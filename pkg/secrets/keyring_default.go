//go:build !windows

package secrets

func scrubValue(s string) string {
	return s
}
