package support

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ReadSecret prompts on stdout and reads a value without echoing it.
func ReadSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	byteValue, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", err
	}
	fmt.Println() // Add a newline after the hidden input
	return strings.TrimSpace(string(byteValue)), nil
}
