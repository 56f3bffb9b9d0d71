// Package input handles interactive user input for CLI commands.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// ReadLine reads a line from the standard input printing prompt before it.
// The trailing newline is stripped.
func ReadLine(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(raw, "\r\n"), nil
}

// ReadPassword reads a password from the standard input without echoing it.
// When stdin is not a terminal it falls back to plain line reading.
func ReadPassword(prompt string) (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return ReadLine(prompt)
	}
	fmt.Print(prompt)
	rawPass, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(rawPass), "\n"), nil
}
