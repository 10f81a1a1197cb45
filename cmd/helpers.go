package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/inovacc/linkr/internal/encoding"
	"golang.org/x/term"
)

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	data, err := encoding.ToJSONIndent(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(os.Stdout, string(data))

	return err
}

// promptSecret reads a secret from the terminal with echo disabled. When
// stdin is not a terminal (piped input), it falls back to a plain line
// read so scripting keeps working.
func promptSecret(label string) (string, error) {
	_, _ = fmt.Fprintf(os.Stderr, "%s: ", label)

	fd := int(os.Stdin.Fd())

	if term.IsTerminal(fd) {
		data, err := term.ReadPassword(fd)

		_, _ = fmt.Fprintln(os.Stderr)

		if err != nil {
			return "", fmt.Errorf("failed to read secret: %w", err)
		}

		return strings.TrimSpace(string(data)), nil
	}

	reader := bufio.NewReader(os.Stdin)

	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}

	return strings.TrimSpace(line), nil
}
