package notify

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Console writes notifications to an io.Writer, one per line. It is the
// default channel for interactive use.
type Console struct {
	out io.Writer
}

// NewConsole creates a console channel writing to out. A nil out falls back
// to os.Stdout.
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}

	return &Console{out: out}
}

// Send prints the message prefixed with the recipient's name.
func (c *Console) Send(_ context.Context, recipient string, message string) error {
	if _, err := fmt.Fprintf(c.out, "[notification] to %s: %s\n", recipient, message); err != nil {
		return fmt.Errorf("could not write notification: %w", err)
	}

	return nil
}
