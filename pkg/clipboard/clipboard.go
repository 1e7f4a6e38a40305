// Package clipboard copies text to the system clipboard, with an OSC 52
// escape-sequence fallback for terminals where no native clipboard tool is
// available (SSH sessions, headless machines).
package clipboard

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Copy writes text to the clipboard. The native mechanism is tried first;
// when it is unavailable the text is emitted as an OSC 52 sequence so
// supporting terminals capture it.
func Copy(text string) error {
	if !clipboard.Unsupported {
		if err := clipboard.WriteAll(text); err == nil {
			return nil
		}
	}
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("clipboard: no native clipboard and no tty: %w", err)
	}
	defer tty.Close()
	if _, err := osc52.New(text).WriteTo(tty); err != nil {
		return fmt.Errorf("clipboard: osc52 write: %w", err)
	}
	return nil
}

// WriteText is the boolean convenience form of Copy.
func WriteText(text string) bool {
	return Copy(text) == nil
}
