package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// System writes to the clipboard of the machine running the service.
type System struct{}

// NewSystem returns the system clipboard writer.
func NewSystem() System {
	return System{}
}

// WriteText copies text to the clipboard.
// Headless hosts without xclip, xsel or wl-copy report an error.
func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this host")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
