package output

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Notifier reports user-visible messages. It is the only channel through
// which actions surface configuration, validation, concurrency and child
// process failures.
type Notifier interface {
	// Error reports a failure that ends the current action.
	Error(msg string)
	// Message reports a non-fatal notice.
	Message(msg string)
}

// Console is a Notifier that renders messages with the package styles.
// It is safe for concurrent use; launches report completion from worker
// goroutines.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole returns a Console writing to w (stderr when nil).
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stderr
	}
	return &Console{w: w}
}

// Error prints msg in the error style.
func (c *Console) Error(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, errorStyle.Render("❌ "+msg))
}

// Message prints msg in the info style.
func (c *Console) Message(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, infoStyle.Render("ℹ️  "+msg))
}
