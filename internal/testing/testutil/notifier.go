package testutil

import "sync"

// Notifications records every message sent to it. It satisfies
// output.Notifier and is safe for use from launch goroutines.
type Notifications struct {
	mu       sync.Mutex
	errors   []string
	messages []string
}

// Error records an error message.
func (n *Notifications) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

// Message records a notice.
func (n *Notifications) Message(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, msg)
}

// Errors returns a copy of the recorded errors.
func (n *Notifications) Errors() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.errors...)
}

// Messages returns a copy of the recorded notices.
func (n *Notifications) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}
