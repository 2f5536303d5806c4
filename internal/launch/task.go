package launch

import "sync"

// Task is a launched Invocation. It completes after the child has exited,
// the Gate has been released and onExit has returned.
type Task struct {
	// ID tags every log line written for this task.
	ID string

	inv  Invocation
	done chan struct{}
	code int

	mu  sync.Mutex
	err error
}

// Invocation returns what the task runs.
func (t *Task) Invocation() Invocation {
	return t.inv
}

// Done is closed when the task completes.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task completes and returns the exit code.
func (t *Task) Wait() int {
	<-t.done
	return t.code
}

// Err reports a failure of the launch machinery itself: the child could not
// be started, the log sink panicked or onExit panicked. A non-zero exit code
// is not an error.
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

func (t *Task) setErr(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err == nil {
		t.err = err
	}
}
