package launch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"

	"github.com/simonhull/heron/internal/output"
)

// ErrBusy is returned by Launch when another child process holds the Gate.
var ErrBusy = errors.New("process already running")

// ExitFunc receives the finished Invocation and the child's exit code.
// The code is -1 when the child could not be started.
type ExitFunc func(inv Invocation, exitCode int)

// Options configures a Launcher
type Options struct {
	Gate     *Gate           // Shared launch slot; a private one is created when nil
	Logger   *zerolog.Logger // Sink for child output; discarded when nil
	Notifier output.Notifier // Receives the busy notice; console when nil
}

// Launcher starts Invocations on worker goroutines, one at a time per Gate.
type Launcher struct {
	gate     *Gate
	log      zerolog.Logger
	notifier output.Notifier

	// For mocking in tests
	commandFunc func(inv Invocation) *exec.Cmd
}

// NewLauncher creates a launcher
func NewLauncher(opts *Options) *Launcher {
	if opts == nil {
		opts = &Options{}
	}

	gate := opts.Gate
	if gate == nil {
		gate = &Gate{}
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	notifier := opts.Notifier
	if notifier == nil {
		notifier = output.NewConsole(nil)
	}

	return &Launcher{
		gate:        gate,
		log:         logger.With().Str("component", "launch").Logger(),
		notifier:    notifier,
		commandFunc: shellCommand,
	}
}

// Launch claims the Gate and runs inv on a new goroutine. It returns
// immediately. When the Gate is already held the user is notified, nothing
// is spawned and ErrBusy is returned.
func (l *Launcher) Launch(onExit ExitFunc, inv Invocation) (*Task, error) {
	if len(inv.args) == 0 {
		return nil, fmt.Errorf("empty invocation")
	}

	if !l.gate.TryAcquire() {
		l.notifier.Message("process already running!")
		return nil, ErrBusy
	}

	task := &Task{
		ID:   uuid.NewString(),
		inv:  inv,
		done: make(chan struct{}),
		code: -1,
	}

	go l.run(task, onExit)

	return task, nil
}

func (l *Launcher) run(task *Task, onExit ExitFunc) {
	defer close(task.done)

	task.code = l.execute(task)

	if onExit == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			task.setErr(fmt.Errorf("exit handler panicked: %v", r))
		}
	}()
	onExit(task.inv, task.code)
}

// execute runs the child and returns its exit code. The Gate is released
// before it returns, whatever happens.
func (l *Launcher) execute(task *Task) (code int) {
	defer l.gate.Release()
	defer func() {
		if r := recover(); r != nil {
			task.setErr(fmt.Errorf("launch panicked: %v", r))
			code = -1
		}
	}()

	log := l.log.With().Str("task", task.ID).Logger()
	sink := &lineSink{log: log, task: task}

	sink.info("-> " + task.inv.String())

	cmd := l.commandFunc(task.inv)
	cmd.Dir = task.inv.dir

	stdout, stdoutW, err := os.Pipe()
	if err != nil {
		return l.startFailed(task, sink, err)
	}
	stderr, stderrW, err := os.Pipe()
	if err != nil {
		closeAll(stdout, stdoutW)
		return l.startFailed(task, sink, err)
	}
	defer closeAll(stdout, stderr)

	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW
	err = cmd.Start()
	// The child holds its own copies of the write ends.
	closeAll(stdoutW, stderrW)
	if err != nil {
		return l.startFailed(task, sink, err)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go sink.stream(&wg, stdout, "stdout", zerolog.InfoLevel)
	go sink.stream(&wg, stderr, "stderr", zerolog.WarnLevel)
	wg.Wait()

	code = exitCode(cmd.Wait())

	sink.done(task.inv.String(), code)
	return code
}

func (l *Launcher) startFailed(task *Task, sink *lineSink, err error) int {
	err = fmt.Errorf("failed to start %s: %w", task.inv.args[0], err)
	task.setErr(err)
	sink.failed(err)
	return -1
}

func closeAll(files ...*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// shellCommand runs inv through the platform shell.
func shellCommand(inv Invocation) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.Command(inv.args[0], inv.args[1:]...)
	}
	return exec.Command("sh", "-c", shellquote.Join(inv.args...))
}

// maxLineBytes caps a single logged line. Longer lines are cut and marked
// truncated; reading continues with the next line.
const maxLineBytes = 1024 * 1024

// lineSink serializes log writes from the stdout and stderr readers. A
// panicking logger is recorded on the task and silenced; the pipes keep
// draining so the child never blocks on a full pipe.
type lineSink struct {
	mu     sync.Mutex
	log    zerolog.Logger
	task   *Task
	broken bool
}

func (s *lineSink) write(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.broken {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			s.broken = true
			s.task.setErr(fmt.Errorf("log sink panicked: %v", r))
		}
	}()
	fn()
}

func (s *lineSink) info(msg string) {
	s.write(func() { s.log.Info().Msg(msg) })
}

func (s *lineSink) failed(err error) {
	s.write(func() { s.log.Error().Err(err).Msg("launch failed") })
}

func (s *lineSink) done(command string, code int) {
	s.write(func() { s.log.Info().Int("exit_code", code).Msg("<- " + command) })
}

func (s *lineSink) stream(wg *sync.WaitGroup, r io.Reader, name string, level zerolog.Level) {
	defer wg.Done()

	reader := bufio.NewReaderSize(r, 64*1024)
	var (
		line      []byte
		truncated bool
	)
	for {
		chunk, more, err := reader.ReadLine()
		if room := maxLineBytes - len(line); len(chunk) > room {
			line = append(line, chunk[:room]...)
			truncated = true
		} else {
			line = append(line, chunk...)
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.task.setErr(fmt.Errorf("reading %s: %w", name, err))
			}
			break
		}
		if more {
			continue
		}

		msg, cut := strings.TrimSpace(string(line)), truncated
		s.write(func() {
			ev := s.log.WithLevel(level).Str("stream", name)
			if cut {
				ev = ev.Bool("truncated", true)
			}
			ev.Msg(msg)
		})
		line, truncated = line[:0], false
	}
	// Keep draining after a read error so the child can exit.
	_, _ = io.Copy(io.Discard, r)
}
