// Package launch runs external tools one at a time.
//
// The package provides three pieces:
//
// 1. Invocation - an immutable program, arguments and working directory
// 2. Gate - the single launch slot shared by every caller
// 3. Launcher - starts an Invocation on a worker goroutine and streams
// its output into a zerolog logger
//
// # Basic Usage
//
//	gate := &launch.Gate{}
//	l := launch.NewLauncher(&launch.Options{Gate: gate, Logger: &logger, Notifier: console})
//
//	task, err := l.Launch(onExit, launch.NewInvocation("/repo/src", "dotnet", "ef", "database", "update"))
//	if errors.Is(err, launch.ErrBusy) {
//	    return // the user has been told a process is already running
//	}
//	code := task.Wait()
//
// # Single Slot
//
// Launch claims the Gate before it returns. While a child runs, every
// other Launch on the same Gate is rejected, not queued, and nothing is
// spawned. The slot is freed when the child exits, including when the
// child could not be started or the log sink panicked. onExit runs after
// the slot is free.
//
// There is no cancellation and no timeout. A child that never exits holds
// the slot for the life of the process.
package launch
