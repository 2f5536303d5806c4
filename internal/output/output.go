package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	mu          sync.Mutex
	out         io.Writer = os.Stdout
	verboseMode bool
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verboseMode = v
}

// SetOutput redirects all package-level output. Passing nil restores stdout.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	out = w
}

func emit(s string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out, s)
}

// Success prints a success message with 🪶 emoji and green color.
// Use this for completed operations.
//
// Example:
//
//	output.Success("Added migration: InitialCreate")
func Success(msg string) {
	emit(successStyle.Render("🪶 " + msg))
}

// Error prints an error message with ❌ emoji and red color.
func Error(msg string) {
	emit(errorStyle.Render("❌ " + msg))
}

// Info prints an informational message with ℹ️ emoji and cyan color.
func Info(msg string) {
	emit(infoStyle.Render("ℹ️  " + msg))
}

// Step prints an indented step message in gray.
// Use this for actionable next steps or sub-items.
//
// Example:
//
//	output.Step("20230101000000_Init")
func Step(msg string) {
	emit(stepStyle.Render("   " + msg))
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
func Verbose(msg string) {
	mu.Lock()
	enabled := verboseMode
	mu.Unlock()

	if enabled {
		emit(stepStyle.Render("🔍 " + msg))
	}
}
