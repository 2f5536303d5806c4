package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Terminal is a Prompter backed by the user's terminal.
type Terminal struct {
	in          io.Reader
	out         io.Writer
	reader      *bufio.Reader
	interactive bool
}

// NewTerminal returns a Terminal on stdin and stdout. Interactive widgets
// are used only when both are terminals.
func NewTerminal() *Terminal {
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	return &Terminal{
		in:          os.Stdin,
		out:         os.Stdout,
		reader:      bufio.NewReader(os.Stdin),
		interactive: interactive,
	}
}

// NewLineTerminal returns a Terminal that reads answers line by line from in.
func NewLineTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

// Ask implements Prompter.
func (t *Terminal) Ask(spec Spec) (string, error) {
	switch spec.Kind {
	case Text:
		if t.interactive {
			return t.runProgram(newTextModel(spec))
		}
		return t.askLine(spec)
	case List:
		if len(spec.Choices) == 0 {
			return "", fmt.Errorf("%s: nothing to choose from", spec.Label)
		}
		if t.interactive {
			return t.runProgram(newListModel(spec))
		}
		return t.askChoice(spec)
	default:
		return "", fmt.Errorf("unsupported prompt kind: %s", spec.Kind)
	}
}

func (t *Terminal) runProgram(m answerModel) (string, error) {
	p := tea.NewProgram(m, tea.WithInput(t.in), tea.WithOutput(t.out))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running prompt: %w", err)
	}

	answer, ok := final.(answerModel).Answer()
	if !ok {
		return "", ErrCancelled
	}
	return answer, nil
}

func (t *Terminal) askLine(spec Spec) (string, error) {
	fmt.Fprint(t.out, promptStyle.Render(spec.Label)+": ")

	line, err := t.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", ErrCancelled
	}
	return strings.TrimSpace(line), nil
}

func (t *Terminal) askChoice(spec Spec) (string, error) {
	for i, choice := range spec.Choices {
		fmt.Fprintln(t.out, hintStyle.Render(fmt.Sprintf("  %d)", i+1))+" "+choice)
	}

	answer, err := t.askLine(Spec{Kind: Text, Label: fmt.Sprintf("%s [1-%d]", spec.Label, len(spec.Choices))})
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", ErrCancelled
	}

	if n, err := strconv.Atoi(answer); err == nil {
		if n < 1 || n > len(spec.Choices) {
			return "", fmt.Errorf("selection %d out of range", n)
		}
		return spec.Choices[n-1], nil
	}

	for _, choice := range spec.Choices {
		if choice == answer {
			return choice, nil
		}
	}
	return "", fmt.Errorf("unknown selection: %s", answer)
}
