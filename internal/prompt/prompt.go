package prompt

import "errors"

// ErrCancelled is returned when the user dismisses a prompt.
var ErrCancelled = errors.New("prompt cancelled")

// Kind selects how a prompt collects its answer.
type Kind int

const (
	// Text asks for free-form input.
	Text Kind = iota
	// List asks the user to pick one of Choices.
	List
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case List:
		return "list"
	default:
		return "unknown"
	}
}

// Spec describes a single prompt.
type Spec struct {
	Kind    Kind
	Label   string
	Choices []string
}

// TextSpec returns a free-form text prompt.
func TextSpec(label string) Spec {
	return Spec{Kind: Text, Label: label}
}

// ListSpec returns a single-select prompt over choices.
func ListSpec(label string, choices []string) Spec {
	return Spec{Kind: List, Label: label, Choices: append([]string(nil), choices...)}
}

// Prompter answers prompts.
type Prompter interface {
	Ask(spec Spec) (string, error)
}
