// Package prompt asks the user for command input.
//
// # Overview
//
// Prompts are plain data. An action describes what it needs with a Spec
// and hands it to a Prompter:
//
//	name, err := p.Ask(prompt.TextSpec("Migration Name"))
//	migration, err := p.Ask(prompt.ListSpec("Migration", names))
//
// # Terminal
//
// Terminal is the Prompter used by the CLI. On a TTY it runs a small
// bubbletea program (a bubbles textinput or list). Otherwise it falls back
// to reading lines, which keeps heron usable from scripts and CI:
//
//	echo InitialCreate | heron migrations add
//
// Esc or Ctrl+C cancels a prompt and Ask returns ErrCancelled.
package prompt
