package prompt

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().MarginLeft(2)
	helpStyle  = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

// answerModel is a bubbletea model that ends with an answer or a cancel.
type answerModel interface {
	tea.Model
	Answer() (string, bool)
}

type textModel struct {
	input     textinput.Model
	label     string
	answer    string
	done      bool
	cancelled bool
}

func newTextModel(spec Spec) textModel {
	ti := textinput.New()
	ti.Placeholder = spec.Label
	ti.Prompt = promptStyle.Render(spec.Label) + ": "
	ti.Focus()
	return textModel{input: ti, label: spec.Label}
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.answer = m.input.Value()
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return m.input.View() + "\n"
}

func (m textModel) Answer() (string, bool) {
	return m.answer, m.done
}

type choice string

func (c choice) FilterValue() string { return string(c) }
func (c choice) Title() string { return string(c) }
func (c choice) Description() string { return "" }

type listModel struct {
	list      list.Model
	answer    string
	done      bool
	cancelled bool
}

func newListModel(spec Spec) listModel {
	items := make([]list.Item, 0, len(spec.Choices))
	for _, c := range spec.Choices {
		items = append(items, choice(c))
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	l := list.New(items, delegate, 60, 14)
	l.Title = spec.Label
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.SetShowStatusBar(false)

	return listModel{list: l}
}

func (m listModel) Init() tea.Cmd {
	return nil
}

func (m listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// While filtering, keys belong to the filter input.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.Type {
		case tea.KeyEnter:
			if c, ok := m.list.SelectedItem().(choice); ok {
				m.answer = string(c)
				m.done = true
			} else {
				m.cancelled = true
			}
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m listModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return "\n" + m.list.View()
}

func (m listModel) Answer() (string, bool) {
	return m.answer, m.done
}
