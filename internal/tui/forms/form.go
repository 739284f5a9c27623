package forms

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cw-tokenfactory/tfgov/types"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")).Width(14)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// Form collects the parameters of one action kind.
type Form struct {
	kind     types.ActionKind
	specs    []fieldSpec
	inputs   []textinput.Model
	focus    int
	err      string
	onSubmit SubmitFunc
}

func newForm(kind types.ActionKind, onSubmit SubmitFunc, specs ...fieldSpec) *Form {
	inputs := make([]textinput.Model, len(specs))
	for i, spec := range specs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = spec.placeholder
		in.SetValue(spec.initial)
		inputs[i] = in
	}
	inputs[0].Focus()

	return &Form{
		kind:     kind,
		specs:    specs,
		inputs:   inputs,
		onSubmit: onSubmit,
	}
}

// Kind returns the action kind the form produces.
func (f *Form) Kind() types.ActionKind {
	return f.kind
}

// Err returns the last validation message, if any.
func (f *Form) Err() string {
	return f.err
}

func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return f, func() tea.Msg { return CancelMsg{} }
		case "tab", "down":
			return f, f.setFocus(f.focus + 1)
		case "shift+tab", "up":
			return f, f.setFocus(f.focus - 1)
		case "enter":
			if f.focus < len(f.inputs)-1 {
				return f, f.setFocus(f.focus + 1)
			}
			return f, f.submit()
		case "ctrl+s":
			return f, f.submit()
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)

	return f, cmd
}

func (f *Form) setFocus(i int) tea.Cmd {
	n := len(f.inputs)
	f.inputs[f.focus].Blur()
	f.focus = ((i % n) + n) % n

	return f.inputs[f.focus].Focus()
}

func (f *Form) submit() tea.Cmd {
	v := values{
		strings: map[string]string{},
		amounts: map[string]types.Uint128{},
		bools:   map[string]bool{},
	}
	for i, spec := range f.specs {
		if err := spec.parse(f.inputs[i].Value(), &v); err != nil {
			f.err = err.Error()
			return nil
		}
	}
	f.err = ""

	if f.onSubmit == nil {
		return nil
	}

	return f.onSubmit(buildAction(f.kind, v))
}

func (f *Form) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Add %s", f.kind)))
	b.WriteString("\n\n")

	for i, spec := range f.specs {
		b.WriteString(labelStyle.Render(spec.name))
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(f.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("tab: next field · enter: add · esc: back"))

	return b.String()
}
