package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cw-tokenfactory/tfgov"
	"github.com/cw-tokenfactory/tfgov/internal/tui/forms"
	"github.com/cw-tokenfactory/tfgov/types"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801")).Bold(true)
	kindStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CCCCCC"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	drawerStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444444")).Padding(0, 1)
)

func (a *App) View() string {
	if a.drawer == drawerOpen {
		return a.renderDrawer()
	}

	sections := []string{
		headerStyle.Render("New tokenfactory-issuer proposal"),
		a.label("Title", focusTitle),
		a.title.View(),
		a.label("Description", focusDescription),
		a.description.View(),
		a.label("Actions", focusActions),
		a.renderActions(),
	}

	if a.notice != "" {
		sections = append(sections, noticeStyle.Render(a.notice))
	}
	sections = append(sections, hintStyle.Render(a.hint()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) label(text string, area focusArea) string {
	if a.focus == area {
		return focusedStyle.Render("> " + text)
	}

	return labelStyle.Render("  " + text)
}

func (a *App) hint() string {
	if a.submission == tfgov.StateSubmitting {
		return "submitting, inputs are disabled"
	}

	return "tab: next · ctrl+a: add action · d: delete selected action · ctrl+s: submit · esc: quit"
}

func (a *App) renderActions() string {
	actions := a.composer.Draft().Actions.Actions()
	if len(actions) == 0 {
		return hintStyle.Render("No actions yet.")
	}

	blocks := make([]string, len(actions))
	for i, action := range actions {
		blocks[i] = renderAction(i, action, a.focus == focusActions && i == a.selected)
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// renderAction renders one action as its kind followed by a table of its parameters. The
// position shown is the current one, so it changes when an earlier action is removed.
func renderAction(index int, action types.Action, selected bool) string {
	kind, params := types.Summarize(action)

	heading := kindStyle.Render(fmt.Sprintf("#%d %s", index+1, kind))
	if selected {
		heading = selectedStyle.Render(fmt.Sprintf("#%d %s [d: delete]", index+1, kind))
	}

	rows := make([][]string, len(params))
	for i, p := range params {
		rows[i] = []string{p.Name, p.Value}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))).
		Rows(rows...)

	return lipgloss.JoinVertical(lipgloss.Left, heading, t.Render())
}

func (a *App) renderDrawer() string {
	var body string
	if _, isForm := a.form.(*forms.Form); isForm {
		body = a.form.View()
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left,
			a.kindMenu.View(),
			hintStyle.Render(strings.TrimSpace(a.form.View())),
			hintStyle.Render("enter: choose · esc: close"),
		)
	}

	return drawerStyle.Render(body)
}
