// Package tui is the interactive proposal composer.
//
// The App mirrors the composer page: a title and description, the list of pending actions and
// a drawer used to add one more action. Submitting sends the whole list as a single proposal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"

	"github.com/cw-tokenfactory/tfgov"
	"github.com/cw-tokenfactory/tfgov/internal/tui/forms"
	"github.com/cw-tokenfactory/tfgov/types"
)

// drawerState tells whether the "add action" drawer is shown.
type drawerState int

const (
	drawerClosed drawerState = iota
	drawerOpen
)

type focusArea int

const (
	focusTitle focusArea = iota
	focusDescription
	focusActions
)

type actionAddedMsg struct {
	action types.Action
}

type submitFinishedMsg struct {
	result *tfgov.SubmitResult
	err    error
}

// kindItem implements list.Item for the action kind picker.
type kindItem struct {
	kind types.ActionKind
}

func (i kindItem) Title() string       { return string(i.kind) }
func (i kindItem) Description() string { return paramNames(i.kind) }
func (i kindItem) FilterValue() string { return string(i.kind) }

func paramNames(kind types.ActionKind) string {
	switch kind {
	case types.KindSetMinter, types.KindSetBurner:
		return "address, allowance"
	case types.KindMint:
		return "to_address, amount"
	case types.KindBurn:
		return "from_address, amount"
	case types.KindFreeze:
		return "status"
	default:
		return "address, status"
	}
}

// AppOption customizes App construction.
type AppOption func(*App)

// WithContext sets the context used for the submission, which carries the logger.
func WithContext(ctx context.Context) AppOption {
	return func(a *App) {
		if ctx != nil {
			a.ctx = ctx
		}
	}
}

// App is the composer model.
type App struct {
	ctx      context.Context
	composer *tfgov.Composer

	focus       focusArea
	title       textinput.Model
	description textarea.Model
	selected    int

	drawer   drawerState
	kindMenu list.Model
	form     tea.Model

	// submission mirrors the composer submitter. It is set to StateSubmitting as soon as the
	// submit command is dispatched, before the command runs.
	submission tfgov.SubmissionState
	notice     string
	result     *tfgov.SubmitResult
	err        error

	width  int
	height int
}

// NewApp creates the composer model for a composing session.
func NewApp(composer *tfgov.Composer, opts ...AppOption) *App {
	title := textinput.New()
	title.Placeholder = "Proposal title"
	title.Prompt = ""
	title.Focus()

	description := textarea.New()
	description.Placeholder = "What does this proposal do and why?"
	description.ShowLineNumbers = false
	description.SetHeight(4)

	kinds := types.ActionKinds()
	items := make([]list.Item, len(kinds))
	for i, kind := range kinds {
		items[i] = kindItem{kind: kind}
	}
	kindMenu := list.New(items, list.NewDefaultDelegate(), 40, 20)
	kindMenu.Title = "Select action type"
	kindMenu.SetShowStatusBar(false)
	kindMenu.SetFilteringEnabled(false)

	draft := composer.Draft()
	title.SetValue(draft.Title)
	description.SetValue(draft.Description)

	app := &App{
		ctx:         context.Background(),
		composer:    composer,
		focus:       focusTitle,
		title:       title,
		description: description,
		drawer:      drawerClosed,
		kindMenu:    kindMenu,
		form:        forms.Placeholder{},
		submission:  composer.State(),
	}
	for _, opt := range opts {
		opt(app)
	}

	return app
}

// Result returns the outcome of the submission once it succeeded.
func (a *App) Result() *tfgov.SubmitResult {
	return a.result
}

// Err returns the error of the last submission.
func (a *App) Err() error {
	return a.err
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.kindMenu.SetSize(max(0, msg.Width-6), max(0, msg.Height-10))
		a.description.SetWidth(max(20, msg.Width-6))
		return a, nil

	case actionAddedMsg:
		if err := a.composer.AddAction(msg.action); err != nil {
			a.notice = err.Error()
			return a, nil
		}
		a.selected = a.composer.Draft().Actions.Len() - 1
		a.closeDrawer()
		return a, nil

	case forms.CancelMsg:
		a.form = forms.Placeholder{}
		return a, nil

	case submitFinishedMsg:
		return a.handleSubmitFinished(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.submission == tfgov.StateSubmitting {
			return a, nil
		}
		if a.drawer == drawerOpen {
			return a.updateDrawer(msg)
		}
		return a.updateComposer(msg)
	}

	return a, nil
}

func (a *App) updateComposer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return a, tea.Quit
	case "tab":
		return a, a.setFocus((a.focus + 1) % 3)
	case "shift+tab":
		return a, a.setFocus((a.focus + 2) % 3)
	case "ctrl+a":
		a.drawer = drawerOpen
		a.form = forms.Placeholder{}
		a.notice = ""
		return a, nil
	case "ctrl+s":
		return a, a.submit()
	}

	switch a.focus {
	case focusTitle:
		var cmd tea.Cmd
		a.title, cmd = a.title.Update(msg)
		a.setNotice(a.composer.SetTitle(a.title.Value()))
		return a, cmd
	case focusDescription:
		var cmd tea.Cmd
		a.description, cmd = a.description.Update(msg)
		a.setNotice(a.composer.SetDescription(a.description.Value()))
		return a, cmd
	case focusActions:
		n := a.composer.Draft().Actions.Len()
		switch msg.String() {
		case "up", "k":
			if a.selected > 0 {
				a.selected--
			}
		case "down", "j":
			if a.selected < n-1 {
				a.selected++
			}
		case "d", "delete", "backspace":
			a.removeSelected()
		}
	}

	return a, nil
}

func (a *App) updateDrawer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if _, isPlaceholder := a.form.(forms.Placeholder); !isPlaceholder {
		var cmd tea.Cmd
		a.form, cmd = a.form.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "esc":
		a.closeDrawer()
		return a, nil
	case "enter":
		item, ok := a.kindMenu.SelectedItem().(kindItem)
		if !ok {
			return a, nil
		}
		form, ok := forms.New(item.kind, a.onActionSubmitted)
		a.form = form
		if !ok {
			return a, nil
		}
		return a, form.Init()
	}

	var cmd tea.Cmd
	a.kindMenu, cmd = a.kindMenu.Update(msg)

	return a, cmd
}

func (a *App) onActionSubmitted(action types.Action) tea.Cmd {
	return func() tea.Msg { return actionAddedMsg{action: action} }
}

func (a *App) closeDrawer() {
	a.drawer = drawerClosed
	a.form = forms.Placeholder{}
}

func (a *App) removeSelected() {
	removed, err := a.composer.RemoveAction(a.selected)
	if err != nil {
		a.notice = err.Error()
		return
	}
	if removed && a.selected > 0 && a.selected >= a.composer.Draft().Actions.Len() {
		a.selected--
	}
}

func (a *App) setFocus(focus focusArea) tea.Cmd {
	a.focus = focus
	a.title.Blur()
	a.description.Blur()

	switch focus {
	case focusTitle:
		return a.title.Focus()
	case focusDescription:
		return a.description.Focus()
	}

	return nil
}

func (a *App) setNotice(err error) {
	if err != nil {
		a.notice = err.Error()
	}
}

func (a *App) submit() tea.Cmd {
	draft := a.composer.Draft()
	if err := draft.Validate(); err != nil {
		a.notice = "Cannot submit: " + describeValidation(err)
		return nil
	}

	a.submission = tfgov.StateSubmitting
	a.notice = "Submitting proposal..."

	ctx := a.ctx
	composer := a.composer

	return func() tea.Msg {
		res, err := composer.Submit(ctx)
		return submitFinishedMsg{result: res, err: err}
	}
}

func (a *App) handleSubmitFinished(msg submitFinishedMsg) (tea.Model, tea.Cmd) {
	a.submission = a.composer.State()
	a.err = msg.err

	var notFound *tfgov.ProposalIDNotFoundError
	switch {
	case msg.err == nil:
		a.result = msg.result
		a.notice = fmt.Sprintf("Proposal %s created: %s", msg.result.ProposalID, msg.result.Path())
		return a, tea.Quit
	case errors.As(msg.err, &notFound):
		a.result = msg.result
		a.notice = fmt.Sprintf("Proposal transaction %s succeeded but reported no proposal id", notFound.TxHash)
		return a, tea.Quit
	default:
		a.notice = "Submission failed: " + msg.err.Error()
		return a, nil
	}
}

func describeValidation(err error) string {
	if errors.Is(err, tfgov.ErrEmptyDraft) {
		return "add at least one action"
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			missing = append(missing, strings.ToLower(fe.Field()))
		}
		return strings.Join(missing, " and ") + " required"
	}

	return err.Error()
}
