package tfgov

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cw-tokenfactory/tfgov/sdk"
	"github.com/cw-tokenfactory/tfgov/types"
)

// Composer is one proposal composing session. It owns the draft being edited and the Submitter
// that sends it. Edits are rejected with ErrComposerLocked while a submission is in progress.
type Composer struct {
	id        uuid.UUID
	draft     Draft
	submitter *Submitter
}

// NewComposer starts a composing session with an empty draft.
func NewComposer(submitter *Submitter) *Composer {
	return &Composer{
		id:        uuid.New(),
		submitter: submitter,
	}
}

// ID returns the session id used to correlate log lines of one session.
func (c *Composer) ID() string {
	return c.id.String()
}

// State returns the state of the session submitter.
func (c *Composer) State() SubmissionState {
	return c.submitter.State()
}

// Draft returns a snapshot of the current draft.
func (c *Composer) Draft() Draft {
	return Draft{
		Title:       c.draft.Title,
		Description: c.draft.Description,
		Actions:     NewActionList(c.draft.Actions.actions...),
	}
}

// SetTitle sets the proposal title.
func (c *Composer) SetTitle(title string) error {
	if err := c.checkEditable(); err != nil {
		return err
	}
	c.draft.Title = title

	return nil
}

// SetDescription sets the proposal description.
func (c *Composer) SetDescription(description string) error {
	if err := c.checkEditable(); err != nil {
		return err
	}
	c.draft.Description = description

	return nil
}

// AddAction appends an action to the draft. Nil and pointer actions are rejected.
func (c *Composer) AddAction(action types.Action) error {
	if err := c.checkEditable(); err != nil {
		return err
	}
	if err := types.CheckAction(action); err != nil {
		return err
	}
	c.draft.Actions.Append(action)

	return nil
}

// RemoveAction removes the action at index. It reports false if index is out of range.
func (c *Composer) RemoveAction(index int) (bool, error) {
	if err := c.checkEditable(); err != nil {
		return false, err
	}

	return c.draft.Actions.RemoveAt(index), nil
}

// Submit submits a snapshot of the current draft. Log lines written during the submission carry
// the session id when the context logger is a zap logger.
func (c *Composer) Submit(ctx context.Context) (*SubmitResult, error) {
	if lggr, ok := sdk.LoggerFrom(ctx).(*zap.SugaredLogger); ok {
		ctx = sdk.WithLogger(ctx, lggr.With(zap.String("session", c.ID())))
	}

	draft := c.Draft()

	return c.submitter.Submit(ctx, &draft)
}

func (c *Composer) checkEditable() error {
	if c.submitter.State() == StateSubmitting {
		return ErrComposerLocked
	}

	return nil
}
