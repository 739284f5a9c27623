package tfgov

import (
	"github.com/cw-tokenfactory/tfgov/types"
)

// DraftBuilder builds a Draft.
type DraftBuilder struct {
	draft Draft
}

// NewDraftBuilder creates a new DraftBuilder.
func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{}
}

// SetTitle sets the title of the Draft.
func (b *DraftBuilder) SetTitle(title string) *DraftBuilder {
	b.draft.Title = title
	return b
}

// SetDescription sets the description of the Draft.
func (b *DraftBuilder) SetDescription(description string) *DraftBuilder {
	b.draft.Description = description
	return b
}

// AddAction appends an action to the Draft.
func (b *DraftBuilder) AddAction(action types.Action) *DraftBuilder {
	b.draft.Actions.Append(action)
	return b
}

// SetActions replaces all the actions of the Draft.
func (b *DraftBuilder) SetActions(actions []types.Action) *DraftBuilder {
	b.draft.Actions = NewActionList(actions...)
	return b
}

// Build validates and returns the constructed Draft.
func (b *DraftBuilder) Build() (*Draft, error) {
	if err := b.draft.Validate(); err != nil {
		return nil, err
	}

	d := Draft{
		Title:       b.draft.Title,
		Description: b.draft.Description,
		Actions:     NewActionList(b.draft.Actions.actions...),
	}

	return &d, nil
}
