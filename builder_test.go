package tfgov_test

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cw-tokenfactory/tfgov"
	"github.com/cw-tokenfactory/tfgov/types"
)

func TestDraftBuilder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		setup    func(*tfgov.DraftBuilder)
		want     []types.Action
		wantErr  error
		wantTags []string
	}{
		{
			name: "valid draft",
			setup: func(b *tfgov.DraftBuilder) {
				b.SetTitle("Mint").
					SetDescription("Mint to treasury").
					AddAction(types.SetMinter{Address: "osmo1m", Allowance: "100"}).
					AddAction(types.Mint{ToAddress: "osmo1t", Amount: "100"})
			},
			want: []types.Action{
				types.SetMinter{Address: "osmo1m", Allowance: "100"},
				types.Mint{ToAddress: "osmo1t", Amount: "100"},
			},
		},
		{
			name: "valid draft using SetActions",
			setup: func(b *tfgov.DraftBuilder) {
				b.SetTitle("Freeze").
					SetDescription("Freeze transfers").
					AddAction(types.Mint{ToAddress: "dropped", Amount: "1"}).
					SetActions([]types.Action{types.Freeze{Status: true}})
			},
			want: []types.Action{types.Freeze{Status: true}},
		},
		{
			name: "missing title and description",
			setup: func(b *tfgov.DraftBuilder) {
				b.AddAction(types.Freeze{Status: true})
			},
			wantTags: []string{"Title", "Description"},
		},
		{
			name: "no actions",
			setup: func(b *tfgov.DraftBuilder) {
				b.SetTitle("t").SetDescription("d")
			},
			wantErr: tfgov.ErrEmptyDraft,
		},
		{
			name: "nil action",
			setup: func(b *tfgov.DraftBuilder) {
				b.SetTitle("t").SetDescription("d").AddAction(nil)
			},
			wantErr: types.ErrNilAction,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			builder := tfgov.NewDraftBuilder()
			tt.setup(builder)

			got, err := builder.Build()
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case len(tt.wantTags) > 0:
				var verrs validator.ValidationErrors
				require.ErrorAs(t, err, &verrs)
				fields := make([]string, 0, len(verrs))
				for _, fe := range verrs {
					fields = append(fields, fe.Field())
				}
				assert.ElementsMatch(t, tt.wantTags, fields)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got.Actions.Actions())
			}
		})
	}
}

func TestDraftBuilder_RejectsPointerActions(t *testing.T) {
	t.Parallel()

	got, err := tfgov.NewDraftBuilder().
		SetTitle("t").
		SetDescription("d").
		AddAction(types.Freeze{Status: true}).
		AddAction((*types.Burn)(nil)).
		Build()
	assert.Nil(t, got)

	var encErr *tfgov.EncodeActionError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, 1, encErr.Index)
	var invalid *types.InvalidExecuteMsgError
	require.ErrorAs(t, err, &invalid)
}

func TestDraftBuilder_BuildCopiesActions(t *testing.T) {
	t.Parallel()

	builder := tfgov.NewDraftBuilder().
		SetTitle("t").
		SetDescription("d").
		AddAction(types.Freeze{Status: true})

	first, err := builder.Build()
	require.NoError(t, err)

	builder.AddAction(types.Freeze{Status: false})
	second, err := builder.Build()
	require.NoError(t, err)

	assert.Equal(t, 1, first.Actions.Len())
	assert.Equal(t, 2, second.Actions.Len())
}
