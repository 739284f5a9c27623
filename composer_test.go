package tfgov_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cw-tokenfactory/tfgov"
	"github.com/cw-tokenfactory/tfgov/sdk"
	"github.com/cw-tokenfactory/tfgov/sdk/mocks"
	"github.com/cw-tokenfactory/tfgov/types"
)

func TestComposer_Edit(t *testing.T) {
	t.Parallel()

	c := tfgov.NewComposer(tfgov.NewSubmitter(mocks.NewProposer(t), mocks.NewContractResolver(t)))
	_, err := uuid.Parse(c.ID())
	require.NoError(t, err)

	require.NoError(t, c.SetTitle("Freeze"))
	require.NoError(t, c.SetDescription("Freeze transfers"))
	require.NoError(t, c.AddAction(types.Mint{ToAddress: "addr1", Amount: "100"}))
	require.NoError(t, c.AddAction(types.Freeze{Status: true}))

	removed, err := c.RemoveAction(0)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = c.RemoveAction(5)
	require.NoError(t, err)
	assert.False(t, removed)

	draft := c.Draft()
	assert.Equal(t, "Freeze", draft.Title)
	assert.Equal(t, []types.Action{types.Freeze{Status: true}}, draft.Actions.Actions())
}

func TestComposer_AddActionRejectsPointers(t *testing.T) {
	t.Parallel()

	c := tfgov.NewComposer(tfgov.NewSubmitter(mocks.NewProposer(t), mocks.NewContractResolver(t)))

	require.ErrorIs(t, c.AddAction(nil), types.ErrNilAction)
	var invalid *types.InvalidExecuteMsgError
	require.ErrorAs(t, c.AddAction((*types.Mint)(nil)), &invalid)
	require.ErrorAs(t, c.AddAction(&types.Freeze{Status: true}), &invalid)
	assert.Equal(t, 0, c.Draft().Actions.Len())
}

func TestComposer_LockedWhileSubmitting(t *testing.T) {
	t.Parallel()

	proposer := mocks.NewProposer(t)
	resolver := mocks.NewContractResolver(t)
	resolver.EXPECT().ContractAddress(tfgov.TokenfactoryIssuerContract).Return(testContractAddr, nil)

	var c *tfgov.Composer
	var editErrs []error
	proposer.EXPECT().Propose(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string, string, []types.CosmosMsg) (*types.TxResult, error) {
			_, removeErr := c.RemoveAction(0)
			editErrs = append(editErrs,
				c.SetTitle("changed"),
				c.SetDescription("changed"),
				c.AddAction(types.Freeze{}),
				removeErr,
			)

			return proposalResult("AA", "3"), nil
		})

	c = tfgov.NewComposer(tfgov.NewSubmitter(proposer, resolver))
	require.NoError(t, c.SetTitle("Mint"))
	require.NoError(t, c.SetDescription("Mint to treasury"))
	require.NoError(t, c.AddAction(types.Mint{ToAddress: "addr1", Amount: "100"}))

	res, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/proposal/3", res.Path())
	assert.Equal(t, tfgov.StateSucceeded, c.State())

	require.Len(t, editErrs, 4)
	for _, err := range editErrs {
		require.ErrorIs(t, err, tfgov.ErrComposerLocked)
	}
	assert.Equal(t, "Mint", c.Draft().Title)
	assert.Equal(t, 1, c.Draft().Actions.Len())
}

func TestComposer_SubmitLogsSession(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	ctx := sdk.WithLogger(context.Background(), zap.New(core).Sugar())

	proposer := mocks.NewProposer(t)
	resolver := mocks.NewContractResolver(t)
	resolver.EXPECT().ContractAddress(tfgov.TokenfactoryIssuerContract).Return(testContractAddr, nil)
	proposer.EXPECT().Propose(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(proposalResult("AA", "3"), nil)

	c := tfgov.NewComposer(tfgov.NewSubmitter(proposer, resolver))
	require.NoError(t, c.SetTitle("t"))
	require.NoError(t, c.SetDescription("d"))
	require.NoError(t, c.AddAction(types.Freeze{Status: true}))

	_, err := c.Submit(ctx)
	require.NoError(t, err)

	entries := logs.FilterField(zap.String("session", c.ID())).All()
	assert.NotEmpty(t, entries)
}
