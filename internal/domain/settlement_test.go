package domain

import (
	"context"
	"testing"

	"github.com/questx-lab/marketplace/internal/entity"
	"github.com/questx-lab/marketplace/pkg/errorx"
	"github.com/stretchr/testify/require"
)

type transferCall struct {
	collection, from, to, tokenID string
}

type mockNFTCaller struct {
	approved  string
	approves  []string
	transfers []transferCall
	err       error
}

func (m *mockNFTCaller) OwnerOf(context.Context, string, string) (string, error) {
	return "", m.err
}

func (m *mockNFTCaller) GetApproved(context.Context, string, string) (string, error) {
	return m.approved, m.err
}

func (m *mockNFTCaller) BalanceOf(context.Context, string, string) (uint64, error) {
	return 0, m.err
}

func (m *mockNFTCaller) IsApprovedForAll(context.Context, string, string, string) (bool, error) {
	return false, m.err
}

func (m *mockNFTCaller) Approve(_ context.Context, _, to, _ string) error {
	m.approves = append(m.approves, to)
	return m.err
}

func (m *mockNFTCaller) TransferFrom(_ context.Context, collection, from, to, tokenID string) error {
	m.transfers = append(m.transfers, transferCall{collection, from, to, tokenID})
	return m.err
}

func (m *mockNFTCaller) SafeTransferFrom(ctx context.Context, collection, from, to, tokenID string) error {
	return m.TransferFrom(ctx, collection, from, to, tokenID)
}

func Test_approvalSettlement(t *testing.T) {
	ctx := context.Background()
	model, err := NewSettlementModel(SettlementApproval)
	require.NoError(t, err)
	require.False(t, model.Custodial())

	nft := &mockNFTCaller{approved: "AU1other"}
	err = model.List(ctx, nft, "AS1market", "AS1nft", "1", "AU1seller")
	require.True(t, errorx.Is(err, errorx.FailedPrecondition))

	nft.approved = "AS1market"
	require.NoError(t, model.List(ctx, nft, "AS1market", "AS1nft", "1", "AU1seller"))
	require.Empty(t, nft.transfers)

	offer := &entity.SellOffer{CollectionAddress: "AS1nft", TokenID: "1", CreatorAddress: "AU1seller"}
	require.Equal(t, "AU1seller", model.Holder("AS1market", offer))

	require.NoError(t, model.Release(ctx, nft, "AS1market", offer))
	require.Empty(t, nft.transfers)

	require.NoError(t, model.Deliver(ctx, nft, "AS1market", offer, "AU1buyer"))
	require.Equal(t, []transferCall{{"AS1nft", "AU1seller", "AU1buyer", "1"}}, nft.transfers)
}

func Test_escrowSettlement(t *testing.T) {
	ctx := context.Background()
	model, err := NewSettlementModel(SettlementEscrow)
	require.NoError(t, err)
	require.True(t, model.Custodial())

	nft := &mockNFTCaller{}
	require.NoError(t, model.List(ctx, nft, "AS1market", "AS1nft", "1", "AU1seller"))
	require.Equal(t, []transferCall{{"AS1nft", "AU1seller", "AS1market", "1"}}, nft.transfers)

	offer := &entity.SellOffer{CollectionAddress: "AS1nft", TokenID: "1", CreatorAddress: "AU1seller"}
	require.Equal(t, "AS1market", model.Holder("AS1market", offer))

	nft.transfers = nil
	require.NoError(t, model.Release(ctx, nft, "AS1market", offer))
	require.Equal(t, []string{"AU1seller"}, nft.approves)
	require.Equal(t, []transferCall{{"AS1nft", "AS1market", "AU1seller", "1"}}, nft.transfers)

	nft.err = errorx.New(errorx.ExternalCall, "boom")
	require.Error(t, model.Deliver(ctx, nft, "AS1market", offer, "AU1buyer"))

	_, err = NewSettlementModel("auction")
	require.Error(t, err)
}
