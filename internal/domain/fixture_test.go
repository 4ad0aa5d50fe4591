package domain_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/questx-lab/marketplace/config"
	"github.com/questx-lab/marketplace/internal/client"
	"github.com/questx-lab/marketplace/internal/deliveries"
	"github.com/questx-lab/marketplace/internal/domain"
	"github.com/questx-lab/marketplace/internal/host"
	"github.com/questx-lab/marketplace/internal/model"
	"github.com/questx-lab/marketplace/internal/repository"
	"github.com/questx-lab/marketplace/pkg/clock"
	"github.com/questx-lab/marketplace/pkg/testutil"
	"github.com/stretchr/testify/require"
)

const (
	marketplaceAddr = "AS1marketplace"
	collectionAddr  = "AS1collection"
	adminAddr       = "AU1admin"
	sellerAddr      = "AU1seller"
	buyerAddr       = "AU1buyer"
	strangerAddr    = "AU1stranger"

	mintPrice      = 100
	initialBalance = 1_000_000
)

type fixtureOptions struct {
	settlement       string
	feePolicy        string
	fee              uint64
	totalSupply      string
	startTime        uint64
	recordBuyHistory bool
	autoExpire       bool
}

type fixture struct {
	ctx       context.Context
	clock     *clock.MockClock
	queue     host.MessageQueue
	publisher *testutil.MockPublisher
	runtime   *host.Runtime
}

func defaultOptions() fixtureOptions {
	return fixtureOptions{
		settlement:       domain.SettlementApproval,
		feePolicy:        domain.FeePolicyPercentage,
		fee:              2,
		totalSupply:      "10",
		recordBuyHistory: true,
		autoExpire:       true,
	}
}

// fixtureNow is the initial time of every fixture, some time after the
// genesis.
func fixtureNow() uint64 {
	return config.Default().Chain.GenesisTimestamp + 1_000_000
}

func newFixture(t *testing.T, opts fixtureOptions) *fixture {
	ctx := testutil.MockContext()
	f := &fixture{
		ctx:       ctx,
		clock:     clock.NewMockClock(time.UnixMilli(int64(fixtureNow()))),
		queue:     host.NewMemoryMessageQueue(),
		publisher: &testutil.MockPublisher{},
	}
	f.runtime = host.NewRuntime(f.clock, f.queue, f.publisher)
	env := f.runtime.Environment()

	settlement, err := domain.NewSettlementModel(opts.settlement)
	require.NoError(t, err)
	feePolicy, err := domain.NewFeePolicy(opts.feePolicy)
	require.NoError(t, err)

	nftDomain := domain.NewNFTDomain(env, repository.NewNFTSettingRepository(), repository.NewTokenRepository())
	marketplaceDomain := domain.NewMarketplaceDomain(
		env,
		client.NewNFTCaller(env),
		repository.NewSellOfferRepository(),
		repository.NewCollectionRepository(),
		repository.NewBuyHistoryRepository(),
		repository.NewMarketplaceSettingRepository(),
		domain.MarketplaceOptions{
			Settlement:       settlement,
			FeePolicy:        feePolicy,
			RecordBuyHistory: opts.recordBuyHistory,
			AutoExpire:       opts.autoExpire,
		},
	)

	require.NoError(t, f.runtime.Register(collectionAddr, deliveries.NewNFTRouter(nftDomain)))
	require.NoError(t, f.runtime.Register(marketplaceAddr, deliveries.NewMarketplaceRouter(marketplaceDomain)))

	for _, address := range []string{sellerAddr, buyerAddr, strangerAddr} {
		require.NoError(t, f.runtime.Credit(ctx, address, initialBalance))
	}

	_, err = f.runtime.Deploy(ctx, adminAddr, collectionAddr, 0, &model.NFTConstructorRequest{
		Name:        "Pixels",
		Symbol:      "PIX",
		TotalSupply: opts.totalSupply,
		BaseURI:     "ipfs://pixels/",
		TokenURI:    "ipfs://pixels/token/",
		MintPrice:   mintPrice,
		StartTime:   opts.startTime,
	})
	require.NoError(t, err)

	_, err = f.runtime.Deploy(ctx, adminAddr, marketplaceAddr, 0, &model.MarketplaceConstructorRequest{
		Owner: adminAddr,
		Fee:   opts.fee,
	})
	require.NoError(t, err)

	_, err = f.exec(adminAddr, marketplaceAddr, "adminAddCollection", 0, &model.AdminAddCollectionRequest{
		Name:    "Pixels",
		Address: collectionAddr,
	})
	require.NoError(t, err)

	return f
}

func (f *fixture) exec(caller, target, function string, coins uint64, req any) (*model.Receipt, error) {
	params, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	return f.runtime.Execute(f.ctx, &model.Operation{
		Caller:   caller,
		Target:   target,
		Function: function,
		Coins:    coins,
		Params:   params,
	})
}

func (f *fixture) read(t *testing.T, target, function string, req, resp any) error {
	params, err := json.Marshal(req)
	require.NoError(t, err)

	result, err := f.runtime.Read(f.ctx, &model.Operation{
		Caller:   adminAddr,
		Target:   target,
		Function: function,
		Params:   params,
	})
	if err != nil {
		return err
	}

	require.NoError(t, json.Unmarshal(result, resp))
	return nil
}

func (f *fixture) mint(t *testing.T, to string) string {
	receipt, err := f.exec(to, collectionAddr, "mint", mintPrice, &model.MintRequest{Recipient: to})
	require.NoError(t, err)

	var resp model.MintResponse
	require.NoError(t, json.Unmarshal(receipt.Result, &resp))
	return resp.TokenID
}

func (f *fixture) ownerOf(t *testing.T, tokenID string) string {
	var resp model.StringResponse
	require.NoError(t, f.read(t, collectionAddr, "ownerOf", &model.TokenIDRequest{TokenID: tokenID}, &resp))
	return resp.Value
}

func (f *fixture) balance(t *testing.T, address string) uint64 {
	balance, err := f.runtime.Balance(f.ctx, address)
	require.NoError(t, err)
	return balance
}

func (f *fixture) getOffer(t *testing.T, tokenID string) (model.SellOffer, error) {
	var resp model.GetSellOfferResponse
	err := f.read(t, marketplaceAddr, "getSellOffer",
		&model.OfferRequest{Collection: collectionAddr, TokenID: tokenID}, &resp)
	return resp.Offer, err
}

// list mints a token to the seller, approves the marketplace when needed and
// lists it.
func (f *fixture) list(t *testing.T, price, expireIn uint64) string {
	tokenID := f.mint(t, sellerAddr)

	_, err := f.exec(sellerAddr, collectionAddr, "approve", 0,
		&model.ApproveRequest{To: marketplaceAddr, TokenID: tokenID})
	require.NoError(t, err)

	_, err = f.exec(sellerAddr, marketplaceAddr, "sellOffer", 0, &model.SellOfferRequest{
		Collection: collectionAddr,
		TokenID:    tokenID,
		Price:      price,
		ExpireIn:   expireIn,
	})
	require.NoError(t, err)

	return tokenID
}
