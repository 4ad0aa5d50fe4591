package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/questx-lab/marketplace/internal/common"
	"github.com/questx-lab/marketplace/internal/domain"
	"github.com/questx-lab/marketplace/internal/domain/cron"
	"github.com/questx-lab/marketplace/internal/model"
	"github.com/questx-lab/marketplace/pkg/errorx"
	"github.com/questx-lab/marketplace/pkg/kvstore"
	"github.com/questx-lab/marketplace/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

const (
	price    = 1000
	expireIn = 60_000
)

func Test_marketplaceDomain_SellOffer(t *testing.T) {
	f := newFixture(t, defaultOptions())
	now := f.clock.UnixMilli()
	tokenID := f.list(t, price, expireIn)

	offer, err := f.getOffer(t, tokenID)
	require.NoError(t, err)
	require.Equal(t, model.SellOffer{
		CollectionAddress: collectionAddr,
		TokenID:           tokenID,
		Price:             price,
		CreatorAddress:    sellerAddr,
		ExpirationTime:    now + expireIn,
		CreatedTime:       now,
	}, offer)

	// The token stays with the seller.
	require.Equal(t, sellerAddr, f.ownerOf(t, tokenID))

	messages, err := f.queue.PopDue(f.ctx, now+expireIn, 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, marketplaceAddr, messages[0].Target)
	require.Equal(t, domain.AutonomousDelOfferFunction, messages[0].Function)
	require.Equal(t, now+expireIn, messages[0].StartTime)
	require.Greater(t, messages[0].EndTime, messages[0].StartTime)
}

func Test_marketplaceDomain_SellOffer_Failures(t *testing.T) {
	testCases := []struct {
		name    string
		setup   func(t *testing.T, f *fixture) string
		caller  string
		req     func(tokenID string) *model.SellOfferRequest
		wantErr errorx.Code
	}{
		{
			name: "duplicated offer",
			setup: func(t *testing.T, f *fixture) string {
				return f.list(t, price, expireIn)
			},
			caller:  sellerAddr,
			wantErr: errorx.AlreadyExists,
		},
		{
			name: "not the owner",
			setup: func(t *testing.T, f *fixture) string {
				return f.mint(t, sellerAddr)
			},
			caller:  strangerAddr,
			wantErr: errorx.PermissionDenied,
		},
		{
			name: "marketplace not approved",
			setup: func(t *testing.T, f *fixture) string {
				return f.mint(t, sellerAddr)
			},
			caller:  sellerAddr,
			wantErr: errorx.FailedPrecondition,
		},
		{
			name: "unknown collection",
			setup: func(t *testing.T, f *fixture) string {
				return f.mint(t, sellerAddr)
			},
			caller: sellerAddr,
			req: func(tokenID string) *model.SellOfferRequest {
				return &model.SellOfferRequest{
					Collection: "AS1unknown",
					TokenID:    tokenID,
					Price:      price,
					ExpireIn:   expireIn,
				}
			},
			wantErr: errorx.NotFound,
		},
		{
			name: "zero expiration delay",
			setup: func(t *testing.T, f *fixture) string {
				return f.mint(t, sellerAddr)
			},
			caller: sellerAddr,
			req: func(tokenID string) *model.SellOfferRequest {
				return &model.SellOfferRequest{Collection: collectionAddr, TokenID: tokenID, Price: price}
			},
			wantErr: errorx.BadRequest,
		},
		{
			name: "invalid token id",
			setup: func(t *testing.T, f *fixture) string {
				return "one"
			},
			caller:  sellerAddr,
			wantErr: errorx.BadRequest,
		},
		{
			name: "unminted token",
			setup: func(t *testing.T, f *fixture) string {
				return "9"
			},
			caller:  sellerAddr,
			wantErr: errorx.ExternalCall,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, defaultOptions())
			tokenID := tt.setup(t, f)

			req := &model.SellOfferRequest{
				Collection: collectionAddr,
				TokenID:    tokenID,
				Price:      price,
				ExpireIn:   expireIn,
			}
			if tt.req != nil {
				req = tt.req(tokenID)
			}

			_, err := f.exec(tt.caller, marketplaceAddr, "sellOffer", 0, req)
			require.True(t, errorx.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func Test_marketplaceDomain_BuyOffer(t *testing.T) {
	f := newFixture(t, defaultOptions())
	tokenID := f.list(t, price, expireIn)
	sellerBefore := f.balance(t, sellerAddr)
	buyerBefore := f.balance(t, buyerAddr)

	receipt, err := f.exec(buyerAddr, marketplaceAddr, "buyOffer", price,
		&model.OfferRequest{Collection: collectionAddr, TokenID: tokenID})
	require.NoError(t, err)

	var resp model.BuyOfferResponse
	require.NoError(t, json.Unmarshal(receipt.Result, &resp))
	require.Equal(t, model.BuyOfferResponse{Seller: sellerAddr, Price: price, Fee: 20, Proceeds: 980}, resp)

	require.Equal(t, buyerAddr, f.ownerOf(t, tokenID))
	require.Equal(t, buyerBefore-price, f.balance(t, buyerAddr))
	require.Equal(t, sellerBefore+980, f.balance(t, sellerAddr))
	require.Equal(t, uint64(20), f.balance(t, marketplaceAddr))

	_, err = f.getOffer(t, tokenID)
	require.True(t, errorx.Is(err, errorx.NotFound))

	var history model.GetBuyHistoryResponse
	require.NoError(t, f.read(t, marketplaceAddr, "getBuyHistory", &model.GetBuyHistoryRequest{
		Buyer:      buyerAddr,
		Collection: collectionAddr,
		TokenID:    tokenID,
	}, &history))
	require.Equal(t, sellerAddr, history.History.Seller)
	require.Equal(t, uint64(price), history.History.Price)

	names := []string{}
	for _, event := range receipt.Events {
		names = append(names, event.Name)
	}
	require.Equal(t, []string{model.TransferEvent, model.BuyOfferEvent}, names)
	require.Equal(t, len(receipt.Events), publishedEvents(t, f, receipt.TxID))
}

func publishedEvents(t *testing.T, f *fixture, txID string) int {
	n := 0
	for _, pack := range f.publisher.Published() {
		var event model.Event
		require.NoError(t, json.Unmarshal(pack.Msg, &event))
		if event.TxID == txID {
			n++
		}
	}

	return n
}

func Test_marketplaceDomain_BuyOffer_Failures(t *testing.T) {
	testCases := []struct {
		name       string
		settlement string
		prepare    func(t *testing.T, f *fixture, tokenID string)
		coins      uint64
		wantErr    errorx.Code
	}{
		{
			name: "expired offer",
			prepare: func(t *testing.T, f *fixture, tokenID string) {
				f.clock.Advance(expireIn*time.Millisecond + time.Millisecond)
			},
			coins:   price,
			wantErr: errorx.Expired,
		},
		{
			name:    "insufficient payment",
			coins:   price - 1,
			wantErr: errorx.InsufficientPayment,
		},
		{
			name: "stale offer",
			prepare: func(t *testing.T, f *fixture, tokenID string) {
				_, err := f.exec(sellerAddr, collectionAddr, "transferFrom", 0, &model.TransferFromRequest{
					From:    sellerAddr,
					To:      strangerAddr,
					TokenID: tokenID,
				})
				require.NoError(t, err)
			},
			coins:   price,
			wantErr: errorx.FailedPrecondition,
		},
		{
			name: "asset transfer fails",
			prepare: func(t *testing.T, f *fixture, tokenID string) {
				// Revoke the approval of the marketplace.
				_, err := f.exec(sellerAddr, collectionAddr, "approve", 0,
					&model.ApproveRequest{To: "", TokenID: tokenID})
				require.NoError(t, err)
			},
			coins:   price,
			wantErr: errorx.ExternalCall,
		},
		{
			name:       "escrow expired offer",
			settlement: domain.SettlementEscrow,
			prepare: func(t *testing.T, f *fixture, tokenID string) {
				f.clock.Advance(expireIn*time.Millisecond + time.Millisecond)
			},
			coins:   price,
			wantErr: errorx.Expired,
		},
		{
			name:       "escrow insufficient payment",
			settlement: domain.SettlementEscrow,
			coins:      price - 1,
			wantErr:    errorx.InsufficientPayment,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			opts := defaultOptions()
			if tt.settlement != "" {
				opts.settlement = tt.settlement
			}

			f := newFixture(t, opts)
			tokenID := f.list(t, price, expireIn)
			if tt.prepare != nil {
				tt.prepare(t, f, tokenID)
			}

			owner := f.ownerOf(t, tokenID)
			if opts.settlement == domain.SettlementEscrow {
				require.Equal(t, marketplaceAddr, owner)
			}
			offerBefore, err := f.getOffer(t, tokenID)
			require.NoError(t, err)
			sellerBefore := f.balance(t, sellerAddr)
			buyerBefore := f.balance(t, buyerAddr)
			published := len(f.publisher.Published())

			_, err = f.exec(buyerAddr, marketplaceAddr, "buyOffer", tt.coins,
				&model.OfferRequest{Collection: collectionAddr, TokenID: tokenID})
			require.True(t, errorx.Is(err, tt.wantErr), "got %v", err)

			// Nothing of the failed operation is left behind.
			require.Equal(t, owner, f.ownerOf(t, tokenID))
			require.Equal(t, sellerBefore, f.balance(t, sellerAddr))
			require.Equal(t, buyerBefore, f.balance(t, buyerAddr))
			require.Equal(t, uint64(0), f.balance(t, marketplaceAddr))
			require.Len(t, f.publisher.Published(), published)

			offerAfter, err := f.getOffer(t, tokenID)
			require.NoError(t, err)
			require.Equal(t, offerBefore, offerAfter)

			var history model.GetBuyHistoryResponse
			err = f.read(t, marketplaceAddr, "getBuyHistory", &model.GetBuyHistoryRequest{
				Buyer:      buyerAddr,
				Collection: collectionAddr,
				TokenID:    tokenID,
			}, &history)
			require.True(t, errorx.Is(err, errorx.NotFound))
		})
	}
}

func Test_marketplaceDomain_CorruptSellOffer(t *testing.T) {
	f := newFixture(t, defaultOptions())
	tokenID := f.list(t, price, expireIn)

	id, err := common.ParseTokenID(tokenID)
	require.NoError(t, err)

	// Field 1 announces 5 bytes but only one follows.
	corrupt := []byte{0x0a, 0x05, 'A'}

	tx, err := xcontext.Store(f.ctx).Begin(f.ctx)
	require.NoError(t, err)
	require.NoError(t, kvstore.Prefix(tx, marketplaceAddr).Set(common.SellOfferKey(collectionAddr, id), corrupt))
	require.NoError(t, tx.Commit())

	req := &model.OfferRequest{Collection: collectionAddr, TokenID: tokenID}
	testCases := []struct {
		name     string
		caller   string
		function string
		coins    uint64
	}{
		{name: "buy", caller: buyerAddr, function: "buyOffer", coins: price},
		{name: "remove", caller: sellerAddr, function: "removeSellOffer"},
		{name: "admin delete", caller: adminAddr, function: "adminDeleteOffer"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			buyerBefore := f.balance(t, buyerAddr)

			_, err := f.exec(tt.caller, marketplaceAddr, tt.function, tt.coins, req)
			require.True(t, errorx.Is(err, errorx.Deserialization), "got %v", err)

			require.Equal(t, buyerBefore, f.balance(t, buyerAddr))
			require.Equal(t, sellerAddr, f.ownerOf(t, tokenID))
		})
	}

	_, err = f.getOffer(t, tokenID)
	require.True(t, errorx.Is(err, errorx.Deserialization), "got %v", err)
}

func Test_marketplaceDomain_RemoveSellOffer(t *testing.T) {
	f := newFixture(t, defaultOptions())
	tokenID := f.list(t, price, expireIn)
	req := &model.OfferRequest{Collection: collectionAddr, TokenID: tokenID}

	_, err := f.exec(strangerAddr, marketplaceAddr, "removeSellOffer", 0, req)
	require.True(t, errorx.Is(err, errorx.PermissionDenied))

	_, err = f.getOffer(t, tokenID)
	require.NoError(t, err)

	receipt, err := f.exec(sellerAddr, marketplaceAddr, "removeSellOffer", 0, req)
	require.NoError(t, err)
	require.Len(t, receipt.Events, 1)
	require.Equal(t, model.RemoveSellOfferEvent, receipt.Events[0].Name)

	_, err = f.getOffer(t, tokenID)
	require.True(t, errorx.Is(err, errorx.NotFound))

	_, err = f.exec(sellerAddr, marketplaceAddr, "removeSellOffer", 0, req)
	require.True(t, errorx.Is(err, errorx.NotFound))
}

func Test_marketplaceDomain_Escrow(t *testing.T) {
	opts := defaultOptions()
	opts.settlement = domain.SettlementEscrow
	f := newFixture(t, opts)

	tokenID := f.list(t, price, expireIn)
	require.Equal(t, marketplaceAddr, f.ownerOf(t, tokenID))

	// Removing gives the token back.
	_, err := f.exec(sellerAddr, marketplaceAddr, "removeSellOffer", 0,
		&model.OfferRequest{Collection: collectionAddr, TokenID: tokenID})
	require.NoError(t, err)
	require.Equal(t, sellerAddr, f.ownerOf(t, tokenID))

	_, err = f.exec(sellerAddr, collectionAddr, "approve", 0,
		&model.ApproveRequest{To: marketplaceAddr, TokenID: tokenID})
	require.NoError(t, err)
	_, err = f.exec(sellerAddr, marketplaceAddr, "sellOffer", 0, &model.SellOfferRequest{
		Collection: collectionAddr,
		TokenID:    tokenID,
		Price:      price,
		ExpireIn:   expireIn,
	})
	require.NoError(t, err)

	_, err = f.exec(buyerAddr, marketplaceAddr, "buyOffer", price,
		&model.OfferRequest{Collection: collectionAddr, TokenID: tokenID})
	require.NoError(t, err)
	require.Equal(t, buyerAddr, f.ownerOf(t, tokenID))

	var balance model.Uint64Response
	require.NoError(t, f.read(t, collectionAddr, "balanceOf", &model.AddressRequest{Address: marketplaceAddr}, &balance))
	require.Zero(t, balance.Value)
}

func Test_marketplaceDomain_Escrow_WithoutApproval(t *testing.T) {
	opts := defaultOptions()
	opts.settlement = domain.SettlementEscrow
	f := newFixture(t, opts)

	tokenID := f.mint(t, sellerAddr)
	_, err := f.exec(sellerAddr, marketplaceAddr, "sellOffer", 0, &model.SellOfferRequest{
		Collection: collectionAddr,
		TokenID:    tokenID,
		Price:      price,
		ExpireIn:   expireIn,
	})
	require.True(t, errorx.Is(err, errorx.ExternalCall))
	require.Equal(t, sellerAddr, f.ownerOf(t, tokenID))
}

func Test_marketplaceDomain_RemoveSellOffer_DelistedCollection(t *testing.T) {
	testCases := []struct {
		name       string
		settlement string
		owner      string
	}{
		{name: "approval", settlement: domain.SettlementApproval, owner: sellerAddr},
		{name: "escrow", settlement: domain.SettlementEscrow, owner: marketplaceAddr},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := defaultOptions()
			opts.settlement = tc.settlement
			f := newFixture(t, opts)

			tokenID := f.list(t, price, expireIn)
			require.Equal(t, tc.owner, f.ownerOf(t, tokenID))

			_, err := f.exec(adminAddr, marketplaceAddr, "adminDellCollection", 0,
				&model.AdminDellCollectionRequest{Address: collectionAddr})
			require.NoError(t, err)

			req := &model.OfferRequest{Collection: collectionAddr, TokenID: tokenID}
			_, err = f.exec(buyerAddr, marketplaceAddr, "buyOffer", price, req)
			require.True(t, errorx.Is(err, errorx.NotFound))

			_, err = f.exec(strangerAddr, marketplaceAddr, "removeSellOffer", 0, req)
			require.True(t, errorx.Is(err, errorx.PermissionDenied))

			_, err = f.exec(sellerAddr, marketplaceAddr, "removeSellOffer", 0, req)
			require.NoError(t, err)
			require.Equal(t, sellerAddr, f.ownerOf(t, tokenID))

			_, err = f.getOffer(t, tokenID)
			require.True(t, errorx.Is(err, errorx.NotFound))
		})
	}
}

func Test_marketplaceDomain_AutonomousDelOffer(t *testing.T) {
	opts := defaultOptions()
	opts.settlement = domain.SettlementEscrow
	f := newFixture(t, opts)
	tokenID := f.list(t, price, expireIn)

	_, err := f.exec(sellerAddr, marketplaceAddr, domain.AutonomousDelOfferFunction, 0,
		&model.AutonomousDelOfferRequest{Collection: collectionAddr, TokenID: tokenID})
	require.True(t, errorx.Is(err, errorx.PermissionDenied))

	job := cron.NewScheduledMessageCronJob(f.runtime, f.queue, f.clock, time.Second)

	// Not due yet.
	job.Do(f.ctx)
	_, err = f.getOffer(t, tokenID)
	require.NoError(t, err)

	f.clock.Advance(expireIn * time.Millisecond)
	job.Do(f.ctx)

	_, err = f.getOffer(t, tokenID)
	require.True(t, errorx.Is(err, errorx.NotFound))
	require.Equal(t, sellerAddr, f.ownerOf(t, tokenID))
}

func Test_marketplaceDomain_ContractImpersonation(t *testing.T) {
	f := newFixture(t, defaultOptions())
	tokenID := f.list(t, price, expireIn)

	// The listed token is approved to the marketplace, an outsider must not be
	// able to use that approval by posing as the marketplace.
	_, err := f.exec(marketplaceAddr, collectionAddr, "transferFrom", 0, &model.TransferFromRequest{
		From:    sellerAddr,
		To:      strangerAddr,
		TokenID: tokenID,
	})
	require.True(t, errorx.Is(err, errorx.PermissionDenied), "got %v", err)
	require.Equal(t, sellerAddr, f.ownerOf(t, tokenID))

	f.clock.Advance(expireIn * time.Millisecond)
	_, err = f.exec(marketplaceAddr, marketplaceAddr, domain.AutonomousDelOfferFunction, 0,
		&model.AutonomousDelOfferRequest{Collection: collectionAddr, TokenID: tokenID})
	require.True(t, errorx.Is(err, errorx.PermissionDenied), "got %v", err)

	_, err = f.getOffer(t, tokenID)
	require.NoError(t, err)
}

func Test_marketplaceDomain_AutonomousDelOffer_Relisted(t *testing.T) {
	f := newFixture(t, defaultOptions())
	tokenID := f.list(t, price, expireIn)
	req := &model.OfferRequest{Collection: collectionAddr, TokenID: tokenID}

	_, err := f.exec(sellerAddr, marketplaceAddr, "removeSellOffer", 0, req)
	require.NoError(t, err)

	_, err = f.exec(sellerAddr, marketplaceAddr, "sellOffer", 0, &model.SellOfferRequest{
		Collection: collectionAddr,
		TokenID:    tokenID,
		Price:      price,
		ExpireIn:   10 * expireIn,
	})
	require.NoError(t, err)

	// The message of the first listing must not remove the second one.
	f.clock.Advance(expireIn * time.Millisecond)
	job := cron.NewScheduledMessageCronJob(f.runtime, f.queue, f.clock, time.Second)
	job.Do(f.ctx)

	offer, err := f.getOffer(t, tokenID)
	require.NoError(t, err)
	require.Equal(t, sellerAddr, offer.CreatorAddress)
}

func Test_marketplaceDomain_AutoExpireDisabled(t *testing.T) {
	opts := defaultOptions()
	opts.autoExpire = false
	f := newFixture(t, opts)
	f.list(t, price, expireIn)

	messages, err := f.queue.PopDue(f.ctx, f.clock.UnixMilli()+10*expireIn, 10)
	require.NoError(t, err)
	require.Empty(t, messages)
}

func Test_marketplaceDomain_AdminOnly(t *testing.T) {
	f := newFixture(t, defaultOptions())
	tokenID := f.list(t, price, expireIn)

	testCases := map[string]any{
		"adminAddCollection":          &model.AdminAddCollectionRequest{Address: "AS1other"},
		"adminDellCollection":         &model.AdminDellCollectionRequest{Address: collectionAddr},
		"adminChangeMarketplaceOwner": &model.AdminChangeMarketplaceOwnerRequest{Owner: strangerAddr},
		"adminSendCoinsFrom":          &model.AdminSendCoinsFromRequest{Address: strangerAddr, Amount: 1},
		"sendAllCoinsToAddress":       &model.SendAllCoinsToAddressRequest{Address: strangerAddr},
		"adminDeleteOffer":            &model.OfferRequest{Collection: collectionAddr, TokenID: tokenID},
		"changeMarketplaceFee":        &model.ChangeMarketplaceFeeRequest{Fee: 50},
	}

	for function, req := range testCases {
		t.Run(function, func(t *testing.T) {
			_, err := f.exec(strangerAddr, marketplaceAddr, function, 0, req)
			require.True(t, errorx.Is(err, errorx.PermissionDenied), "got %v", err)
		})
	}

	var owner model.StringResponse
	require.NoError(t, f.read(t, marketplaceAddr, "getMarketplaceOwner", &model.EmptyRequest{}, &owner))
	require.Equal(t, adminAddr, owner.Value)

	var fee model.Uint64Response
	require.NoError(t, f.read(t, marketplaceAddr, "getMarketplaceFee", &model.EmptyRequest{}, &fee))
	require.Equal(t, uint64(2), fee.Value)
}

func Test_marketplaceDomain_Admin(t *testing.T) {
	f := newFixture(t, defaultOptions())
	tokenID := f.list(t, price, expireIn)

	_, err := f.exec(adminAddr, marketplaceAddr, "adminDeleteOffer", 0,
		&model.OfferRequest{Collection: collectionAddr, TokenID: tokenID})
	require.NoError(t, err)
	_, err = f.getOffer(t, tokenID)
	require.True(t, errorx.Is(err, errorx.NotFound))

	_, err = f.exec(adminAddr, marketplaceAddr, "changeMarketplaceFee", 0,
		&model.ChangeMarketplaceFeeRequest{Fee: 101})
	require.True(t, errorx.Is(err, errorx.BadRequest))

	_, err = f.exec(adminAddr, marketplaceAddr, "changeMarketplaceFee", 0,
		&model.ChangeMarketplaceFeeRequest{Fee: 10})
	require.NoError(t, err)

	// Collect some fees.
	tokenID = f.list(t, price, expireIn)
	_, err = f.exec(buyerAddr, marketplaceAddr, "buyOffer", price,
		&model.OfferRequest{Collection: collectionAddr, TokenID: tokenID})
	require.NoError(t, err)
	require.Equal(t, uint64(100), f.balance(t, marketplaceAddr))

	_, err = f.exec(adminAddr, marketplaceAddr, "adminSendCoinsFrom", 0,
		&model.AdminSendCoinsFromRequest{Address: adminAddr, Amount: 40})
	require.NoError(t, err)
	require.Equal(t, uint64(40), f.balance(t, adminAddr))

	receipt, err := f.exec(adminAddr, marketplaceAddr, "sendAllCoinsToAddress", 0,
		&model.SendAllCoinsToAddressRequest{Address: adminAddr})
	require.NoError(t, err)
	require.JSONEq(t, `{"amount":60}`, string(receipt.Result))
	require.Equal(t, uint64(100), f.balance(t, adminAddr))
	require.Zero(t, f.balance(t, marketplaceAddr))

	_, err = f.exec(adminAddr, marketplaceAddr, "adminChangeMarketplaceOwner", 0,
		&model.AdminChangeMarketplaceOwnerRequest{Owner: strangerAddr})
	require.NoError(t, err)

	_, err = f.exec(adminAddr, marketplaceAddr, "adminDellCollection", 0,
		&model.AdminDellCollectionRequest{Address: collectionAddr})
	require.True(t, errorx.Is(err, errorx.PermissionDenied))

	_, err = f.exec(strangerAddr, marketplaceAddr, "adminDellCollection", 0,
		&model.AdminDellCollectionRequest{Address: collectionAddr})
	require.NoError(t, err)

	var collection model.GetCollectionResponse
	err = f.read(t, marketplaceAddr, "getCollection", &model.GetCollectionRequest{Address: collectionAddr}, &collection)
	require.True(t, errorx.Is(err, errorx.NotFound))
}

func Test_marketplaceDomain_ListingFee(t *testing.T) {
	opts := defaultOptions()
	opts.feePolicy = domain.FeePolicyListing
	opts.fee = 50
	f := newFixture(t, opts)

	tokenID := f.mint(t, sellerAddr)
	_, err := f.exec(sellerAddr, collectionAddr, "approve", 0,
		&model.ApproveRequest{To: marketplaceAddr, TokenID: tokenID})
	require.NoError(t, err)

	req := &model.SellOfferRequest{Collection: collectionAddr, TokenID: tokenID, Price: price, ExpireIn: expireIn}
	_, err = f.exec(sellerAddr, marketplaceAddr, "sellOffer", 49, req)
	require.True(t, errorx.Is(err, errorx.InsufficientPayment))
	require.Zero(t, f.balance(t, marketplaceAddr))

	_, err = f.exec(sellerAddr, marketplaceAddr, "sellOffer", 50, req)
	require.NoError(t, err)
	require.Equal(t, uint64(50), f.balance(t, marketplaceAddr))

	receipt, err := f.exec(buyerAddr, marketplaceAddr, "buyOffer", price,
		&model.OfferRequest{Collection: collectionAddr, TokenID: tokenID})
	require.NoError(t, err)

	var resp model.BuyOfferResponse
	require.NoError(t, json.Unmarshal(receipt.Result, &resp))
	require.Equal(t, uint64(price), resp.Proceeds)
}

func Test_marketplaceDomain_WithoutBuyHistory(t *testing.T) {
	opts := defaultOptions()
	opts.recordBuyHistory = false
	f := newFixture(t, opts)
	tokenID := f.list(t, price, expireIn)

	_, err := f.exec(buyerAddr, marketplaceAddr, "buyOffer", price,
		&model.OfferRequest{Collection: collectionAddr, TokenID: tokenID})
	require.NoError(t, err)

	var history model.GetBuyHistoryResponse
	err = f.read(t, marketplaceAddr, "getBuyHistory", &model.GetBuyHistoryRequest{
		Buyer:      buyerAddr,
		Collection: collectionAddr,
		TokenID:    tokenID,
	}, &history)
	require.True(t, errorx.Is(err, errorx.NotFound))
}
