package domain

import (
	"context"
	"encoding/json"
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/questx-lab/marketplace/internal/client"
	"github.com/questx-lab/marketplace/internal/common"
	"github.com/questx-lab/marketplace/internal/entity"
	"github.com/questx-lab/marketplace/internal/model"
	"github.com/questx-lab/marketplace/internal/repository"
	"github.com/questx-lab/marketplace/pkg/errorx"
	"github.com/questx-lab/marketplace/pkg/kvstore"
	"github.com/questx-lab/marketplace/pkg/xcontext"
)

const AutonomousDelOfferFunction = "autonomousDelOffer"

type MarketplaceDomain interface {
	Constructor(context.Context, *model.MarketplaceConstructorRequest) (*model.EmptyResponse, error)

	SellOffer(context.Context, *model.SellOfferRequest) (*model.SellOfferResponse, error)
	RemoveSellOffer(context.Context, *model.OfferRequest) (*model.EmptyResponse, error)
	BuyOffer(context.Context, *model.OfferRequest) (*model.BuyOfferResponse, error)
	AutonomousDelOffer(context.Context, *model.AutonomousDelOfferRequest) (*model.EmptyResponse, error)

	AdminAddCollection(context.Context, *model.AdminAddCollectionRequest) (*model.EmptyResponse, error)
	AdminDellCollection(context.Context, *model.AdminDellCollectionRequest) (*model.EmptyResponse, error)
	AdminChangeMarketplaceOwner(context.Context, *model.AdminChangeMarketplaceOwnerRequest) (*model.EmptyResponse, error)
	AdminSendCoinsFrom(context.Context, *model.AdminSendCoinsFromRequest) (*model.EmptyResponse, error)
	SendAllCoinsToAddress(context.Context, *model.SendAllCoinsToAddressRequest) (*model.SendAllCoinsToAddressResponse, error)
	AdminDeleteOffer(context.Context, *model.OfferRequest) (*model.EmptyResponse, error)
	ChangeMarketplaceFee(context.Context, *model.ChangeMarketplaceFeeRequest) (*model.EmptyResponse, error)

	GetSellOffer(context.Context, *model.OfferRequest) (*model.GetSellOfferResponse, error)
	GetCollection(context.Context, *model.GetCollectionRequest) (*model.GetCollectionResponse, error)
	GetMarketplaceOwner(context.Context, *model.EmptyRequest) (*model.StringResponse, error)
	GetMarketplaceFee(context.Context, *model.EmptyRequest) (*model.Uint64Response, error)
	GetBuyHistory(context.Context, *model.GetBuyHistoryRequest) (*model.GetBuyHistoryResponse, error)
}

type MarketplaceOptions struct {
	Settlement       SettlementModel
	FeePolicy        FeePolicy
	RecordBuyHistory bool
	AutoExpire       bool
}

type marketplaceDomain struct {
	env            client.Environment
	nftCaller      client.NFTCaller
	sellOfferRepo  repository.SellOfferRepository
	collectionRepo repository.CollectionRepository
	buyHistoryRepo repository.BuyHistoryRepository
	settingRepo    repository.MarketplaceSettingRepository

	settlement       SettlementModel
	feePolicy        FeePolicy
	recordBuyHistory bool
	autoExpire       bool
}

func NewMarketplaceDomain(
	env client.Environment,
	nftCaller client.NFTCaller,
	sellOfferRepo repository.SellOfferRepository,
	collectionRepo repository.CollectionRepository,
	buyHistoryRepo repository.BuyHistoryRepository,
	settingRepo repository.MarketplaceSettingRepository,
	opts MarketplaceOptions,
) *marketplaceDomain {
	if opts.Settlement == nil {
		opts.Settlement = approvalSettlement{}
	}

	if opts.FeePolicy == nil {
		opts.FeePolicy = noFee{}
	}

	return &marketplaceDomain{
		env:              env,
		nftCaller:        nftCaller,
		sellOfferRepo:    sellOfferRepo,
		collectionRepo:   collectionRepo,
		buyHistoryRepo:   buyHistoryRepo,
		settingRepo:      settingRepo,
		settlement:       opts.Settlement,
		feePolicy:        opts.FeePolicy,
		recordBuyHistory: opts.RecordBuyHistory,
		autoExpire:       opts.AutoExpire,
	}
}

func (d *marketplaceDomain) Constructor(
	ctx context.Context, req *model.MarketplaceConstructorRequest,
) (*model.EmptyResponse, error) {
	if err := onlyDeployment(ctx); err != nil {
		return nil, err
	}

	if req.Owner == "" {
		return nil, errorx.New(errorx.BadRequest, "marketplaceOwner argument is missing or invalid")
	}

	if err := d.feePolicy.ValidateFee(req.Fee); err != nil {
		return nil, err
	}

	if err := d.settingRepo.SetOwner(ctx, req.Owner); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set marketplace owner: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.settingRepo.SetFee(ctx, req.Fee); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set marketplace fee: %v", err)
		return nil, errorx.Unknown
	}

	return &model.EmptyResponse{}, nil
}

func (d *marketplaceDomain) SellOffer(
	ctx context.Context, req *model.SellOfferRequest,
) (*model.SellOfferResponse, error) {
	id, err := parseTokenID(req.TokenID)
	if err != nil {
		return nil, err
	}

	if req.ExpireIn == 0 {
		return nil, errorx.New(errorx.BadRequest, "Expiration delay must be positive")
	}

	now := xcontext.Timestamp(ctx)
	if req.ExpireIn > math.MaxUint64-now {
		return nil, errorx.New(errorx.BadRequest, "Expiration delay is too large")
	}

	fee, err := d.getFee(ctx)
	if err != nil {
		return nil, err
	}

	if xcontext.TransferredCoins(ctx) < d.feePolicy.ListingFee(fee) {
		return nil, errorx.New(errorx.InsufficientPayment, "Not enough coins for the listing fee")
	}

	if err := d.checkCollection(ctx, req.Collection); err != nil {
		return nil, err
	}

	exists, err := d.sellOfferRepo.Exists(ctx, req.Collection, id)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check sell offer: %v", err)
		return nil, errorx.Unknown
	}

	if exists {
		return nil, errorx.New(errorx.AlreadyExists, "Sell offer already exist")
	}

	marketplace := xcontext.Callee(ctx)
	seller := xcontext.Caller(ctx)
	owner, err := d.nftCaller.OwnerOf(ctx, req.Collection, id.Dec())
	if err != nil {
		return nil, err
	}

	if owner != seller {
		return nil, errorx.New(errorx.PermissionDenied, "You are not the owner of NFT")
	}

	if err := d.settlement.List(ctx, d.nftCaller, marketplace, req.Collection, id.Dec(), seller); err != nil {
		return nil, err
	}

	offer := &entity.SellOffer{
		CollectionAddress: req.Collection,
		TokenID:           id.Dec(),
		Price:             req.Price,
		CreatorAddress:    seller,
		ExpirationTime:    now + req.ExpireIn,
		CreatedTime:       now,
	}
	if err := d.sellOfferRepo.Upsert(ctx, id, offer); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create sell offer: %v", err)
		return nil, errorx.Unknown
	}

	if d.autoExpire {
		if err := d.scheduleExpiry(ctx, marketplace, offer); err != nil {
			return nil, err
		}
	}

	modelOffer := model.ConvertSellOffer(offer)
	if err := d.env.GenerateEvent(ctx, model.SellOfferEvent, modelOffer); err != nil {
		return nil, hostError(ctx, err, "Cannot generate sell offer event")
	}

	return &model.SellOfferResponse{Offer: modelOffer}, nil
}

func (d *marketplaceDomain) RemoveSellOffer(
	ctx context.Context, req *model.OfferRequest,
) (*model.EmptyResponse, error) {
	id, err := parseTokenID(req.TokenID)
	if err != nil {
		return nil, err
	}

	// The collection may have been delisted since, the creator can still take
	// the offer down.
	offer, err := d.getOffer(ctx, req.Collection, id)
	if err != nil {
		return nil, err
	}

	caller := xcontext.Caller(ctx)
	if offer.CreatorAddress != caller {
		return nil, errorx.New(errorx.PermissionDenied, "Only the creator can remove the sell offer")
	}

	marketplace := xcontext.Callee(ctx)
	if err := d.checkHolder(ctx, marketplace, offer); err != nil {
		if !d.settlement.Custodial() && errorx.Is(err, errorx.FailedPrecondition) {
			return nil, errorx.New(errorx.PermissionDenied, "You are not the owner of NFT")
		}
		return nil, err
	}

	if err := d.settlement.Release(ctx, d.nftCaller, marketplace, offer); err != nil {
		return nil, err
	}

	if err := d.sellOfferRepo.Delete(ctx, req.Collection, id); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete sell offer: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.env.GenerateEvent(ctx, model.RemoveSellOfferEvent, model.ConvertSellOffer(offer)); err != nil {
		return nil, hostError(ctx, err, "Cannot generate remove sell offer event")
	}

	return &model.EmptyResponse{}, nil
}

func (d *marketplaceDomain) BuyOffer(ctx context.Context, req *model.OfferRequest) (*model.BuyOfferResponse, error) {
	id, err := parseTokenID(req.TokenID)
	if err != nil {
		return nil, err
	}

	if err := d.checkCollection(ctx, req.Collection); err != nil {
		return nil, err
	}

	offer, err := d.getOffer(ctx, req.Collection, id)
	if err != nil {
		return nil, err
	}

	now := xcontext.Timestamp(ctx)
	if now > offer.ExpirationTime {
		return nil, errorx.New(errorx.Expired, "Sell offer has expired")
	}

	if xcontext.TransferredCoins(ctx) < offer.Price {
		return nil, errorx.New(errorx.InsufficientPayment,
			"Could not send enough money or marketplace fees to buy this NFT")
	}

	marketplace := xcontext.Callee(ctx)
	if err := d.checkHolder(ctx, marketplace, offer); err != nil {
		return nil, err
	}

	buyer := xcontext.Caller(ctx)
	if err := d.settlement.Deliver(ctx, d.nftCaller, marketplace, offer, buyer); err != nil {
		return nil, err
	}

	storedFee, err := d.getFee(ctx)
	if err != nil {
		return nil, err
	}

	fee := d.feePolicy.SettlementFee(offer.Price, storedFee)
	if fee > offer.Price {
		fee = offer.Price
	}

	proceeds := offer.Price - fee
	if proceeds > 0 {
		if err := d.env.TransferCoins(ctx, offer.CreatorAddress, proceeds); err != nil {
			return nil, hostError(ctx, err, "Cannot pay the seller")
		}
	}

	history := &entity.BuyTokenOperation{
		CollectionAddress: offer.CollectionAddress,
		TokenID:           offer.TokenID,
		Price:             offer.Price,
		Buyer:             buyer,
		Seller:            offer.CreatorAddress,
		Timestamp:         now,
	}
	if d.recordBuyHistory {
		if err := d.buyHistoryRepo.Upsert(ctx, id, history); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot write buy history: %v", err)
			return nil, errorx.Unknown
		}
	}

	if err := d.sellOfferRepo.Delete(ctx, req.Collection, id); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete sell offer: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.env.GenerateEvent(ctx, model.BuyOfferEvent, model.ConvertBuyHistory(history)); err != nil {
		return nil, hostError(ctx, err, "Cannot generate buy offer event")
	}

	return &model.BuyOfferResponse{
		Seller:   offer.CreatorAddress,
		Price:    offer.Price,
		Fee:      fee,
		Proceeds: proceeds,
	}, nil
}

func (d *marketplaceDomain) AutonomousDelOffer(
	ctx context.Context, req *model.AutonomousDelOfferRequest,
) (*model.EmptyResponse, error) {
	marketplace := xcontext.Callee(ctx)
	if xcontext.Caller(ctx) != marketplace {
		return nil, errorx.New(errorx.PermissionDenied, "You are not the SC")
	}

	id, err := parseTokenID(req.TokenID)
	if err != nil {
		return nil, err
	}

	offer, err := d.getOffer(ctx, req.Collection, id)
	if err != nil {
		return nil, err
	}

	if req.ExpirationTime != 0 && req.ExpirationTime != offer.ExpirationTime {
		return nil, errorx.New(errorx.FailedPrecondition, "Sell offer was relisted")
	}

	if xcontext.Timestamp(ctx) < offer.ExpirationTime {
		return nil, errorx.New(errorx.FailedPrecondition, "Sell offer has not expired yet")
	}

	if err := d.settlement.Release(ctx, d.nftCaller, marketplace, offer); err != nil {
		return nil, err
	}

	if err := d.sellOfferRepo.Delete(ctx, req.Collection, id); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete sell offer: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.env.GenerateEvent(ctx, model.ExpireOfferEvent, model.ConvertSellOffer(offer)); err != nil {
		return nil, hostError(ctx, err, "Cannot generate expire offer event")
	}

	return &model.EmptyResponse{}, nil
}

func (d *marketplaceDomain) AdminAddCollection(
	ctx context.Context, req *model.AdminAddCollectionRequest,
) (*model.EmptyResponse, error) {
	if err := d.onlyOwner(ctx); err != nil {
		return nil, err
	}

	if req.Address == "" {
		return nil, errorx.New(errorx.BadRequest, "Empty collection address")
	}

	collection := &entity.CollectionDetail{
		Name:               req.Name,
		Description:        req.Description,
		Address:            req.Address,
		ExternalWebsite:    req.ExternalWebsite,
		BannerImage:        req.BannerImage,
		BackgroundImage:    req.BackgroundImage,
		LogoImage:          req.LogoImage,
		BaseURI:            req.BaseURI,
		MintPrice:          req.MintPrice,
		ExtraMetadata:      req.ExtraMetadata,
		MarketplaceMinting: req.MarketplaceMinting,
	}
	if err := d.collectionRepo.Upsert(ctx, collection); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot add collection: %v", err)
		return nil, errorx.Unknown
	}

	return &model.EmptyResponse{}, nil
}

func (d *marketplaceDomain) AdminDellCollection(
	ctx context.Context, req *model.AdminDellCollectionRequest,
) (*model.EmptyResponse, error) {
	if err := d.onlyOwner(ctx); err != nil {
		return nil, err
	}

	if err := d.collectionRepo.Delete(ctx, req.Address); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete collection: %v", err)
		return nil, errorx.Unknown
	}

	return &model.EmptyResponse{}, nil
}

func (d *marketplaceDomain) AdminChangeMarketplaceOwner(
	ctx context.Context, req *model.AdminChangeMarketplaceOwnerRequest,
) (*model.EmptyResponse, error) {
	if err := d.onlyOwner(ctx); err != nil {
		return nil, err
	}

	if req.Owner == "" {
		return nil, errorx.New(errorx.BadRequest, "Empty owner")
	}

	if err := d.settingRepo.SetOwner(ctx, req.Owner); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot change marketplace owner: %v", err)
		return nil, errorx.Unknown
	}

	return &model.EmptyResponse{}, nil
}

func (d *marketplaceDomain) AdminSendCoinsFrom(
	ctx context.Context, req *model.AdminSendCoinsFromRequest,
) (*model.EmptyResponse, error) {
	if err := d.onlyOwner(ctx); err != nil {
		return nil, err
	}

	if req.Address == "" {
		return nil, errorx.New(errorx.BadRequest, "Empty address")
	}

	if err := d.env.TransferCoins(ctx, req.Address, req.Amount); err != nil {
		return nil, hostError(ctx, err, "Cannot send coins")
	}

	return &model.EmptyResponse{}, nil
}

func (d *marketplaceDomain) SendAllCoinsToAddress(
	ctx context.Context, req *model.SendAllCoinsToAddressRequest,
) (*model.SendAllCoinsToAddressResponse, error) {
	if err := d.onlyOwner(ctx); err != nil {
		return nil, err
	}

	if req.Address == "" {
		return nil, errorx.New(errorx.BadRequest, "Empty address")
	}

	balance, err := d.env.Balance(ctx, xcontext.Callee(ctx))
	if err != nil {
		return nil, hostError(ctx, err, "Cannot get marketplace balance")
	}

	if balance > 0 {
		if err := d.env.TransferCoins(ctx, req.Address, balance); err != nil {
			return nil, hostError(ctx, err, "Cannot send coins")
		}
	}

	return &model.SendAllCoinsToAddressResponse{Amount: balance}, nil
}

func (d *marketplaceDomain) AdminDeleteOffer(
	ctx context.Context, req *model.OfferRequest,
) (*model.EmptyResponse, error) {
	if err := d.onlyOwner(ctx); err != nil {
		return nil, err
	}

	id, err := parseTokenID(req.TokenID)
	if err != nil {
		return nil, err
	}

	offer, err := d.getOffer(ctx, req.Collection, id)
	if err != nil {
		return nil, err
	}

	if err := d.settlement.Release(ctx, d.nftCaller, xcontext.Callee(ctx), offer); err != nil {
		return nil, err
	}

	if err := d.sellOfferRepo.Delete(ctx, req.Collection, id); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete sell offer: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.env.GenerateEvent(ctx, model.DeleteOfferEvent, model.ConvertSellOffer(offer)); err != nil {
		return nil, hostError(ctx, err, "Cannot generate delete offer event")
	}

	return &model.EmptyResponse{}, nil
}

func (d *marketplaceDomain) ChangeMarketplaceFee(
	ctx context.Context, req *model.ChangeMarketplaceFeeRequest,
) (*model.EmptyResponse, error) {
	if err := d.onlyOwner(ctx); err != nil {
		return nil, err
	}

	if err := d.feePolicy.ValidateFee(req.Fee); err != nil {
		return nil, err
	}

	if err := d.settingRepo.SetFee(ctx, req.Fee); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot change marketplace fee: %v", err)
		return nil, errorx.Unknown
	}

	return &model.EmptyResponse{}, nil
}

func (d *marketplaceDomain) GetSellOffer(
	ctx context.Context, req *model.OfferRequest,
) (*model.GetSellOfferResponse, error) {
	id, err := parseTokenID(req.TokenID)
	if err != nil {
		return nil, err
	}

	offer, err := d.getOffer(ctx, req.Collection, id)
	if err != nil {
		return nil, err
	}

	return &model.GetSellOfferResponse{Offer: model.ConvertSellOffer(offer)}, nil
}

func (d *marketplaceDomain) GetCollection(
	ctx context.Context, req *model.GetCollectionRequest,
) (*model.GetCollectionResponse, error) {
	collection, err := d.collectionRepo.Get(ctx, req.Address)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, errorx.New(errorx.NotFound, "Collection not found in marketplace")
		}

		if errorx.Is(err, errorx.Deserialization) {
			xcontext.Logger(ctx).Errorf("Cannot decode collection: %v", err)
			return nil, err
		}

		xcontext.Logger(ctx).Errorf("Cannot get collection: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetCollectionResponse{Collection: model.ConvertCollection(collection)}, nil
}

func (d *marketplaceDomain) GetMarketplaceOwner(
	ctx context.Context, req *model.EmptyRequest,
) (*model.StringResponse, error) {
	owner, err := d.settingRepo.GetOwner(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get marketplace owner: %v", err)
		return nil, errorx.Unknown
	}

	return &model.StringResponse{Value: owner}, nil
}

func (d *marketplaceDomain) GetMarketplaceFee(
	ctx context.Context, req *model.EmptyRequest,
) (*model.Uint64Response, error) {
	fee, err := d.getFee(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Uint64Response{Value: fee}, nil
}

func (d *marketplaceDomain) GetBuyHistory(
	ctx context.Context, req *model.GetBuyHistoryRequest,
) (*model.GetBuyHistoryResponse, error) {
	id, err := parseTokenID(req.TokenID)
	if err != nil {
		return nil, err
	}

	history, err := d.buyHistoryRepo.Get(ctx, req.Buyer, req.Collection, id)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, errorx.New(errorx.NotFound, "Buy history not found")
		}

		if errorx.Is(err, errorx.Deserialization) {
			xcontext.Logger(ctx).Errorf("Cannot decode buy history: %v", err)
			return nil, err
		}

		xcontext.Logger(ctx).Errorf("Cannot get buy history: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetBuyHistoryResponse{History: model.ConvertBuyHistory(history)}, nil
}

func (d *marketplaceDomain) scheduleExpiry(ctx context.Context, marketplace string, offer *entity.SellOffer) error {
	chain := xcontext.Configs(ctx).Chain
	start, end, err := common.ExpiryWindow(chain, offer.ExpirationTime)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot schedule expiry of sell offer: %v", err)
		return nil
	}

	params, err := json.Marshal(model.AutonomousDelOfferRequest{
		Collection:     offer.CollectionAddress,
		TokenID:        offer.TokenID,
		ExpirationTime: offer.ExpirationTime,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot encode expiry params: %v", err)
		return errorx.Unknown
	}

	// The slot of the expiration time may start before it.
	startTime := common.SlotStart(chain, start)
	if startTime < offer.ExpirationTime {
		startTime = offer.ExpirationTime
	}

	err = d.env.SendMessage(ctx, &model.ScheduledMessage{
		ID:        uuid.NewString(),
		Target:    marketplace,
		Function:  AutonomousDelOfferFunction,
		Params:    params,
		StartSlot: start,
		EndSlot:   end,
		StartTime: startTime,
		EndTime:   common.SlotEnd(chain, end),
	})
	if err != nil {
		return hostError(ctx, err, "Cannot send expiry message")
	}

	return nil
}

func (d *marketplaceDomain) onlyOwner(ctx context.Context) error {
	owner, err := d.settingRepo.GetOwner(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get marketplace owner: %v", err)
		return errorx.Unknown
	}

	if xcontext.Caller(ctx) != owner {
		xcontext.Logger(ctx).Debugf("Permission denied: %s is not the marketplace owner", xcontext.Caller(ctx))
		return errorx.New(errorx.PermissionDenied, "The caller is not the owner of the contract")
	}

	return nil
}

func (d *marketplaceDomain) checkCollection(ctx context.Context, collection string) error {
	exists, err := d.collectionRepo.Exists(ctx, collection)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check collection: %v", err)
		return errorx.Unknown
	}

	if !exists {
		return errorx.New(errorx.NotFound, "Collection not found in marketplace")
	}

	return nil
}

func (d *marketplaceDomain) checkHolder(ctx context.Context, marketplace string, offer *entity.SellOffer) error {
	owner, err := d.nftCaller.OwnerOf(ctx, offer.CollectionAddress, offer.TokenID)
	if err != nil {
		return err
	}

	if owner != d.settlement.Holder(marketplace, offer) {
		return errorx.New(errorx.FailedPrecondition, "Sell offer is stale, token is owned by %s", owner)
	}

	return nil
}

func (d *marketplaceDomain) getOffer(
	ctx context.Context, collection string, id *uint256.Int,
) (*entity.SellOffer, error) {
	offer, err := d.sellOfferRepo.Get(ctx, collection, id)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, errorx.New(errorx.NotFound, "Sell offer doesnt exist")
		}

		if errorx.Is(err, errorx.Deserialization) {
			xcontext.Logger(ctx).Errorf("Cannot decode sell offer: %v", err)
			return nil, err
		}

		xcontext.Logger(ctx).Errorf("Cannot get sell offer: %v", err)
		return nil, errorx.Unknown
	}

	return offer, nil
}

func (d *marketplaceDomain) getFee(ctx context.Context) (uint64, error) {
	fee, err := d.settingRepo.GetFee(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get marketplace fee: %v", err)
		return 0, errorx.Unknown
	}

	return fee, nil
}
