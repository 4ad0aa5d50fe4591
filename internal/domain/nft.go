package domain

import (
	"context"
	"errors"

	"github.com/holiman/uint256"
	"github.com/questx-lab/marketplace/internal/client"
	"github.com/questx-lab/marketplace/internal/common"
	"github.com/questx-lab/marketplace/internal/model"
	"github.com/questx-lab/marketplace/internal/repository"
	"github.com/questx-lab/marketplace/pkg/errorx"
	"github.com/questx-lab/marketplace/pkg/kvstore"
	"github.com/questx-lab/marketplace/pkg/xcontext"
)

type NFTDomain interface {
	Constructor(context.Context, *model.NFTConstructorRequest) (*model.EmptyResponse, error)

	Name(context.Context, *model.EmptyRequest) (*model.StringResponse, error)
	Symbol(context.Context, *model.EmptyRequest) (*model.StringResponse, error)
	TotalSupply(context.Context, *model.EmptyRequest) (*model.StringResponse, error)
	CurrentSupply(context.Context, *model.EmptyRequest) (*model.StringResponse, error)
	BaseURI(context.Context, *model.EmptyRequest) (*model.StringResponse, error)
	TokenURI(context.Context, *model.TokenIDRequest) (*model.StringResponse, error)
	MintPrice(context.Context, *model.EmptyRequest) (*model.Uint64Response, error)
	StartTime(context.Context, *model.EmptyRequest) (*model.Uint64Response, error)
	Paused(context.Context, *model.EmptyRequest) (*model.BoolResponse, error)
	GetInfo(context.Context, *model.EmptyRequest) (*model.GetNFTInfoResponse, error)

	BalanceOf(context.Context, *model.AddressRequest) (*model.Uint64Response, error)
	OwnerOf(context.Context, *model.TokenIDRequest) (*model.StringResponse, error)
	GetApproved(context.Context, *model.TokenIDRequest) (*model.StringResponse, error)
	IsApprovedForAll(context.Context, *model.IsApprovedForAllRequest) (*model.BoolResponse, error)

	Mint(context.Context, *model.MintRequest) (*model.MintResponse, error)
	Approve(context.Context, *model.ApproveRequest) (*model.EmptyResponse, error)
	SetApprovalForAll(context.Context, *model.SetApprovalForAllRequest) (*model.EmptyResponse, error)
	TransferFrom(context.Context, *model.TransferFromRequest) (*model.EmptyResponse, error)
	SafeTransferFrom(context.Context, *model.TransferFromRequest) (*model.EmptyResponse, error)
	Burn(context.Context, *model.TokenIDRequest) (*model.EmptyResponse, error)

	SetBaseURI(context.Context, *model.SetURIRequest) (*model.EmptyResponse, error)
	SetTokenURI(context.Context, *model.SetURIRequest) (*model.EmptyResponse, error)
	ChangePauseStatus(context.Context, *model.ChangePauseStatusRequest) (*model.EmptyResponse, error)
	ChangeMintPrice(context.Context, *model.ChangeMintPriceRequest) (*model.EmptyResponse, error)
	WithdrawCoins(context.Context, *model.WithdrawCoinsRequest) (*model.EmptyResponse, error)
}

type nftDomain struct {
	env         client.Environment
	settingRepo repository.NFTSettingRepository
	tokenRepo   repository.TokenRepository
}

func NewNFTDomain(
	env client.Environment,
	settingRepo repository.NFTSettingRepository,
	tokenRepo repository.TokenRepository,
) *nftDomain {
	return &nftDomain{
		env:         env,
		settingRepo: settingRepo,
		tokenRepo:   tokenRepo,
	}
}

func (d *nftDomain) Constructor(
	ctx context.Context, req *model.NFTConstructorRequest,
) (*model.EmptyResponse, error) {
	if err := onlyDeployment(ctx); err != nil {
		return nil, err
	}

	totalSupply, err := common.ParseTokenID(req.TotalSupply)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid total supply")
	}

	err = d.settingRepo.Init(ctx, &repository.NFTSetting{
		Name:        req.Name,
		Symbol:      req.Symbol,
		Owner:       xcontext.Caller(ctx),
		BaseURI:     req.BaseURI,
		TokenURI:    req.TokenURI,
		TotalSupply: totalSupply,
		MintPrice:   req.MintPrice,
		StartTime:   req.StartTime,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot init collection settings: %v", err)
		return nil, errorx.Unknown
	}

	return &model.EmptyResponse{}, nil
}

func (d *nftDomain) Name(ctx context.Context, req *model.EmptyRequest) (*model.StringResponse, error) {
	setting, err := d.getSetting(ctx)
	if err != nil {
		return nil, err
	}

	return &model.StringResponse{Value: setting.Name}, nil
}

func (d *nftDomain) Symbol(ctx context.Context, req *model.EmptyRequest) (*model.StringResponse, error) {
	setting, err := d.getSetting(ctx)
	if err != nil {
		return nil, err
	}

	return &model.StringResponse{Value: setting.Symbol}, nil
}

func (d *nftDomain) TotalSupply(ctx context.Context, req *model.EmptyRequest) (*model.StringResponse, error) {
	setting, err := d.getSetting(ctx)
	if err != nil {
		return nil, err
	}

	return &model.StringResponse{Value: setting.TotalSupply.Dec()}, nil
}

func (d *nftDomain) CurrentSupply(ctx context.Context, req *model.EmptyRequest) (*model.StringResponse, error) {
	counter, err := d.settingRepo.GetCounter(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get mint counter: %v", err)
		return nil, errorx.Unknown
	}

	return &model.StringResponse{Value: counter.Dec()}, nil
}

func (d *nftDomain) BaseURI(ctx context.Context, req *model.EmptyRequest) (*model.StringResponse, error) {
	setting, err := d.getSetting(ctx)
	if err != nil {
		return nil, err
	}

	return &model.StringResponse{Value: setting.BaseURI}, nil
}

// TokenURI doesn't check that the token exists.
func (d *nftDomain) TokenURI(ctx context.Context, req *model.TokenIDRequest) (*model.StringResponse, error) {
	id, err := parseTokenID(req.TokenID)
	if err != nil {
		return nil, err
	}

	setting, err := d.getSetting(ctx)
	if err != nil {
		return nil, err
	}

	return &model.StringResponse{Value: setting.TokenURI + id.Dec()}, nil
}

func (d *nftDomain) MintPrice(ctx context.Context, req *model.EmptyRequest) (*model.Uint64Response, error) {
	setting, err := d.getSetting(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Uint64Response{Value: setting.MintPrice}, nil
}

func (d *nftDomain) StartTime(ctx context.Context, req *model.EmptyRequest) (*model.Uint64Response, error) {
	setting, err := d.getSetting(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Uint64Response{Value: setting.StartTime}, nil
}

func (d *nftDomain) Paused(ctx context.Context, req *model.EmptyRequest) (*model.BoolResponse, error) {
	setting, err := d.getSetting(ctx)
	if err != nil {
		return nil, err
	}

	return &model.BoolResponse{Value: setting.Paused}, nil
}

func (d *nftDomain) GetInfo(ctx context.Context, req *model.EmptyRequest) (*model.GetNFTInfoResponse, error) {
	setting, err := d.getSetting(ctx)
	if err != nil {
		return nil, err
	}

	counter, err := d.settingRepo.GetCounter(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get mint counter: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetNFTInfoResponse{
		Name:          setting.Name,
		Symbol:        setting.Symbol,
		Owner:         setting.Owner,
		TotalSupply:   setting.TotalSupply.Dec(),
		CurrentSupply: counter.Dec(),
		BaseURI:       setting.BaseURI,
		TokenURI:      setting.TokenURI,
		MintPrice:     setting.MintPrice,
		StartTime:     setting.StartTime,
		Paused:        setting.Paused,
	}, nil
}

func (d *nftDomain) BalanceOf(ctx context.Context, req *model.AddressRequest) (*model.Uint64Response, error) {
	balance, err := d.tokenRepo.GetBalance(ctx, req.Address)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get balance: %v", err)
		return nil, errorx.Unknown
	}

	return &model.Uint64Response{Value: balance}, nil
}

func (d *nftDomain) OwnerOf(ctx context.Context, req *model.TokenIDRequest) (*model.StringResponse, error) {
	id, err := parseTokenID(req.TokenID)
	if err != nil {
		return nil, err
	}

	owner, err := d.getOwner(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.StringResponse{Value: owner}, nil
}

// GetApproved returns an empty address if nobody is approved.
func (d *nftDomain) GetApproved(ctx context.Context, req *model.TokenIDRequest) (*model.StringResponse, error) {
	id, err := parseTokenID(req.TokenID)
	if err != nil {
		return nil, err
	}

	approved, err := d.tokenRepo.GetApproved(ctx, id)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get approved address: %v", err)
		return nil, errorx.Unknown
	}

	return &model.StringResponse{Value: approved}, nil
}

func (d *nftDomain) IsApprovedForAll(
	ctx context.Context, req *model.IsApprovedForAllRequest,
) (*model.BoolResponse, error) {
	approved, err := d.tokenRepo.IsApprovedForAll(ctx, req.Owner, req.Operator)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get operator approval: %v", err)
		return nil, errorx.Unknown
	}

	return &model.BoolResponse{Value: approved}, nil
}

func (d *nftDomain) Mint(ctx context.Context, req *model.MintRequest) (*model.MintResponse, error) {
	if req.Recipient == "" {
		return nil, errorx.New(errorx.BadRequest, "Empty recipient")
	}

	setting, err := d.getSetting(ctx)
	if err != nil {
		return nil, err
	}

	// Pause wins over every other condition.
	if setting.Paused {
		return nil, errorx.New(errorx.FailedPrecondition, "Mint process paused")
	}

	counter, err := d.settingRepo.GetCounter(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get mint counter: %v", err)
		return nil, errorx.Unknown
	}

	if !counter.Lt(setting.TotalSupply) {
		return nil, errorx.New(errorx.FailedPrecondition, "Max supply reached")
	}

	if xcontext.Timestamp(ctx) < setting.StartTime {
		return nil, errorx.New(errorx.FailedPrecondition, "Mint has not started yet")
	}

	if xcontext.TransferredCoins(ctx) < setting.MintPrice {
		return nil, errorx.New(errorx.InsufficientPayment, "Not enough sent coins to mint this NFT")
	}

	id := new(uint256.Int).AddUint64(counter, 1)
	if err := d.settingRepo.SetCounter(ctx, id); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set mint counter: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.tokenRepo.SetOwner(ctx, id, req.Recipient); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set token owner: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.addBalance(ctx, req.Recipient, 1); err != nil {
		return nil, err
	}

	if err := d.env.GenerateEvent(ctx, model.MintEvent, map[string]string{
		"to":       req.Recipient,
		"token_id": id.Dec(),
	}); err != nil {
		return nil, hostError(ctx, err, "Cannot generate mint event")
	}

	return &model.MintResponse{TokenID: id.Dec()}, nil
}

func (d *nftDomain) Approve(ctx context.Context, req *model.ApproveRequest) (*model.EmptyResponse, error) {
	id, err := parseTokenID(req.TokenID)
	if err != nil {
		return nil, err
	}

	owner, err := d.getOwner(ctx, id)
	if err != nil {
		return nil, err
	}

	caller := xcontext.Caller(ctx)
	if caller != owner {
		isOperator, err := d.tokenRepo.IsApprovedForAll(ctx, owner, caller)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get operator approval: %v", err)
			return nil, errorx.Unknown
		}

		if !isOperator {
			return nil, errorx.New(errorx.PermissionDenied, "Caller is neither owner nor operator")
		}
	}

	if req.To == "" {
		err = d.tokenRepo.DeleteApproved(ctx, id)
	} else {
		err = d.tokenRepo.SetApproved(ctx, id, req.To)
	}
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set approved address: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.env.GenerateEvent(ctx, model.ApprovalEvent, map[string]string{
		"owner":    owner,
		"approved": req.To,
		"token_id": id.Dec(),
	}); err != nil {
		return nil, hostError(ctx, err, "Cannot generate approval event")
	}

	return &model.EmptyResponse{}, nil
}

func (d *nftDomain) SetApprovalForAll(
	ctx context.Context, req *model.SetApprovalForAllRequest,
) (*model.EmptyResponse, error) {
	if req.Operator == "" {
		return nil, errorx.New(errorx.BadRequest, "Empty operator")
	}

	caller := xcontext.Caller(ctx)
	if req.Operator == caller {
		return nil, errorx.New(errorx.BadRequest, "Cannot approve yourself as operator")
	}

	if err := d.tokenRepo.SetApprovalForAll(ctx, caller, req.Operator, req.Approved); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set operator approval: %v", err)
		return nil, errorx.Unknown
	}

	return &model.EmptyResponse{}, nil
}

func (d *nftDomain) TransferFrom(ctx context.Context, req *model.TransferFromRequest) (*model.EmptyResponse, error) {
	if err := d.transfer(ctx, req); err != nil {
		return nil, err
	}

	return &model.EmptyResponse{}, nil
}

// SafeTransferFrom has the same semantics as TransferFrom, contracts don't
// declare whether they accept tokens on this host.
func (d *nftDomain) SafeTransferFrom(
	ctx context.Context, req *model.TransferFromRequest,
) (*model.EmptyResponse, error) {
	if err := d.transfer(ctx, req); err != nil {
		return nil, err
	}

	return &model.EmptyResponse{}, nil
}

func (d *nftDomain) Burn(ctx context.Context, req *model.TokenIDRequest) (*model.EmptyResponse, error) {
	id, err := parseTokenID(req.TokenID)
	if err != nil {
		return nil, err
	}

	owner, err := d.getOwner(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := d.checkSpender(ctx, id, owner); err != nil {
		return nil, err
	}

	if err := d.tokenRepo.DeleteApproved(ctx, id); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot clear approval: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.tokenRepo.DeleteOwner(ctx, id); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete token owner: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.subBalance(ctx, owner, 1); err != nil {
		return nil, err
	}

	if err := d.env.GenerateEvent(ctx, model.BurnEvent, map[string]string{
		"owner":    owner,
		"token_id": id.Dec(),
	}); err != nil {
		return nil, hostError(ctx, err, "Cannot generate burn event")
	}

	return &model.EmptyResponse{}, nil
}

func (d *nftDomain) SetBaseURI(ctx context.Context, req *model.SetURIRequest) (*model.EmptyResponse, error) {
	if err := d.onlyOwner(ctx); err != nil {
		return nil, err
	}

	if err := d.settingRepo.SetBaseURI(ctx, req.URI); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set base uri: %v", err)
		return nil, errorx.Unknown
	}

	return &model.EmptyResponse{}, nil
}

func (d *nftDomain) SetTokenURI(ctx context.Context, req *model.SetURIRequest) (*model.EmptyResponse, error) {
	if err := d.onlyOwner(ctx); err != nil {
		return nil, err
	}

	if err := d.settingRepo.SetTokenURI(ctx, req.URI); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set token uri: %v", err)
		return nil, errorx.Unknown
	}

	return &model.EmptyResponse{}, nil
}

func (d *nftDomain) ChangePauseStatus(
	ctx context.Context, req *model.ChangePauseStatusRequest,
) (*model.EmptyResponse, error) {
	if err := d.onlyOwner(ctx); err != nil {
		return nil, err
	}

	if err := d.settingRepo.SetPaused(ctx, req.Paused); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set pause status: %v", err)
		return nil, errorx.Unknown
	}

	return &model.EmptyResponse{}, nil
}

func (d *nftDomain) ChangeMintPrice(
	ctx context.Context, req *model.ChangeMintPriceRequest,
) (*model.EmptyResponse, error) {
	if err := d.onlyOwner(ctx); err != nil {
		return nil, err
	}

	if err := d.settingRepo.SetMintPrice(ctx, req.Price); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set mint price: %v", err)
		return nil, errorx.Unknown
	}

	return &model.EmptyResponse{}, nil
}

func (d *nftDomain) WithdrawCoins(ctx context.Context, req *model.WithdrawCoinsRequest) (*model.EmptyResponse, error) {
	if err := d.onlyOwner(ctx); err != nil {
		return nil, err
	}

	if req.Address == "" {
		return nil, errorx.New(errorx.BadRequest, "Empty address")
	}

	if err := d.env.TransferCoins(ctx, req.Address, req.Amount); err != nil {
		return nil, hostError(ctx, err, "Cannot withdraw coins")
	}

	return &model.EmptyResponse{}, nil
}

func (d *nftDomain) transfer(ctx context.Context, req *model.TransferFromRequest) error {
	id, err := parseTokenID(req.TokenID)
	if err != nil {
		return err
	}

	if req.To == "" {
		return errorx.New(errorx.BadRequest, "Empty recipient")
	}

	owner, err := d.getOwner(ctx, id)
	if err != nil {
		return err
	}

	if owner != req.From {
		return errorx.New(errorx.FailedPrecondition, "Token is not owned by %s", req.From)
	}

	if err := d.checkSpender(ctx, id, owner); err != nil {
		return err
	}

	if err := d.tokenRepo.DeleteApproved(ctx, id); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot clear approval: %v", err)
		return errorx.Unknown
	}

	if err := d.subBalance(ctx, req.From, 1); err != nil {
		return err
	}

	if err := d.addBalance(ctx, req.To, 1); err != nil {
		return err
	}

	if err := d.tokenRepo.SetOwner(ctx, id, req.To); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set token owner: %v", err)
		return errorx.Unknown
	}

	if err := d.env.GenerateEvent(ctx, model.TransferEvent, map[string]string{
		"from":     req.From,
		"to":       req.To,
		"token_id": id.Dec(),
	}); err != nil {
		return hostError(ctx, err, "Cannot generate transfer event")
	}

	return nil
}

// checkSpender accepts the owner, the approved address of the token and every
// operator of the owner.
func (d *nftDomain) checkSpender(ctx context.Context, id *uint256.Int, owner string) error {
	caller := xcontext.Caller(ctx)
	if caller == owner {
		return nil
	}

	approved, err := d.tokenRepo.GetApproved(ctx, id)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get approved address: %v", err)
		return errorx.Unknown
	}

	if approved == caller {
		return nil
	}

	isOperator, err := d.tokenRepo.IsApprovedForAll(ctx, owner, caller)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get operator approval: %v", err)
		return errorx.Unknown
	}

	if !isOperator {
		return errorx.New(errorx.PermissionDenied, "Caller is not owner nor approved")
	}

	return nil
}

func (d *nftDomain) onlyOwner(ctx context.Context) error {
	owner, err := d.settingRepo.GetOwner(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get collection owner: %v", err)
		return errorx.Unknown
	}

	if xcontext.Caller(ctx) != owner {
		return errorx.New(errorx.PermissionDenied, "Only collection owner can access")
	}

	return nil
}

func (d *nftDomain) getSetting(ctx context.Context) (*repository.NFTSetting, error) {
	setting, err := d.settingRepo.Get(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get collection settings: %v", err)
		return nil, errorx.Unknown
	}

	return setting, nil
}

func (d *nftDomain) getOwner(ctx context.Context, id *uint256.Int) (string, error) {
	owner, err := d.tokenRepo.GetOwner(ctx, id)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return "", errorx.New(errorx.NotFound, "Token %s doesn't exist", id.Dec())
		}

		xcontext.Logger(ctx).Errorf("Cannot get token owner: %v", err)
		return "", errorx.Unknown
	}

	return owner, nil
}

func (d *nftDomain) addBalance(ctx context.Context, address string, n uint64) error {
	balance, err := d.tokenRepo.GetBalance(ctx, address)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get balance: %v", err)
		return errorx.Unknown
	}

	if err := d.tokenRepo.SetBalance(ctx, address, balance+n); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set balance: %v", err)
		return errorx.Unknown
	}

	return nil
}

func (d *nftDomain) subBalance(ctx context.Context, address string, n uint64) error {
	balance, err := d.tokenRepo.GetBalance(ctx, address)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get balance: %v", err)
		return errorx.Unknown
	}

	if balance < n {
		xcontext.Logger(ctx).Errorf("Balance of %s is lower than its tokens", address)
		return errorx.Unknown
	}

	if err := d.tokenRepo.SetBalance(ctx, address, balance-n); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set balance: %v", err)
		return errorx.Unknown
	}

	return nil
}
