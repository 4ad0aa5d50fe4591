package deliveries

import (
	"github.com/questx-lab/marketplace/internal/domain"
	"github.com/questx-lab/marketplace/pkg/router"
)

func NewNFTRouter(d domain.NFTDomain) *router.Router {
	r := router.New("nft")
	r.Use(logCall)
	r.Use(countCall(r.Name()))

	router.Register(r, router.Constructor, d.Constructor)

	router.Register(r, "name", d.Name)
	router.Register(r, "symbol", d.Symbol)
	router.Register(r, "totalSupply", d.TotalSupply)
	router.Register(r, "currentSupply", d.CurrentSupply)
	router.Register(r, "baseURI", d.BaseURI)
	router.Register(r, "tokenURI", d.TokenURI)
	router.Register(r, "mintPrice", d.MintPrice)
	router.Register(r, "startTime", d.StartTime)
	router.Register(r, "paused", d.Paused)
	router.Register(r, "getInfo", d.GetInfo)
	router.Register(r, "balanceOf", d.BalanceOf)
	router.Register(r, "ownerOf", d.OwnerOf)
	router.Register(r, "getApproved", d.GetApproved)
	router.Register(r, "isApprovedForAll", d.IsApprovedForAll)

	router.Register(r, "mint", d.Mint)
	router.Register(r, "approve", d.Approve)
	router.Register(r, "setApprovalForAll", d.SetApprovalForAll)
	router.Register(r, "transferFrom", d.TransferFrom)
	router.Register(r, "safeTransferFrom", d.SafeTransferFrom)
	router.Register(r, "burn", d.Burn)

	router.Register(r, "setBaseURI", d.SetBaseURI)
	router.Register(r, "setTokenURI", d.SetTokenURI)
	router.Register(r, "changePauseStatus", d.ChangePauseStatus)
	router.Register(r, "changeMintPrice", d.ChangeMintPrice)
	router.Register(r, "withdrawCoins", d.WithdrawCoins)

	return r
}
