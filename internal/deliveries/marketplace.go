package deliveries

import (
	"github.com/questx-lab/marketplace/internal/domain"
	"github.com/questx-lab/marketplace/pkg/router"
)

func NewMarketplaceRouter(d domain.MarketplaceDomain) *router.Router {
	r := router.New("marketplace")
	r.Use(logCall)
	r.Use(countCall(r.Name()))

	router.Register(r, router.Constructor, d.Constructor)

	router.Register(r, "sellOffer", d.SellOffer)
	router.Register(r, "removeSellOffer", d.RemoveSellOffer)
	router.Register(r, "buyOffer", d.BuyOffer)
	router.Register(r, domain.AutonomousDelOfferFunction, d.AutonomousDelOffer)

	router.Register(r, "adminAddCollection", d.AdminAddCollection)
	router.Register(r, "adminDellCollection", d.AdminDellCollection)
	router.Register(r, "adminChangeMarketplaceOwner", d.AdminChangeMarketplaceOwner)
	router.Register(r, "adminSendCoinsFrom", d.AdminSendCoinsFrom)
	router.Register(r, "sendAllCoinsToAddress", d.SendAllCoinsToAddress)
	router.Register(r, "adminDeleteOffer", d.AdminDeleteOffer)
	router.Register(r, "changeMarketplaceFee", d.ChangeMarketplaceFee)

	router.Register(r, "getSellOffer", d.GetSellOffer)
	router.Register(r, "getCollection", d.GetCollection)
	router.Register(r, "getMarketplaceOwner", d.GetMarketplaceOwner)
	router.Register(r, "getMarketplaceFee", d.GetMarketplaceFee)
	router.Register(r, "getBuyHistory", d.GetBuyHistory)

	return r
}
