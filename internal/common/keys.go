package common

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// Marketplace storage.
const (
	SellOfferPrefix  = "sellOffer_"
	BuyHistoryPrefix = "buyOffer_"
	CollectionPrefix = "collection_"
)

var (
	MarketplaceOwnerKey = []byte("marketplaceOwner")
	MarketplaceFeeKey   = []byte("marketplaceFee")
)

// NFT storage.
const (
	TokenOwnerPrefix       = "ownerOf_"
	TokenApprovalPrefix    = "approved_"
	BalancePrefix          = "balanceOf_"
	OperatorApprovalPrefix = "operatorApproval_"
)

var (
	NFTNameKey        = []byte("NAME")
	NFTSymbolKey      = []byte("SYMBOL")
	NFTOwnerKey       = []byte("OWNABLE")
	NFTBaseURIKey     = []byte("BASE_URI")
	NFTTokenURIKey    = []byte("TOKEN_URI")
	NFTTotalSupplyKey = []byte("TOTAL_SUPPLY")
	NFTCounterKey     = []byte("COUNTER")
	NFTMintPriceKey   = []byte("PRICE_PER_TOKEN")
	NFTStartTimeKey   = []byte("START_TIME")
	NFTMintPausedKey  = []byte("MINT_PAUSED")
)

// compositeKey is prefix followed by the keccak256 of the length-prefixed
// parts. Two different tuples never produce the same key.
func compositeKey(prefix string, parts ...string) []byte {
	var encoded []byte
	for _, p := range parts {
		encoded = binary.AppendUvarint(encoded, uint64(len(p)))
		encoded = append(encoded, p...)
	}

	key := make([]byte, 0, len(prefix)+32)
	key = append(key, prefix...)
	return append(key, crypto.Keccak256(encoded)...)
}

func SellOfferKey(collection string, tokenID *uint256.Int) []byte {
	return compositeKey(SellOfferPrefix, collection, tokenID.Dec())
}

func BuyHistoryKey(buyer, collection string, tokenID *uint256.Int) []byte {
	return compositeKey(BuyHistoryPrefix, buyer, collection, tokenID.Dec())
}

func CollectionKey(collection string) []byte {
	return compositeKey(CollectionPrefix, collection)
}

func TokenOwnerKey(tokenID *uint256.Int) []byte {
	return compositeKey(TokenOwnerPrefix, tokenID.Dec())
}

func TokenApprovalKey(tokenID *uint256.Int) []byte {
	return compositeKey(TokenApprovalPrefix, tokenID.Dec())
}

func BalanceKey(address string) []byte {
	return compositeKey(BalancePrefix, address)
}

func OperatorApprovalKey(owner, operator string) []byte {
	return compositeKey(OperatorApprovalPrefix, owner, operator)
}
