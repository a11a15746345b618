package lending

import (
	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/domain"
)

// InitializePayload seeds the protocol state at startup. Applied once; a
// later startup with an existing config is a no-op.
type InitializePayload struct {
	NftCollections []NFTCollection `json:"nftCollections" validate:"dive"`
	Admin          domain.Address  `json:"admin" validate:"required"`
	Interest       uint64          `json:"interest"`
	Denom          string          `json:"denom" validate:"required"`
}

type LendPayload struct {
	Amount       uint64              `json:"amount" validate:"required,gt=0"`
	CollectionId domain.CollectionId `json:"collectionId" validate:"required"`
	Funds        domain.Coin         `json:"funds" validate:"required"`
}

type BorrowPayload struct {
	TokenId domain.TokenId `json:"tokenId" validate:"required"`
}

type RepayPayload struct {
	Funds domain.Coin `json:"funds" validate:"required"`
}

type UpdateFloorPricePayload struct {
	NewFloorPrice uint64 `json:"newFloorPrice"`
}

type UpdateAdminPayload struct {
	NewAdmin domain.Address `json:"newAdmin" validate:"required"`
}

type UpdateInterestPayload struct {
	Interest uint64 `json:"interest"`
}

// Usecase is the loan state machine plus its read-only projections. Each
// mutating operation validates every precondition before any value moves and
// commits all-or-nothing.
type Usecase interface {
	Initialize(c ctx.Ctx, payload InitializePayload) error

	Lend(c ctx.Ctx, sender domain.Address, payload LendPayload) (*Offer, error)
	CancelOffer(c ctx.Ctx, sender domain.Address, offerId domain.OfferId) (*Offer, error)
	Borrow(c ctx.Ctx, sender domain.Address, offerId domain.OfferId, payload BorrowPayload) (*Offer, error)
	Repay(c ctx.Ctx, sender domain.Address, offerId domain.OfferId, payload RepayPayload) (*Offer, error)

	RegisterCollection(c ctx.Ctx, sender domain.Address, collection NFTCollection) (*NFTCollection, error)
	UpdateFloorPrice(c ctx.Ctx, sender domain.Address, id domain.CollectionId, newFloorPrice uint64) (*NFTCollection, error)
	UpdateAdmin(c ctx.Ctx, sender domain.Address, newAdmin domain.Address) (*ContractConfig, error)
	UpdateInterest(c ctx.Ctx, sender domain.Address, interest uint64) (*ContractConfig, error)

	GetOffer(c ctx.Ctx, offerId domain.OfferId) (*Offer, error)
	ListOffers(c ctx.Ctx, opts ...FindOffersOptions) (*OfferListResult, error)
	GetCollection(c ctx.Ctx, id domain.CollectionId) (*NFTCollection, error)
	GetConfig(c ctx.Ctx) (*ContractConfig, error)
}
