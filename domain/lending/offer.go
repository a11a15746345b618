package lending

import (
	"time"

	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/domain"
)

// NoBorrower is the borrower value of an offer nobody accepted yet
const NoBorrower = domain.Address("none")

type OfferState string

const (
	OfferStateOpen      OfferState = "open"
	OfferStateCancelled OfferState = "cancelled"
	OfferStateBorrowed  OfferState = "borrowed"
	OfferStateRepaid    OfferState = "repaid"
)

// Terminal reports whether no further transition may leave the state
func (s OfferState) Terminal() bool {
	return s == OfferStateCancelled || s == OfferStateRepaid
}

// Offer is a lender's posted loan. StartTime records the loan-clock start set
// at acceptance, not offer creation.
type Offer struct {
	OfferId      domain.OfferId      `json:"offerId" bson:"offerId"`
	Owner        domain.Address      `json:"owner" bson:"owner"`
	Amount       uint64              `json:"amount" bson:"amount"`
	StartTime    time.Time           `json:"startTime" bson:"startTime"`
	CollectionId domain.CollectionId `json:"collectionId" bson:"collectionId"`
	TokenId      domain.TokenId      `json:"tokenId" bson:"tokenId"`
	Accepted     bool                `json:"accepted" bson:"accepted"`
	Borrower     domain.Address      `json:"borrower" bson:"borrower"`
	State        OfferState          `json:"state" bson:"state"`
	CreatedAt    time.Time           `json:"createdAt" bson:"createdAt"`
	ClosedAt     *time.Time          `json:"closedAt,omitempty" bson:"closedAt,omitempty"`
}

// OfferPatch carries the mutable subset of an offer. Pointer fields are
// skipped when nil so a patch never clears what it does not mention.
type OfferPatch struct {
	StartTime *time.Time      `bson:"startTime,omitempty"`
	TokenId   *domain.TokenId `bson:"tokenId,omitempty"`
	Accepted  *bool           `bson:"accepted,omitempty"`
	Borrower  *domain.Address `bson:"borrower,omitempty"`
	State     *OfferState     `bson:"state,omitempty"`
	ClosedAt  *time.Time      `bson:"closedAt,omitempty"`
}

const (
	// DefaultListLimit bounds an offer listing when the caller gives no limit
	DefaultListLimit = 10
	// MaxListLimit bounds an offer listing no matter what the caller asks for
	MaxListLimit = 30
)

type findOffersOptions struct {
	StartAfter *domain.OfferId
	Limit      *int32
	Owner      *domain.Address
	Borrower   *domain.Address
	State      *OfferState
}

type FindOffersOptions func(*findOffersOptions) error

func GetFindOffersOptions(opts ...FindOffersOptions) (findOffersOptions, error) {
	res := findOffersOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

// WithStartAfter returns offers with ids strictly greater than id
func WithStartAfter(id domain.OfferId) FindOffersOptions {
	return func(options *findOffersOptions) error {
		options.StartAfter = &id
		return nil
	}
}

func WithLimit(limit int32) FindOffersOptions {
	return func(options *findOffersOptions) error {
		options.Limit = &limit
		return nil
	}
}

func WithOwner(owner domain.Address) FindOffersOptions {
	return func(options *findOffersOptions) error {
		lower := owner.ToLower()
		options.Owner = &lower
		return nil
	}
}

func WithBorrower(borrower domain.Address) FindOffersOptions {
	return func(options *findOffersOptions) error {
		lower := borrower.ToLower()
		options.Borrower = &lower
		return nil
	}
}

func WithState(state OfferState) FindOffersOptions {
	return func(options *findOffersOptions) error {
		options.State = &state
		return nil
	}
}

// OfferRepo owns the offer records and the next-id counter. Nothing else may
// construct or renumber an offer.
type OfferRepo interface {
	NextId(c ctx.Ctx) (domain.OfferId, error)
	Insert(c ctx.Ctx, offer *Offer) error
	FindOne(c ctx.Ctx, id domain.OfferId) (*Offer, error)
	FindAll(c ctx.Ctx, opts ...FindOffersOptions) ([]*Offer, error)
	Patch(c ctx.Ctx, id domain.OfferId, patch OfferPatch) error
}

type OfferListResult struct {
	Offers []*Offer `json:"offers"`
}
