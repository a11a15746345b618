package usecase

import (
	"sync"

	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/base/log"
	"github.com/x-xyz/lendapi/base/ptr"
	"github.com/x-xyz/lendapi/domain"
	"github.com/x-xyz/lendapi/domain/bank"
	"github.com/x-xyz/lendapi/domain/custody"
	"github.com/x-xyz/lendapi/domain/lending"
)

type LendingCfg struct {
	Offers      lending.OfferRepo
	Collections lending.CollectionRepo
	Configs     lending.ConfigRepo
	Bank        bank.Service
	Custody     custody.Service
	Uow         domain.UnitOfWork
	Clock       domain.Clock
}

type impl struct {
	offers      lending.OfferRepo
	collections lending.CollectionRepo
	configs     lending.ConfigRepo
	bank        bank.Service
	custody     custody.Service
	uow         domain.UnitOfWork
	clock       domain.Clock

	// one mutating invocation at a time
	mu sync.Mutex
}

func New(cfg *LendingCfg) lending.Usecase {
	clock := cfg.Clock
	if clock == nil {
		clock = domain.SystemClock
	}
	return &impl{
		offers:      cfg.Offers,
		collections: cfg.Collections,
		configs:     cfg.Configs,
		bank:        cfg.Bank,
		custody:     cfg.Custody,
		uow:         cfg.Uow,
		clock:       clock,
	}
}

func (im *impl) Initialize(c ctx.Ctx, payload lending.InitializePayload) error {
	im.mu.Lock()
	defer im.mu.Unlock()

	if payload.Admin.IsEmpty() || payload.Denom == "" {
		return domain.ErrBadParamInput
	}
	seen := map[domain.CollectionId]bool{}
	for _, collection := range payload.NftCollections {
		if seen[collection.CollectionId] || collection.MaxTime == 0 {
			return domain.ErrBadParamInput
		}
		seen[collection.CollectionId] = true
	}

	if _, err := im.configs.Get(c); err == nil {
		// already initialized
		return nil
	} else if err != domain.ErrNotFound {
		return err
	}

	return im.uow.Run(c, func(c ctx.Ctx) error {
		cfg := &lending.ContractConfig{
			Admin:    payload.Admin.ToLower(),
			Interest: payload.Interest,
			Denom:    payload.Denom,
		}
		if err := im.configs.Upsert(c, cfg); err != nil {
			return err
		}
		for i := range payload.NftCollections {
			collection := payload.NftCollections[i]
			collection.Contract = collection.Contract.ToLower()
			if err := im.collections.Insert(c, &collection); err != nil && err != domain.ErrConflict {
				return err
			}
		}
		return nil
	})
}

func (im *impl) Lend(c ctx.Ctx, sender domain.Address, payload lending.LendPayload) (*lending.Offer, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	cfg, err := im.configs.Get(c)
	if err != nil {
		return nil, err
	}
	if _, err := im.collections.FindOne(c, payload.CollectionId); err != nil {
		return nil, err
	}
	if payload.Funds.Denom != cfg.Denom || payload.Funds.Amount != payload.Amount {
		return nil, domain.ErrFundsMismatch
	}

	var offer *lending.Offer
	err = im.uow.Run(c, func(c ctx.Ctx) error {
		if err := im.bank.Escrow(c, sender, payload.Amount, cfg.Denom); err != nil {
			return err
		}
		id, err := im.offers.NextId(c)
		if err != nil {
			return err
		}
		offer = &lending.Offer{
			OfferId:      id,
			Owner:        sender.ToLower(),
			Amount:       payload.Amount,
			CollectionId: payload.CollectionId,
			TokenId:      "",
			Accepted:     false,
			Borrower:     lending.NoBorrower,
			State:        lending.OfferStateOpen,
			CreatedAt:    im.clock.Now(),
		}
		return im.offers.Insert(c, offer)
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "sender": sender}).Warn("lend rejected")
		return nil, err
	}
	return offer, nil
}

func (im *impl) CancelOffer(c ctx.Ctx, sender domain.Address, offerId domain.OfferId) (*lending.Offer, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	offer, err := im.offers.FindOne(c, offerId)
	if err != nil {
		return nil, err
	}
	if !offer.Owner.Equals(sender) {
		return nil, domain.ErrUnauthorized
	}
	if offer.Accepted {
		return nil, domain.ErrAlreadyAccepted
	}
	if offer.State != lending.OfferStateOpen {
		return nil, domain.ErrOfferNotAvailable
	}

	cfg, err := im.configs.Get(c)
	if err != nil {
		return nil, err
	}

	now := im.clock.Now()
	err = im.uow.Run(c, func(c ctx.Ctx) error {
		if err := im.bank.Release(c, offer.Owner, offer.Amount, cfg.Denom); err != nil {
			return err
		}
		return im.offers.Patch(c, offerId, lending.OfferPatch{
			State:    statePtr(lending.OfferStateCancelled),
			ClosedAt: &now,
		})
	})
	if err != nil {
		return nil, err
	}
	return im.offers.FindOne(c, offerId)
}

func (im *impl) Borrow(c ctx.Ctx, sender domain.Address, offerId domain.OfferId, payload lending.BorrowPayload) (*lending.Offer, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if payload.TokenId == "" {
		return nil, domain.ErrBadParamInput
	}

	offer, err := im.offers.FindOne(c, offerId)
	if err != nil {
		return nil, err
	}
	if offer.Accepted || offer.State != lending.OfferStateOpen {
		return nil, domain.ErrOfferNotAvailable
	}

	collection, err := im.collections.FindOne(c, offer.CollectionId)
	if err != nil {
		return nil, err
	}
	cfg, err := im.configs.Get(c)
	if err != nil {
		return nil, err
	}

	now := im.clock.Now()
	err = im.uow.Run(c, func(c ctx.Ctx) error {
		if err := im.custody.Transfer(c, collection.Contract, payload.TokenId, sender, custody.Vault); err != nil {
			return err
		}
		if err := im.bank.Release(c, sender, offer.Amount, cfg.Denom); err != nil {
			return err
		}
		borrower := sender.ToLower()
		return im.offers.Patch(c, offerId, lending.OfferPatch{
			StartTime: &now,
			TokenId:   &payload.TokenId,
			Accepted:  ptr.Bool(true),
			Borrower:  &borrower,
			State:     statePtr(lending.OfferStateBorrowed),
		})
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "sender": sender, "offerId": offerId}).Warn("borrow rejected")
		return nil, err
	}
	return im.offers.FindOne(c, offerId)
}

func (im *impl) Repay(c ctx.Ctx, sender domain.Address, offerId domain.OfferId, payload lending.RepayPayload) (*lending.Offer, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	offer, err := im.offers.FindOne(c, offerId)
	if err != nil {
		return nil, err
	}
	if !offer.Accepted || offer.State != lending.OfferStateBorrowed {
		return nil, domain.ErrNotBorrowed
	}
	if !offer.Borrower.Equals(sender) {
		return nil, domain.ErrUnauthorized
	}

	collection, err := im.collections.FindOne(c, offer.CollectionId)
	if err != nil {
		return nil, err
	}
	cfg, err := im.configs.Get(c)
	if err != nil {
		return nil, err
	}
	if payload.Funds.Denom != cfg.Denom {
		return nil, domain.ErrFundsMismatch
	}

	// elapsed is capped at maturity inside AmountDue, so a late repayment
	// owes at most the full-term interest
	now := im.clock.Now()
	due := lending.AmountDue(offer.Amount, collection, cfg.Interest, now.Sub(offer.StartTime))
	if payload.Funds.Amount < due {
		return nil, domain.ErrInsufficientRepayment
	}

	err = im.uow.Run(c, func(c ctx.Ctx) error {
		// only the amount due is drawn, any declared excess stays with the
		// borrower
		if err := im.bank.Escrow(c, offer.Borrower, due, cfg.Denom); err != nil {
			return err
		}
		if err := im.bank.Release(c, offer.Owner, due, cfg.Denom); err != nil {
			return err
		}
		if err := im.custody.Transfer(c, collection.Contract, offer.TokenId, custody.Vault, offer.Borrower); err != nil {
			return err
		}
		return im.offers.Patch(c, offerId, lending.OfferPatch{
			State:    statePtr(lending.OfferStateRepaid),
			ClosedAt: &now,
		})
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "sender": sender, "offerId": offerId}).Warn("repay rejected")
		return nil, err
	}
	return im.offers.FindOne(c, offerId)
}

func (im *impl) RegisterCollection(c ctx.Ctx, sender domain.Address, collection lending.NFTCollection) (*lending.NFTCollection, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if err := im.requireAdmin(c, sender); err != nil {
		return nil, err
	}
	if collection.MaxTime == 0 {
		return nil, domain.ErrBadParamInput
	}
	collection.Contract = collection.Contract.ToLower()
	if err := im.collections.Insert(c, &collection); err != nil {
		return nil, err
	}
	return &collection, nil
}

func (im *impl) UpdateFloorPrice(c ctx.Ctx, sender domain.Address, id domain.CollectionId, newFloorPrice uint64) (*lending.NFTCollection, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if err := im.requireAdmin(c, sender); err != nil {
		return nil, err
	}
	if err := im.collections.UpdateFloorPrice(c, id, newFloorPrice); err != nil {
		return nil, err
	}
	return im.collections.FindOne(c, id)
}

func (im *impl) UpdateAdmin(c ctx.Ctx, sender domain.Address, newAdmin domain.Address) (*lending.ContractConfig, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if newAdmin.IsEmpty() {
		return nil, domain.ErrBadParamInput
	}
	cfg, err := im.configs.Get(c)
	if err != nil {
		return nil, err
	}
	if !cfg.Admin.Equals(sender) {
		return nil, domain.ErrUnauthorized
	}
	cfg.Admin = newAdmin.ToLower()
	if err := im.configs.Upsert(c, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (im *impl) UpdateInterest(c ctx.Ctx, sender domain.Address, interest uint64) (*lending.ContractConfig, error) {
	im.mu.Lock()
	defer im.mu.Unlock()

	cfg, err := im.configs.Get(c)
	if err != nil {
		return nil, err
	}
	if !cfg.Admin.Equals(sender) {
		return nil, domain.ErrUnauthorized
	}
	cfg.Interest = interest
	if err := im.configs.Upsert(c, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (im *impl) GetOffer(c ctx.Ctx, offerId domain.OfferId) (*lending.Offer, error) {
	return im.offers.FindOne(c, offerId)
}

func (im *impl) ListOffers(c ctx.Ctx, opts ...lending.FindOffersOptions) (*lending.OfferListResult, error) {
	offers, err := im.offers.FindAll(c, opts...)
	if err != nil {
		return nil, err
	}
	return &lending.OfferListResult{Offers: offers}, nil
}

func (im *impl) GetCollection(c ctx.Ctx, id domain.CollectionId) (*lending.NFTCollection, error) {
	return im.collections.FindOne(c, id)
}

func (im *impl) GetConfig(c ctx.Ctx) (*lending.ContractConfig, error) {
	return im.configs.Get(c)
}

func (im *impl) requireAdmin(c ctx.Ctx, sender domain.Address) error {
	cfg, err := im.configs.Get(c)
	if err != nil {
		return err
	}
	if !cfg.Admin.Equals(sender) {
		return domain.ErrUnauthorized
	}
	return nil
}

func statePtr(s lending.OfferState) *lending.OfferState {
	return &s
}
