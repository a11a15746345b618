package usecase

import (
	"sort"
	"time"

	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/domain"
	"github.com/x-xyz/lendapi/domain/bank"
	"github.com/x-xyz/lendapi/domain/lending"
)

// manualClock hands out a fixed time the tests advance explicitly
type manualClock struct {
	now time.Time
}

func (m *manualClock) Now() time.Time { return m.now }

func (m *manualClock) Advance(d time.Duration) { m.now = m.now.Add(d) }

// passthroughUow runs the function directly, matching the all-or-nothing
// contract only as far as the fakes never half-fail
type passthroughUow struct{}

func (passthroughUow) Run(c ctx.Ctx, fn func(ctx.Ctx) error) error { return fn(c) }

type memOfferRepo struct {
	seq    domain.OfferId
	offers map[domain.OfferId]*lending.Offer
}

func newMemOfferRepo() *memOfferRepo {
	return &memOfferRepo{offers: map[domain.OfferId]*lending.Offer{}}
}

func (r *memOfferRepo) NextId(c ctx.Ctx) (domain.OfferId, error) {
	r.seq++
	return r.seq, nil
}

func (r *memOfferRepo) Insert(c ctx.Ctx, offer *lending.Offer) error {
	cp := *offer
	r.offers[offer.OfferId] = &cp
	return nil
}

func (r *memOfferRepo) FindOne(c ctx.Ctx, id domain.OfferId) (*lending.Offer, error) {
	offer, ok := r.offers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *offer
	return &cp, nil
}

func (r *memOfferRepo) FindAll(c ctx.Ctx, optFns ...lending.FindOffersOptions) ([]*lending.Offer, error) {
	opts, err := lending.GetFindOffersOptions(optFns...)
	if err != nil {
		return nil, err
	}

	ids := make([]domain.OfferId, 0, len(r.offers))
	for id := range r.offers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	limit := int32(lending.DefaultListLimit)
	if opts.Limit != nil && *opts.Limit > 0 {
		limit = *opts.Limit
	}
	if limit > lending.MaxListLimit {
		limit = lending.MaxListLimit
	}

	res := []*lending.Offer{}
	for _, id := range ids {
		if opts.StartAfter != nil && id <= *opts.StartAfter {
			continue
		}
		offer := r.offers[id]
		if opts.Owner != nil && !offer.Owner.Equals(*opts.Owner) {
			continue
		}
		if opts.Borrower != nil && !offer.Borrower.Equals(*opts.Borrower) {
			continue
		}
		if opts.State != nil && offer.State != *opts.State {
			continue
		}
		cp := *offer
		res = append(res, &cp)
		if int32(len(res)) >= limit {
			break
		}
	}
	return res, nil
}

func (r *memOfferRepo) Patch(c ctx.Ctx, id domain.OfferId, patch lending.OfferPatch) error {
	offer, ok := r.offers[id]
	if !ok {
		return domain.ErrNotFound
	}
	if patch.StartTime != nil {
		offer.StartTime = *patch.StartTime
	}
	if patch.TokenId != nil {
		offer.TokenId = *patch.TokenId
	}
	if patch.Accepted != nil {
		offer.Accepted = *patch.Accepted
	}
	if patch.Borrower != nil {
		offer.Borrower = *patch.Borrower
	}
	if patch.State != nil {
		offer.State = *patch.State
	}
	if patch.ClosedAt != nil {
		offer.ClosedAt = patch.ClosedAt
	}
	return nil
}

type memCollectionRepo struct {
	collections map[domain.CollectionId]*lending.NFTCollection
}

func newMemCollectionRepo() *memCollectionRepo {
	return &memCollectionRepo{collections: map[domain.CollectionId]*lending.NFTCollection{}}
}

func (r *memCollectionRepo) FindOne(c ctx.Ctx, id domain.CollectionId) (*lending.NFTCollection, error) {
	collection, ok := r.collections[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *collection
	return &cp, nil
}

func (r *memCollectionRepo) FindAll(c ctx.Ctx) ([]*lending.NFTCollection, error) {
	res := []*lending.NFTCollection{}
	for _, collection := range r.collections {
		cp := *collection
		res = append(res, &cp)
	}
	return res, nil
}

func (r *memCollectionRepo) Insert(c ctx.Ctx, collection *lending.NFTCollection) error {
	if _, ok := r.collections[collection.CollectionId]; ok {
		return domain.ErrConflict
	}
	cp := *collection
	r.collections[collection.CollectionId] = &cp
	return nil
}

func (r *memCollectionRepo) UpdateFloorPrice(c ctx.Ctx, id domain.CollectionId, floorPrice uint64) error {
	collection, ok := r.collections[id]
	if !ok {
		return domain.ErrNotFound
	}
	collection.FloorPrice = floorPrice
	return nil
}

type memConfigRepo struct {
	cfg *lending.ContractConfig
}

func (r *memConfigRepo) Get(c ctx.Ctx) (*lending.ContractConfig, error) {
	if r.cfg == nil {
		return nil, domain.ErrNotFound
	}
	cp := *r.cfg
	return &cp, nil
}

func (r *memConfigRepo) Upsert(c ctx.Ctx, cfg *lending.ContractConfig) error {
	cp := *cfg
	r.cfg = &cp
	return nil
}

type balanceKey struct {
	address domain.Address
	denom   string
}

// memBank is an in-memory funds ledger with the same conditional-debit
// contract as the mongo-backed one
type memBank struct {
	balances map[balanceKey]uint64
}

func newMemBank() *memBank {
	return &memBank{balances: map[balanceKey]uint64{}}
}

func (b *memBank) key(address domain.Address, denom string) balanceKey {
	return balanceKey{address.ToLower(), denom}
}

func (b *memBank) Escrow(c ctx.Ctx, from domain.Address, amount uint64, denom string) error {
	k := b.key(from, denom)
	if b.balances[k] < amount {
		return domain.ErrInsufficientFunds
	}
	b.balances[k] -= amount
	b.balances[b.key(bank.EscrowAccount, denom)] += amount
	return nil
}

func (b *memBank) Release(c ctx.Ctx, to domain.Address, amount uint64, denom string) error {
	k := b.key(bank.EscrowAccount, denom)
	if b.balances[k] < amount {
		return domain.ErrInsufficientFunds
	}
	b.balances[k] -= amount
	b.balances[b.key(to, denom)] += amount
	return nil
}

func (b *memBank) Deposit(c ctx.Ctx, to domain.Address, amount uint64, denom string) error {
	b.balances[b.key(to, denom)] += amount
	return nil
}

func (b *memBank) Balance(c ctx.Ctx, address domain.Address, denom string) (uint64, error) {
	return b.balances[b.key(address, denom)], nil
}

type holdingKey struct {
	contract domain.Address
	tokenId  domain.TokenId
}

type memCustody struct {
	holders map[holdingKey]domain.Address
}

func newMemCustody() *memCustody {
	return &memCustody{holders: map[holdingKey]domain.Address{}}
}

func (m *memCustody) Seed(contract domain.Address, tokenId domain.TokenId, holder domain.Address) {
	m.holders[holdingKey{contract.ToLower(), tokenId}] = holder.ToLower()
}

func (m *memCustody) Transfer(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId, from, to domain.Address) error {
	k := holdingKey{contract.ToLower(), tokenId}
	holder, ok := m.holders[k]
	if !ok {
		return domain.ErrNotFound
	}
	if !holder.Equals(from) {
		return domain.ErrUnauthorized
	}
	m.holders[k] = to.ToLower()
	return nil
}

func (m *memCustody) Holder(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	holder, ok := m.holders[holdingKey{contract.ToLower(), tokenId}]
	if !ok {
		return "", domain.ErrNotFound
	}
	return holder, nil
}
