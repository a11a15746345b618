package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/domain"
	"github.com/x-xyz/lendapi/domain/bank"
	"github.com/x-xyz/lendapi/domain/custody"
	"github.com/x-xyz/lendapi/domain/lending"
)

const (
	denom      = "SEI"
	yearInSecs = 365 * 24 * 60 * 60
)

var (
	admin    = domain.Address("0xaaaa00000000000000000000000000000000aaaa")
	lender   = domain.Address("0x1111000000000000000000000000000000001111")
	borrower = domain.Address("0x2222000000000000000000000000000000002222")
	stranger = domain.Address("0x3333000000000000000000000000000000003333")
	contract = domain.Address("0xc001000000000000000000000000000000000001")
)

type lendingTestSuite struct {
	suite.Suite

	ctx     bCtx.Ctx
	clock   *manualClock
	offers  *memOfferRepo
	bank    *memBank
	custody *memCustody
	uc      lending.Usecase
}

func TestLending(t *testing.T) {
	suite.Run(t, new(lendingTestSuite))
}

func (s *lendingTestSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.clock = &manualClock{now: time.Unix(1700000000, 0)}
	s.offers = newMemOfferRepo()
	s.bank = newMemBank()
	s.custody = newMemCustody()

	s.uc = New(&LendingCfg{
		Offers:      s.offers,
		Collections: newMemCollectionRepo(),
		Configs:     &memConfigRepo{},
		Bank:        s.bank,
		Custody:     s.custody,
		Uow:         passthroughUow{},
		Clock:       s.clock,
	})

	err := s.uc.Initialize(s.ctx, lending.InitializePayload{
		NftCollections: []lending.NFTCollection{{
			CollectionId: 1,
			Collection:   "punks",
			Contract:     contract,
			Apy:          5,
			MaxTime:      yearInSecs,
			FloorPrice:   100,
		}},
		Admin:    admin,
		Interest: 80,
		Denom:    denom,
	})
	s.Require().NoError(err)

	s.Require().NoError(s.bank.Deposit(s.ctx, lender, 1000, denom))
	s.Require().NoError(s.bank.Deposit(s.ctx, borrower, 1000, denom))
	s.custody.Seed(contract, "42", borrower)
}

func (s *lendingTestSuite) lend(amount uint64) *lending.Offer {
	offer, err := s.uc.Lend(s.ctx, lender, lending.LendPayload{
		Amount:       amount,
		CollectionId: 1,
		Funds:        domain.Coin{Denom: denom, Amount: amount},
	})
	s.Require().NoError(err)
	return offer
}

func (s *lendingTestSuite) borrow(id domain.OfferId) *lending.Offer {
	offer, err := s.uc.Borrow(s.ctx, borrower, id, lending.BorrowPayload{TokenId: "42"})
	s.Require().NoError(err)
	return offer
}

func (s *lendingTestSuite) balance(address domain.Address) uint64 {
	amount, err := s.bank.Balance(s.ctx, address, denom)
	s.Require().NoError(err)
	return amount
}

func (s *lendingTestSuite) TestLendEscrowsFunds() {
	offer := s.lend(50)

	s.Equal(domain.OfferId(1), offer.OfferId)
	s.Equal(lender, offer.Owner)
	s.Equal(uint64(50), offer.Amount)
	s.False(offer.Accepted)
	s.Equal(domain.TokenId(""), offer.TokenId)
	s.Equal(lending.NoBorrower, offer.Borrower)
	s.Equal(lending.OfferStateOpen, offer.State)

	s.Equal(uint64(950), s.balance(lender))
	s.Equal(uint64(50), s.balance(bank.EscrowAccount))
}

func (s *lendingTestSuite) TestLendSequentialIds() {
	s.Equal(domain.OfferId(1), s.lend(10).OfferId)
	s.Equal(domain.OfferId(2), s.lend(20).OfferId)
	s.Equal(domain.OfferId(3), s.lend(30).OfferId)
}

func (s *lendingTestSuite) TestLendRejectsUnknownCollection() {
	_, err := s.uc.Lend(s.ctx, lender, lending.LendPayload{
		Amount:       50,
		CollectionId: 99,
		Funds:        domain.Coin{Denom: denom, Amount: 50},
	})
	s.Equal(domain.ErrNotFound, err)
}

func (s *lendingTestSuite) TestLendRejectsFundsMismatch() {
	_, err := s.uc.Lend(s.ctx, lender, lending.LendPayload{
		Amount:       50,
		CollectionId: 1,
		Funds:        domain.Coin{Denom: denom, Amount: 49},
	})
	s.Equal(domain.ErrFundsMismatch, err)

	_, err = s.uc.Lend(s.ctx, lender, lending.LendPayload{
		Amount:       50,
		CollectionId: 1,
		Funds:        domain.Coin{Denom: "ATOM", Amount: 50},
	})
	s.Equal(domain.ErrFundsMismatch, err)
}

func (s *lendingTestSuite) TestLendRejectsInsufficientBalance() {
	_, err := s.uc.Lend(s.ctx, lender, lending.LendPayload{
		Amount:       5000,
		CollectionId: 1,
		Funds:        domain.Coin{Denom: denom, Amount: 5000},
	})
	s.Equal(domain.ErrInsufficientFunds, err)
	s.Equal(uint64(1000), s.balance(lender))
}

func (s *lendingTestSuite) TestCancelRefundsOwner() {
	offer := s.lend(50)

	cancelled, err := s.uc.CancelOffer(s.ctx, lender, offer.OfferId)
	s.Require().NoError(err)
	s.Equal(lending.OfferStateCancelled, cancelled.State)
	s.NotNil(cancelled.ClosedAt)

	s.Equal(uint64(1000), s.balance(lender))
	s.Equal(uint64(0), s.balance(bank.EscrowAccount))

	// soft-closed record still answers point lookups
	got, err := s.uc.GetOffer(s.ctx, offer.OfferId)
	s.Require().NoError(err)
	s.Equal(lending.OfferStateCancelled, got.State)

	_, err = s.uc.CancelOffer(s.ctx, lender, offer.OfferId)
	s.Equal(domain.ErrOfferNotAvailable, err)
}

func (s *lendingTestSuite) TestCancelRequiresOwner() {
	offer := s.lend(50)
	_, err := s.uc.CancelOffer(s.ctx, stranger, offer.OfferId)
	s.Equal(domain.ErrUnauthorized, err)
}

func (s *lendingTestSuite) TestCancelAcceptedOfferRejected() {
	offer := s.lend(50)
	s.borrow(offer.OfferId)

	_, err := s.uc.CancelOffer(s.ctx, lender, offer.OfferId)
	s.Equal(domain.ErrAlreadyAccepted, err)
}

func (s *lendingTestSuite) TestBorrowMovesTokenAndFunds() {
	offer := s.lend(50)
	borrowed := s.borrow(offer.OfferId)

	s.True(borrowed.Accepted)
	s.Equal(domain.TokenId("42"), borrowed.TokenId)
	s.Equal(borrower, borrowed.Borrower)
	s.Equal(lending.OfferStateBorrowed, borrowed.State)
	s.Equal(s.clock.Now(), borrowed.StartTime)

	holder, err := s.custody.Holder(s.ctx, contract, "42")
	s.Require().NoError(err)
	s.Equal(custody.Vault, holder)

	s.Equal(uint64(1050), s.balance(borrower))
	s.Equal(uint64(0), s.balance(bank.EscrowAccount))
}

func (s *lendingTestSuite) TestBorrowTwiceRejected() {
	offer := s.lend(50)
	s.borrow(offer.OfferId)

	_, err := s.uc.Borrow(s.ctx, stranger, offer.OfferId, lending.BorrowPayload{TokenId: "43"})
	s.Equal(domain.ErrOfferNotAvailable, err)
}

func (s *lendingTestSuite) TestBorrowRequiresTokenOwnership() {
	offer := s.lend(50)

	_, err := s.uc.Borrow(s.ctx, stranger, offer.OfferId, lending.BorrowPayload{TokenId: "42"})
	s.Equal(domain.ErrUnauthorized, err)

	// the failed transfer left everything untouched
	got, err := s.uc.GetOffer(s.ctx, offer.OfferId)
	s.Require().NoError(err)
	s.False(got.Accepted)
	s.Equal(uint64(50), s.balance(bank.EscrowAccount))
}

func (s *lendingTestSuite) TestBorrowCancelledOfferRejected() {
	offer := s.lend(50)
	_, err := s.uc.CancelOffer(s.ctx, lender, offer.OfferId)
	s.Require().NoError(err)

	_, err = s.uc.Borrow(s.ctx, borrower, offer.OfferId, lending.BorrowPayload{TokenId: "42"})
	s.Equal(domain.ErrOfferNotAvailable, err)
}

func (s *lendingTestSuite) TestRepayRoundTrip() {
	offer := s.lend(50)
	s.borrow(offer.OfferId)

	// principal 50, apy 5 + interest 80, half the 365-day window
	s.clock.Advance(180 * 24 * time.Hour)

	repaid, err := s.uc.Repay(s.ctx, borrower, offer.OfferId, lending.RepayPayload{
		Funds: domain.Coin{Denom: denom, Amount: 172},
	})
	s.Require().NoError(err)
	s.Equal(lending.OfferStateRepaid, repaid.State)
	s.NotNil(repaid.ClosedAt)

	// due is 71, only the due is drawn regardless of the declared funds
	s.Equal(uint64(1050-71), s.balance(borrower))
	s.Equal(uint64(950+71), s.balance(lender))
	s.Equal(uint64(0), s.balance(bank.EscrowAccount))

	holder, err := s.custody.Holder(s.ctx, contract, "42")
	s.Require().NoError(err)
	s.Equal(borrower, holder)

	_, err = s.uc.Repay(s.ctx, borrower, offer.OfferId, lending.RepayPayload{
		Funds: domain.Coin{Denom: denom, Amount: 172},
	})
	s.Equal(domain.ErrNotBorrowed, err)
}

func (s *lendingTestSuite) TestRepayRejectsInsufficientFunds() {
	offer := s.lend(50)
	s.borrow(offer.OfferId)
	s.clock.Advance(180 * 24 * time.Hour)

	_, err := s.uc.Repay(s.ctx, borrower, offer.OfferId, lending.RepayPayload{
		Funds: domain.Coin{Denom: denom, Amount: 70},
	})
	s.Equal(domain.ErrInsufficientRepayment, err)
}

func (s *lendingTestSuite) TestRepayRequiresBorrower() {
	offer := s.lend(50)
	s.borrow(offer.OfferId)

	_, err := s.uc.Repay(s.ctx, stranger, offer.OfferId, lending.RepayPayload{
		Funds: domain.Coin{Denom: denom, Amount: 172},
	})
	s.Equal(domain.ErrUnauthorized, err)
}

func (s *lendingTestSuite) TestRepayOpenOfferRejected() {
	offer := s.lend(50)
	_, err := s.uc.Repay(s.ctx, borrower, offer.OfferId, lending.RepayPayload{
		Funds: domain.Coin{Denom: denom, Amount: 172},
	})
	s.Equal(domain.ErrNotBorrowed, err)
}

func (s *lendingTestSuite) TestRepayPastMaturityCapsInterest() {
	offer := s.lend(50)
	s.borrow(offer.OfferId)

	// two years in, the accrual stops at the full-term amount
	s.clock.Advance(2 * yearInSecs * time.Second)

	repaid, err := s.uc.Repay(s.ctx, borrower, offer.OfferId, lending.RepayPayload{
		Funds: domain.Coin{Denom: denom, Amount: 100},
	})
	s.Require().NoError(err)
	s.Equal(lending.OfferStateRepaid, repaid.State)

	// due = 50 + ceil(50 * 0.85) = 93
	s.Equal(uint64(1050-93), s.balance(borrower))
}

func (s *lendingTestSuite) TestListOffersPagination() {
	for i := 0; i < 25; i++ {
		s.lend(uint64(i + 1))
	}

	// default limit
	res, err := s.uc.ListOffers(s.ctx)
	s.Require().NoError(err)
	s.Len(res.Offers, lending.DefaultListLimit)
	s.Equal(domain.OfferId(1), res.Offers[0].OfferId)

	// walk all pages and reconstruct the full set in order
	var all []domain.OfferId
	var startAfter domain.OfferId
	for {
		res, err := s.uc.ListOffers(s.ctx, lending.WithStartAfter(startAfter), lending.WithLimit(7))
		s.Require().NoError(err)
		if len(res.Offers) == 0 {
			break
		}
		for _, offer := range res.Offers {
			all = append(all, offer.OfferId)
		}
		startAfter = res.Offers[len(res.Offers)-1].OfferId
	}
	s.Len(all, 25)
	for i, id := range all {
		s.Equal(domain.OfferId(i+1), id)
	}

	// the cap holds no matter the requested limit
	res, err = s.uc.ListOffers(s.ctx, lending.WithLimit(1000))
	s.Require().NoError(err)
	s.Len(res.Offers, lending.MaxListLimit)
	s.Equal(domain.OfferId(25), res.Offers[24].OfferId)

	// a zero or negative limit falls back to the bounded default instead of
	// reaching the store as unlimited
	res, err = s.uc.ListOffers(s.ctx, lending.WithLimit(0))
	s.Require().NoError(err)
	s.Len(res.Offers, lending.DefaultListLimit)

	res, err = s.uc.ListOffers(s.ctx, lending.WithLimit(-5))
	s.Require().NoError(err)
	s.Len(res.Offers, lending.DefaultListLimit)
}

func (s *lendingTestSuite) TestUpdateFloorPrice() {
	updated, err := s.uc.UpdateFloorPrice(s.ctx, admin, 1, 120)
	s.Require().NoError(err)
	s.Equal(uint64(120), updated.FloorPrice)
	s.Equal("punks", updated.Collection)
	s.Equal(uint64(5), updated.Apy)
	s.Equal(uint64(yearInSecs), updated.MaxTime)

	_, err = s.uc.UpdateFloorPrice(s.ctx, stranger, 1, 130)
	s.Equal(domain.ErrUnauthorized, err)

	_, err = s.uc.UpdateFloorPrice(s.ctx, admin, 99, 130)
	s.Equal(domain.ErrNotFound, err)
}

func (s *lendingTestSuite) TestAdminHandover() {
	cfg, err := s.uc.UpdateAdmin(s.ctx, admin, stranger)
	s.Require().NoError(err)
	s.Equal(stranger, cfg.Admin)

	// the old admin lost its privileges
	_, err = s.uc.UpdateInterest(s.ctx, admin, 10)
	s.Equal(domain.ErrUnauthorized, err)

	cfg, err = s.uc.UpdateInterest(s.ctx, stranger, 10)
	s.Require().NoError(err)
	s.Equal(uint64(10), cfg.Interest)
}

func (s *lendingTestSuite) TestUpdateInterestChangesAmountDue() {
	offer := s.lend(50)
	s.borrow(offer.OfferId)

	_, err := s.uc.UpdateInterest(s.ctx, admin, 0)
	s.Require().NoError(err)

	s.clock.Advance(yearInSecs * time.Second)

	// with interest 0 only the 5% apy accrues: due = 50 + ceil(2.5) = 53
	repaid, err := s.uc.Repay(s.ctx, borrower, offer.OfferId, lending.RepayPayload{
		Funds: domain.Coin{Denom: denom, Amount: 53},
	})
	s.Require().NoError(err)
	s.Equal(lending.OfferStateRepaid, repaid.State)
	s.Equal(uint64(1050-53), s.balance(borrower))
}

func (s *lendingTestSuite) TestRegisterCollection() {
	registered, err := s.uc.RegisterCollection(s.ctx, admin, lending.NFTCollection{
		CollectionId: 2,
		Collection:   "apes",
		Contract:     "0xC002000000000000000000000000000000000002",
		Apy:          10,
		MaxTime:      yearInSecs / 2,
		FloorPrice:   200,
	})
	s.Require().NoError(err)
	s.Equal(domain.Address("0xc002000000000000000000000000000000000002"), registered.Contract)

	offer, err := s.uc.Lend(s.ctx, lender, lending.LendPayload{
		Amount:       100,
		CollectionId: 2,
		Funds:        domain.Coin{Denom: denom, Amount: 100},
	})
	s.Require().NoError(err)
	s.Equal(domain.CollectionId(2), offer.CollectionId)

	_, err = s.uc.RegisterCollection(s.ctx, stranger, lending.NFTCollection{
		CollectionId: 3,
		Collection:   "cats",
		Contract:     "0xc003000000000000000000000000000000000003",
		MaxTime:      yearInSecs,
	})
	s.Equal(domain.ErrUnauthorized, err)

	_, err = s.uc.RegisterCollection(s.ctx, admin, lending.NFTCollection{
		CollectionId: 1,
		Collection:   "punks again",
		Contract:     contract,
		MaxTime:      yearInSecs,
	})
	s.Equal(domain.ErrConflict, err)
}

func (s *lendingTestSuite) TestInitializeIdempotent() {
	err := s.uc.Initialize(s.ctx, lending.InitializePayload{
		Admin:    stranger,
		Interest: 1,
		Denom:    "ATOM",
	})
	s.Require().NoError(err)

	cfg, err := s.uc.GetConfig(s.ctx)
	s.Require().NoError(err)
	s.Equal(admin, cfg.Admin)
	s.Equal(uint64(80), cfg.Interest)
	s.Equal(denom, cfg.Denom)
}

func (s *lendingTestSuite) TestInitializeValidation() {
	uc := New(&LendingCfg{
		Offers:      newMemOfferRepo(),
		Collections: newMemCollectionRepo(),
		Configs:     &memConfigRepo{},
		Bank:        newMemBank(),
		Custody:     newMemCustody(),
		Uow:         passthroughUow{},
		Clock:       s.clock,
	})

	err := uc.Initialize(s.ctx, lending.InitializePayload{Denom: denom})
	s.Equal(domain.ErrBadParamInput, err)

	err = uc.Initialize(s.ctx, lending.InitializePayload{
		NftCollections: []lending.NFTCollection{
			{CollectionId: 1, Collection: "a", Contract: contract, MaxTime: 1},
			{CollectionId: 1, Collection: "b", Contract: contract, MaxTime: 1},
		},
		Admin: admin,
		Denom: denom,
	})
	s.Equal(domain.ErrBadParamInput, err)
}
