package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/domain"
	bankMocks "github.com/x-xyz/lendapi/domain/bank/mocks"
	custodyMocks "github.com/x-xyz/lendapi/domain/custody/mocks"
	"github.com/x-xyz/lendapi/domain/lending"
	"github.com/x-xyz/lendapi/domain/lending/mocks"
)

func mockConfig() *mocks.ConfigRepo {
	configs := &mocks.ConfigRepo{}
	configs.On("Get", mock.Anything).Return(&lending.ContractConfig{
		Admin:    admin,
		Interest: 80,
		Denom:    denom,
	}, nil)
	return configs
}

func mockCollections() *mocks.CollectionRepo {
	collections := &mocks.CollectionRepo{}
	collections.On("FindOne", mock.Anything, domain.CollectionId(1)).Return(&lending.NFTCollection{
		CollectionId: 1,
		Collection:   "punks",
		Contract:     contract,
		Apy:          5,
		MaxTime:      yearInSecs,
		FloorPrice:   100,
	}, nil)
	return collections
}

func TestLendAbortsWhenEscrowFails(t *testing.T) {
	ctx := bCtx.Background()

	offers := &mocks.OfferRepo{}
	bankSvc := &bankMocks.Service{}
	bankSvc.On("Escrow", mock.Anything, lender, uint64(50), denom).
		Return(domain.ErrInsufficientFunds)

	uc := New(&LendingCfg{
		Offers:      offers,
		Collections: mockCollections(),
		Configs:     mockConfig(),
		Bank:        bankSvc,
		Custody:     &custodyMocks.Service{},
		Uow:         passthroughUow{},
		Clock:       &manualClock{now: time.Unix(1700000000, 0)},
	})

	_, err := uc.Lend(ctx, lender, lending.LendPayload{
		Amount:       50,
		CollectionId: 1,
		Funds:        domain.Coin{Denom: denom, Amount: 50},
	})
	require.Equal(t, domain.ErrInsufficientFunds, err)

	// nothing was written after the failed escrow
	offers.AssertNotCalled(t, "NextId", mock.Anything)
	offers.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestBorrowAbortsWhenCustodyRejects(t *testing.T) {
	ctx := bCtx.Background()

	offers := &mocks.OfferRepo{}
	offers.On("FindOne", mock.Anything, domain.OfferId(1)).Return(&lending.Offer{
		OfferId:      1,
		Owner:        lender,
		Amount:       50,
		CollectionId: 1,
		Borrower:     lending.NoBorrower,
		State:        lending.OfferStateOpen,
	}, nil)

	custodySvc := &custodyMocks.Service{}
	custodySvc.On("Transfer", mock.Anything, contract, domain.TokenId("42"), borrower, mock.Anything).
		Return(domain.ErrUnauthorized)

	bankSvc := &bankMocks.Service{}

	uc := New(&LendingCfg{
		Offers:      offers,
		Collections: mockCollections(),
		Configs:     mockConfig(),
		Bank:        bankSvc,
		Custody:     custodySvc,
		Uow:         passthroughUow{},
		Clock:       &manualClock{now: time.Unix(1700000000, 0)},
	})

	_, err := uc.Borrow(ctx, borrower, 1, lending.BorrowPayload{TokenId: "42"})
	require.Equal(t, domain.ErrUnauthorized, err)

	// the principal never left escrow and the offer was not patched
	bankSvc.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	offers.AssertNotCalled(t, "Patch", mock.Anything, mock.Anything, mock.Anything)
}
