package usecase

import (
	"testing"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/domain"
	"github.com/x-xyz/lendapi/domain/bank"
)

type balanceKey struct {
	address domain.Address
	denom   string
}

type memBalanceRepo struct {
	balances map[balanceKey]uint64
}

func (r *memBalanceRepo) FindOne(c bCtx.Ctx, address domain.Address, denom string) (*bank.Balance, error) {
	amount, ok := r.balances[balanceKey{address.ToLower(), denom}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &bank.Balance{Address: address.ToLower(), Denom: denom, Amount: amount}, nil
}

func (r *memBalanceRepo) Credit(c bCtx.Ctx, address domain.Address, denom string, amount uint64) error {
	r.balances[balanceKey{address.ToLower(), denom}] += amount
	return nil
}

func (r *memBalanceRepo) Debit(c bCtx.Ctx, address domain.Address, denom string, amount uint64) error {
	k := balanceKey{address.ToLower(), denom}
	if r.balances[k] < amount {
		return domain.ErrInsufficientFunds
	}
	r.balances[k] -= amount
	return nil
}

type bankTestSuite struct {
	suite.Suite

	ctx      bCtx.Ctx
	balances *memBalanceRepo
	svc      bank.Service
}

func TestBank(t *testing.T) {
	suite.Run(t, new(bankTestSuite))
}

func (s *bankTestSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.balances = &memBalanceRepo{balances: map[balanceKey]uint64{}}
	s.svc = New(s.balances)
}

func (s *bankTestSuite) TestDepositAndBalance() {
	amount, err := s.svc.Balance(s.ctx, "0xABC", "SEI")
	s.Require().NoError(err)
	s.Equal(uint64(0), amount)

	s.Require().NoError(s.svc.Deposit(s.ctx, "0xABC", 100, "SEI"))

	amount, err = s.svc.Balance(s.ctx, "0xabc", "SEI")
	s.Require().NoError(err)
	s.Equal(uint64(100), amount)
}

func (s *bankTestSuite) TestEscrowMovesToEscrowAccount() {
	s.Require().NoError(s.svc.Deposit(s.ctx, "0xabc", 100, "SEI"))
	s.Require().NoError(s.svc.Escrow(s.ctx, "0xabc", 60, "SEI"))

	amount, _ := s.svc.Balance(s.ctx, "0xabc", "SEI")
	s.Equal(uint64(40), amount)
	amount, _ = s.svc.Balance(s.ctx, bank.EscrowAccount, "SEI")
	s.Equal(uint64(60), amount)
}

func (s *bankTestSuite) TestEscrowInsufficientFunds() {
	s.Require().NoError(s.svc.Deposit(s.ctx, "0xabc", 10, "SEI"))
	err := s.svc.Escrow(s.ctx, "0xabc", 60, "SEI")
	s.Equal(domain.ErrInsufficientFunds, err)

	amount, _ := s.svc.Balance(s.ctx, "0xabc", "SEI")
	s.Equal(uint64(10), amount)
}

func (s *bankTestSuite) TestReleaseReturnsEscrowedFunds() {
	s.Require().NoError(s.svc.Deposit(s.ctx, "0xabc", 100, "SEI"))
	s.Require().NoError(s.svc.Escrow(s.ctx, "0xabc", 60, "SEI"))
	s.Require().NoError(s.svc.Release(s.ctx, "0xdef", 60, "SEI"))

	amount, _ := s.svc.Balance(s.ctx, "0xdef", "SEI")
	s.Equal(uint64(60), amount)
	amount, _ = s.svc.Balance(s.ctx, bank.EscrowAccount, "SEI")
	s.Equal(uint64(0), amount)
}

func (s *bankTestSuite) TestBalancesPerDenom() {
	s.Require().NoError(s.svc.Deposit(s.ctx, "0xabc", 100, "SEI"))
	s.Require().NoError(s.svc.Deposit(s.ctx, "0xabc", 7, "ATOM"))

	amount, _ := s.svc.Balance(s.ctx, "0xabc", "SEI")
	s.Equal(uint64(100), amount)
	amount, _ = s.svc.Balance(s.ctx, "0xabc", "ATOM")
	s.Equal(uint64(7), amount)
}
