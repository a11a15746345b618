package bank

import (
	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/domain"
)

// EscrowAccount holds funds the protocol itself custodies between lend and
// borrow/cancel.
const EscrowAccount = domain.Address("escrow")

// Balance is the spendable amount an address holds in one denomination
type Balance struct {
	Address domain.Address `json:"address" bson:"address"`
	Denom   string         `json:"denom" bson:"denom"`
	Amount  uint64         `json:"amount" bson:"amount"`
}

type BalanceRepo interface {
	FindOne(c ctx.Ctx, address domain.Address, denom string) (*Balance, error)
	// Credit adds amount, creating the balance document when absent
	Credit(c ctx.Ctx, address domain.Address, denom string, amount uint64) error
	// Debit subtracts amount only when the current balance covers it,
	// returning domain.ErrInsufficientFunds otherwise
	Debit(c ctx.Ctx, address domain.Address, denom string, amount uint64) error
}

// Service is the funds-ledger collaborator the loan state machine moves value
// through. Any failure must abort the surrounding invocation.
type Service interface {
	Escrow(c ctx.Ctx, from domain.Address, amount uint64, denom string) error
	Release(c ctx.Ctx, to domain.Address, amount uint64, denom string) error
	Deposit(c ctx.Ctx, to domain.Address, amount uint64, denom string) error
	Balance(c ctx.Ctx, address domain.Address, denom string) (uint64, error)
}
