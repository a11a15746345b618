package usecase

import (
	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/base/log"
	"github.com/x-xyz/lendapi/domain"
	"github.com/x-xyz/lendapi/domain/bank"
)

type impl struct {
	balances bank.BalanceRepo
}

func New(balances bank.BalanceRepo) bank.Service {
	return &impl{balances}
}

func (im *impl) Escrow(c ctx.Ctx, from domain.Address, amount uint64, denom string) error {
	if err := im.balances.Debit(c, from, denom, amount); err != nil {
		if err != domain.ErrInsufficientFunds {
			c.WithFields(log.Fields{"err": err, "from": from}).Error("balances.Debit failed")
		}
		return err
	}
	if err := im.balances.Credit(c, bank.EscrowAccount, denom, amount); err != nil {
		c.WithFields(log.Fields{"err": err, "from": from}).Error("balances.Credit failed")
		return err
	}
	return nil
}

func (im *impl) Release(c ctx.Ctx, to domain.Address, amount uint64, denom string) error {
	if err := im.balances.Debit(c, bank.EscrowAccount, denom, amount); err != nil {
		c.WithFields(log.Fields{"err": err, "to": to}).Error("balances.Debit failed")
		return err
	}
	if err := im.balances.Credit(c, to, denom, amount); err != nil {
		c.WithFields(log.Fields{"err": err, "to": to}).Error("balances.Credit failed")
		return err
	}
	return nil
}

func (im *impl) Deposit(c ctx.Ctx, to domain.Address, amount uint64, denom string) error {
	if err := im.balances.Credit(c, to, denom, amount); err != nil {
		c.WithFields(log.Fields{"err": err, "to": to}).Error("balances.Credit failed")
		return err
	}
	return nil
}

func (im *impl) Balance(c ctx.Ctx, address domain.Address, denom string) (uint64, error) {
	balance, err := im.balances.FindOne(c, address, denom)
	if err == domain.ErrNotFound {
		return 0, nil
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "address": address}).Error("balances.FindOne failed")
		return 0, err
	}
	return balance.Amount, nil
}
