package repository

import (
	"math"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/domain"
	"github.com/x-xyz/lendapi/domain/bank"
	"github.com/x-xyz/lendapi/service/query"
)

type balanceImpl struct {
	q query.Mongo
}

func NewBalance(q query.Mongo) bank.BalanceRepo {
	return &balanceImpl{q}
}

func (im *balanceImpl) FindOne(c ctx.Ctx, address domain.Address, denom string) (*bank.Balance, error) {
	balance := &bank.Balance{}
	selector := bson.M{"address": address.ToLower(), "denom": denom}
	if err := im.q.FindOne(c, domain.TableBalances, selector, balance); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("address", address).Error("q.FindOne failed")
		return nil, err
	}
	return balance, nil
}

func (im *balanceImpl) Credit(c ctx.Ctx, address domain.Address, denom string, amount uint64) error {
	// $inc takes a signed int64, above that the sign would flip
	if amount > math.MaxInt64 {
		return domain.ErrBadParamInput
	}
	selector := bson.M{"address": address.ToLower(), "denom": denom}
	update := bson.M{"$inc": bson.M{"amount": int64(amount)}}
	if err := im.q.CustomPatch(c, domain.TableBalances, selector, update, true); err != nil {
		c.WithField("err", err).WithField("address", address).Error("q.CustomPatch failed")
		return err
	}
	return nil
}

func (im *balanceImpl) Debit(c ctx.Ctx, address domain.Address, denom string, amount uint64) error {
	if amount > math.MaxInt64 {
		return domain.ErrBadParamInput
	}
	// the amount guard on the selector makes check-and-subtract a single
	// atomic mongo update
	selector := bson.M{
		"address": address.ToLower(),
		"denom":   denom,
		"amount":  bson.M{"$gte": amount},
	}
	update := bson.M{"$inc": bson.M{"amount": -int64(amount)}}
	if err := im.q.CustomPatch(c, domain.TableBalances, selector, update, false); err == query.ErrNotFound {
		return domain.ErrInsufficientFunds
	} else if err != nil {
		c.WithField("err", err).WithField("address", address).Error("q.CustomPatch failed")
		return err
	}
	return nil
}
