package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/domain"
	"github.com/x-xyz/lendapi/domain/custody"
	"github.com/x-xyz/lendapi/service/query"
)

type holdingImpl struct {
	q query.Mongo
}

func NewHolding(q query.Mongo) custody.HoldingRepo {
	return &holdingImpl{q}
}

func (im *holdingImpl) FindOne(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId) (*custody.Holding, error) {
	holding := &custody.Holding{}
	selector := bson.M{"contract": contract.ToLower(), "tokenId": tokenId}
	if err := im.q.FindOne(c, domain.TableCustodyHoldings, selector, holding); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("contract", contract).Error("q.FindOne failed")
		return nil, err
	}
	return holding, nil
}

func (im *holdingImpl) Upsert(c ctx.Ctx, holding *custody.Holding) error {
	selector := bson.M{"contract": holding.Contract.ToLower(), "tokenId": holding.TokenId}
	if err := im.q.Upsert(c, domain.TableCustodyHoldings, selector, holding); err != nil {
		c.WithField("err", err).WithField("contract", holding.Contract).Error("q.Upsert failed")
		return err
	}
	return nil
}
