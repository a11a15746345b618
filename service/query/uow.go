package query

import (
	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/domain"
)

type uow struct {
	q Mongo
}

// NewUnitOfWork adapts the mongo transaction into the domain unit-of-work:
// every mutation inside Run either commits in full or is discarded in full.
func NewUnitOfWork(q Mongo) domain.UnitOfWork {
	return &uow{q}
}

func (u *uow) Run(c ctx.Ctx, fn func(ctx.Ctx) error) error {
	return u.q.RunWithTransaction(c, fn)
}
