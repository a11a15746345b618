package lending

import (
	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/domain"
)

// NFTCollection is an admin-registered collection eligible as loan collateral
type NFTCollection struct {
	CollectionId domain.CollectionId `json:"collectionId" bson:"collectionId" validate:"required"`
	Collection   string              `json:"collection" bson:"collection" validate:"required"`
	Contract     domain.Address      `json:"contract" bson:"contract" validate:"required"`
	Apy          uint64              `json:"apy" bson:"apy"`
	// MaxTime is the loan maturity window in seconds
	MaxTime    uint64 `json:"maxTime" bson:"maxTime" validate:"required,gt=0"`
	FloorPrice uint64 `json:"floorPrice" bson:"floorPrice"`
}

type CollectionRepo interface {
	FindOne(c ctx.Ctx, id domain.CollectionId) (*NFTCollection, error)
	FindAll(c ctx.Ctx) ([]*NFTCollection, error)
	Insert(c ctx.Ctx, collection *NFTCollection) error
	UpdateFloorPrice(c ctx.Ctx, id domain.CollectionId, floorPrice uint64) error
}
