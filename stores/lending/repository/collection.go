package repository

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/domain"
	"github.com/x-xyz/lendapi/domain/keys"
	"github.com/x-xyz/lendapi/domain/lending"
	"github.com/x-xyz/lendapi/service/cache"
	"github.com/x-xyz/lendapi/service/cache/provider/primitive"
	"github.com/x-xyz/lendapi/service/query"
)

type collectionImpl struct {
	q     query.Mongo
	cache cache.Service
}

func NewCollection(q query.Mongo) lending.CollectionRepo {
	return &collectionImpl{
		q: q,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   keys.PfxCollection,
			Cache: primitive.NewPrimitive("collection", 8),
		}),
	}
}

func collectionCacheKey(id domain.CollectionId) string {
	return fmt.Sprintf("%d", id)
}

func (im *collectionImpl) FindOne(c ctx.Ctx, id domain.CollectionId) (*lending.NFTCollection, error) {
	collection := &lending.NFTCollection{}
	getter := func() (interface{}, error) {
		res := &lending.NFTCollection{}
		if err := im.q.FindOne(c, domain.TableNftCollections, bson.M{"collectionId": id}, res); err != nil {
			return nil, err
		}
		return res, nil
	}
	if err := im.cache.GetByFunc(c, collectionCacheKey(id), collection, getter); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("collectionId", id).Error("cache.GetByFunc failed")
		return nil, err
	}
	return collection, nil
}

func (im *collectionImpl) FindAll(c ctx.Ctx) ([]*lending.NFTCollection, error) {
	res := []*lending.NFTCollection{}
	if err := im.q.Search(c, domain.TableNftCollections, 0, 0, "collectionId", bson.M{}, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *collectionImpl) Insert(c ctx.Ctx, collection *lending.NFTCollection) error {
	if err := im.q.Insert(c, domain.TableNftCollections, collection); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *collectionImpl) UpdateFloorPrice(c ctx.Ctx, id domain.CollectionId, floorPrice uint64) error {
	selector := bson.M{"collectionId": id}
	update := bson.M{"floorPrice": floorPrice}
	if err := im.q.Patch(c, domain.TableNftCollections, selector, update); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("collectionId", id).Error("q.Patch failed")
		return err
	}
	if err := im.cache.Del(c, collectionCacheKey(id)); err != nil {
		c.WithField("err", err).WithField("collectionId", id).Warn("cache.Del failed")
	}
	return nil
}
