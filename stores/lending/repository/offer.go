package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/xerrors"

	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/base/database/mongoclient"
	"github.com/x-xyz/lendapi/domain"
	"github.com/x-xyz/lendapi/domain/lending"
	"github.com/x-xyz/lendapi/service/query"
)

const offerCounterName = "offers"

type offerCounter struct {
	Name string         `bson:"name"`
	Seq  domain.OfferId `bson:"seq"`
}

type offerImpl struct {
	q query.Mongo
}

func NewOffer(q query.Mongo) lending.OfferRepo {
	return &offerImpl{q}
}

func (im *offerImpl) NextId(c ctx.Ctx) (domain.OfferId, error) {
	counter := offerCounter{}
	selector := bson.M{"name": offerCounterName}
	if err := im.q.Increment(c, domain.TableCounters, selector, &counter, "seq", int64(1)); err != nil {
		c.WithField("err", err).Error("q.Increment failed")
		return 0, xerrors.Errorf("increment offer counter: %w", err)
	}
	return counter.Seq, nil
}

func (im *offerImpl) Insert(c ctx.Ctx, offer *lending.Offer) error {
	if err := im.q.Insert(c, domain.TableOffers, offer); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *offerImpl) FindOne(c ctx.Ctx, id domain.OfferId) (*lending.Offer, error) {
	offer := &lending.Offer{}
	if err := im.q.FindOne(c, domain.TableOffers, bson.M{"offerId": id}, offer); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("offerId", id).Error("q.FindOne failed")
		return nil, err
	}
	return offer, nil
}

func (im *offerImpl) FindAll(c ctx.Ctx, optFns ...lending.FindOffersOptions) ([]*lending.Offer, error) {
	opts, err := lending.GetFindOffersOptions(optFns...)
	if err != nil {
		c.WithField("err", err).Error("lending.GetFindOffersOptions failed")
		return nil, err
	}

	qry := bson.M{}
	if opts.StartAfter != nil {
		qry["offerId"] = bson.M{"$gt": *opts.StartAfter}
	}
	if opts.Owner != nil {
		qry["owner"] = *opts.Owner
	}
	if opts.Borrower != nil {
		qry["borrower"] = *opts.Borrower
	}
	if opts.State != nil {
		qry["state"] = *opts.State
	}

	// a non-positive limit would reach mongo as "no limit"
	limit := int32(lending.DefaultListLimit)
	if opts.Limit != nil && *opts.Limit > 0 {
		limit = *opts.Limit
	}
	if limit > lending.MaxListLimit {
		limit = lending.MaxListLimit
	}

	res := []*lending.Offer{}
	if err := im.q.Search(c, domain.TableOffers, 0, int(limit), "offerId", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *offerImpl) Patch(c ctx.Ctx, id domain.OfferId, patch lending.OfferPatch) error {
	update, err := mongoclient.MakeBsonM(patch)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := im.q.Patch(c, domain.TableOffers, bson.M{"offerId": id}, update); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("offerId", id).Error("q.Patch failed")
		return err
	}
	return nil
}
