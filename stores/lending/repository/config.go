package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/domain"
	"github.com/x-xyz/lendapi/domain/lending"
	"github.com/x-xyz/lendapi/service/query"
)

// the config table holds a single document
const configDocId = "contract"

type configDoc struct {
	Id                     string `bson:"configId"`
	lending.ContractConfig `bson:",inline"`
}

type configImpl struct {
	q query.Mongo
}

func NewConfig(q query.Mongo) lending.ConfigRepo {
	return &configImpl{q}
}

func (im *configImpl) Get(c ctx.Ctx) (*lending.ContractConfig, error) {
	doc := configDoc{}
	if err := im.q.FindOne(c, domain.TableContractConfigs, bson.M{"configId": configDocId}, &doc); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	cfg := doc.ContractConfig
	return &cfg, nil
}

func (im *configImpl) Upsert(c ctx.Ctx, cfg *lending.ContractConfig) error {
	doc := configDoc{Id: configDocId, ContractConfig: *cfg}
	if err := im.q.Upsert(c, domain.TableContractConfigs, bson.M{"configId": configDocId}, &doc); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}
