package repository

import (
	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/base/database/mongoclient"
	"github.com/x-xyz/lendapi/domain/healthcheck"
)

type impl struct {
	client *mongoclient.Client
}

func New(client *mongoclient.Client) healthcheck.Repo {
	return &impl{client}
}

func (im *impl) CheckMongo(c ctx.Ctx) error {
	if err := im.client.Ping(c, nil); err != nil {
		c.WithField("err", err).Error("mongo ping failed")
		return err
	}
	return nil
}
