package usecase

import (
	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/domain/healthcheck"
)

type impl struct {
	repo healthcheck.Repo
}

func New(repo healthcheck.Repo) healthcheck.Usecase {
	return &impl{repo}
}

func (im *impl) Check(c ctx.Ctx) error {
	return im.repo.CheckMongo(c)
}
