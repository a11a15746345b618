package healthcheck

import (
	"github.com/x-xyz/lendapi/base/ctx"
)

type Repo interface {
	CheckMongo(c ctx.Ctx) error
}

type Usecase interface {
	Check(c ctx.Ctx) error
}
