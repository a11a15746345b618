package lending

import (
	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/domain"
)

// ContractConfig is the protocol singleton: the privileged admin, the global
// interest-rate parameter and the denomination offers are funded in.
type ContractConfig struct {
	Admin    domain.Address `json:"admin" bson:"admin"`
	Interest uint64         `json:"interest" bson:"interest"`
	Denom    string         `json:"denom" bson:"denom"`
}

type ConfigRepo interface {
	Get(c ctx.Ctx) (*ContractConfig, error)
	Upsert(c ctx.Ctx, cfg *ContractConfig) error
}
