package custody

import (
	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/domain"
)

// Vault is the holder recorded while the protocol custodies a token
const Vault = domain.Address("vault")

// Holding records who currently holds one token of an NFT contract
type Holding struct {
	Contract domain.Address `json:"contract" bson:"contract"`
	TokenId  domain.TokenId `json:"tokenId" bson:"tokenId"`
	Holder   domain.Address `json:"holder" bson:"holder"`
}

type HoldingRepo interface {
	FindOne(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId) (*Holding, error)
	Upsert(c ctx.Ctx, holding *Holding) error
}

// Service is the NFT-custody collaborator. Transfer fails with
// domain.ErrUnauthorized when from does not hold the token; failures must
// abort the surrounding invocation.
type Service interface {
	Transfer(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId, from, to domain.Address) error
	Holder(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId) (domain.Address, error)
}
