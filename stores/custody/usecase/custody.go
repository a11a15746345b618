package usecase

import (
	"math/big"

	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/base/log"
	"github.com/x-xyz/lendapi/domain"
	"github.com/x-xyz/lendapi/domain/custody"
	"github.com/x-xyz/lendapi/service/chain/contract"
)

type CustodyCfg struct {
	Holdings custody.HoldingRepo
	// Erc721 is optional. When set, a transfer out of an unknown token first
	// checks on-chain ownership before seeding the holding record.
	Erc721  contract.Erc721Contract
	ChainId int32
}

type impl struct {
	holdings custody.HoldingRepo
	erc721   contract.Erc721Contract
	chainId  int32
}

func New(cfg *CustodyCfg) custody.Service {
	return &impl{
		holdings: cfg.Holdings,
		erc721:   cfg.Erc721,
		chainId:  cfg.ChainId,
	}
}

func (im *impl) Transfer(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId, from, to domain.Address) error {
	holder, err := im.Holder(c, contract, tokenId)
	if err != nil {
		return err
	}
	if !holder.Equals(from) {
		return domain.ErrUnauthorized
	}
	holding := &custody.Holding{
		Contract: contract.ToLower(),
		TokenId:  tokenId,
		Holder:   to.ToLower(),
	}
	if err := im.holdings.Upsert(c, holding); err != nil {
		c.WithFields(log.Fields{"err": err, "contract": contract, "tokenId": tokenId}).Error("holdings.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) Holder(c ctx.Ctx, contract domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	holding, err := im.holdings.FindOne(c, contract, tokenId)
	if err == nil {
		return holding.Holder, nil
	}
	if err != domain.ErrNotFound {
		c.WithFields(log.Fields{"err": err, "contract": contract, "tokenId": tokenId}).Error("holdings.FindOne failed")
		return "", err
	}

	if im.erc721 == nil {
		return "", domain.ErrNotFound
	}

	id, ok := new(big.Int).SetString(string(tokenId), 10)
	if !ok {
		return "", domain.ErrBadParamInput
	}
	owner, err := im.erc721.OwnerOf(c, im.chainId, contract.ToLowerStr(), id)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "contract": contract, "tokenId": tokenId}).Error("erc721.OwnerOf failed")
		return "", err
	}
	return domain.Address(owner).ToLower(), nil
}
