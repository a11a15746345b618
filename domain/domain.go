package domain

import (
	"strings"
	"time"

	"github.com/x-xyz/lendapi/base/ctx"
)

// Table is a mongo collection name
type Table string

const (
	TableOffers          Table = "offers"
	TableNftCollections  Table = "nft_collections"
	TableContractConfigs Table = "contract_configs"
	TableCounters        Table = "counters"
	TableBalances        Table = "balances"
	TableCustodyHoldings Table = "custody_holdings"
)

// Address is a lowercased account identity
type Address string

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

type CollectionId uint64

type OfferId uint64

// Coin is an amount of a single denomination attached to a request
type Coin struct {
	Denom  string `json:"denom" bson:"denom" validate:"required"`
	Amount uint64 `json:"amount" bson:"amount"`
}

// Clock supplies the invocation time. The state machine reads it exactly once
// per invocation and treats the value as authoritative.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock used in production wiring.
var SystemClock Clock = systemClock{}

// UnitOfWork runs fn so that every mutation inside either commits in full or
// is discarded in full.
type UnitOfWork interface {
	Run(c ctx.Ctx, fn func(ctx.Ctx) error) error
}
