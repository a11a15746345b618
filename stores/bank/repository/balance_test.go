package repository

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/lendapi/base/ctx"
	"github.com/x-xyz/lendapi/domain"
)

func TestBalanceAmountAboveInt64Rejected(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	// amounts above the signed range would flip sign inside $inc; rejected
	// before any update is issued
	im := &balanceImpl{}

	req.Equal(domain.ErrBadParamInput, im.Credit(c, "0xabc", "SEI", math.MaxInt64+1))
	req.Equal(domain.ErrBadParamInput, im.Debit(c, "0xabc", "SEI", math.MaxUint64))
}
