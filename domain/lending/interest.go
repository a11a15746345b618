package lending

import (
	"math"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AmountDue returns principal plus interest accrued over elapsed loan time.
//
// The per-collection apy and the global interest parameter are summed into a
// single percentage rate, prorated linearly over the elapsed fraction of the
// collection's maturity window. Elapsed time is capped at the window, so the
// amount owed stops growing at maturity. The interest part is rounded up to
// the next whole unit; the result is never below principal and never
// decreases as elapsed grows.
func AmountDue(principal uint64, collection *NFTCollection, interest uint64, elapsed time.Duration) uint64 {
	if elapsed < 0 {
		elapsed = 0
	}

	elapsedSecs := int64(elapsed / time.Second)
	maxTime := int64(collection.MaxTime)
	if elapsedSecs > maxTime {
		elapsedSecs = maxTime
	}

	p := decimal.NewFromBigInt(new(big.Int).SetUint64(principal), 0)
	rate := decimal.NewFromBigInt(new(big.Int).SetUint64(collection.Apy), 0).
		Add(decimal.NewFromBigInt(new(big.Int).SetUint64(interest), 0)).
		Div(hundred)
	fraction := decimal.NewFromInt(elapsedSecs).Div(decimal.NewFromInt(maxTime))

	accrued := p.Mul(rate).Mul(fraction).Ceil()

	// saturate instead of wrapping, the amount owed must never fall below
	// principal
	total := p.Add(accrued).BigInt()
	if !total.IsUint64() {
		return math.MaxUint64
	}
	return total.Uint64()
}

// Matured reports whether a loan started at start is past the collection's
// maturity window at now.
func Matured(collection *NFTCollection, start, now time.Time) bool {
	return now.Sub(start) >= time.Duration(collection.MaxTime)*time.Second
}
