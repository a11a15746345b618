package lending

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func yearCollection() *NFTCollection {
	return &NFTCollection{
		CollectionId: 1,
		Collection:   "Collection1",
		Contract:     "contract1",
		Apy:          5,
		MaxTime:      3600 * 24 * 365,
		FloorPrice:   100,
	}
}

func TestAmountDueAtZeroElapsed(t *testing.T) {
	req := require.New(t)

	req.Equal(uint64(50), AmountDue(50, yearCollection(), 80, 0))
	req.Equal(uint64(0), AmountDue(0, yearCollection(), 80, 0))
}

func TestAmountDueHalfway(t *testing.T) {
	req := require.New(t)

	// 50 principal, 85% combined rate, 180 of 365 days elapsed:
	// 50 * 0.85 * 180/365 = 20.95..., rounded up to 21
	due := AmountDue(50, yearCollection(), 80, 180*24*time.Hour)
	req.Equal(uint64(71), due)
}

func TestAmountDueMonotonic(t *testing.T) {
	req := require.New(t)

	coll := yearCollection()
	prev := uint64(0)
	for day := 0; day <= 400; day += 5 {
		due := AmountDue(1000, coll, 80, time.Duration(day)*24*time.Hour)
		req.GreaterOrEqual(due, prev, "amount due decreased at day %d", day)
		req.GreaterOrEqual(due, uint64(1000))
		prev = due
	}
}

func TestAmountDueCappedAtMaturity(t *testing.T) {
	req := require.New(t)

	coll := yearCollection()
	atMaturity := AmountDue(1000, coll, 80, 365*24*time.Hour)
	past := AmountDue(1000, coll, 80, 1000*24*time.Hour)

	// full rate: 1000 * 0.85 = 850
	req.Equal(uint64(1850), atMaturity)
	req.Equal(atMaturity, past)
}

func TestAmountDueShortWindow(t *testing.T) {
	req := require.New(t)

	coll := &NFTCollection{
		CollectionId: 2,
		Collection:   "Collection2",
		Contract:     "contract2",
		Apy:          7,
		MaxTime:      130,
		FloorPrice:   150,
	}

	// 65 of 130 seconds, 87% combined rate: 200 * 0.87 * 0.5 = 87
	req.Equal(uint64(287), AmountDue(200, coll, 80, 65*time.Second))
}

func TestAmountDueSaturatesNearMaxPrincipal(t *testing.T) {
	req := require.New(t)

	coll := yearCollection()
	principal := uint64(math.MaxUint64)

	// accrual past the uint64 range saturates, the amount owed never drops
	// below principal
	req.Equal(uint64(math.MaxUint64), AmountDue(principal, coll, 80, 365*24*time.Hour))

	prev := uint64(0)
	for day := 0; day <= 400; day += 50 {
		due := AmountDue(principal, coll, 80, time.Duration(day)*24*time.Hour)
		req.GreaterOrEqual(due, principal, "amount due fell below principal at day %d", day)
		req.GreaterOrEqual(due, prev, "amount due decreased at day %d", day)
		prev = due
	}
}

func TestMatured(t *testing.T) {
	req := require.New(t)

	coll := yearCollection()
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	req.False(Matured(coll, start, start))
	req.False(Matured(coll, start, start.Add(364*24*time.Hour)))
	req.True(Matured(coll, start, start.Add(365*24*time.Hour)))
	req.True(Matured(coll, start, start.Add(400*24*time.Hour)))
}
