// Package tipping holds the tip distribution algorithms: cash-out rule
// evaluation, pay-period aggregation and hours-weighted pool allocation.
//
// Everything here is a pure function of its inputs. Callers resolve rules,
// rosters and departments beforehand and persist the results afterwards.
package tipping

import (
	"fmt"
	"sort"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DefaultPlaces is the number of decimal places of the currency's minimum unit.
const DefaultPlaces int32 = 2

type share struct {
	key       string
	index     int
	quotient  decimal.Decimal
	remainder decimal.Decimal
}

// splitByWeight divides total into len(weights) parts proportional to weights,
// each a whole number of minimum units, summing exactly to total.
//
// Parts are first floored, then the leftover units go one by one to the parts
// with the largest remainder, ties broken by ascending key. All arithmetic is
// on integers so the result does not depend on division precision.
func splitByWeight(total decimal.Decimal, keys []string, weights []decimal.Decimal, places int32) ([]decimal.Decimal, error) {
	if len(keys) != len(weights) {
		return nil, fmt.Errorf("split: %d keys for %d weights", len(keys), len(weights))
	}
	if total.IsNegative() {
		return nil, fmt.Errorf("%w: cannot split negative amount %s", apperrors.ErrValidation, total)
	}
	units := total.Shift(places)
	if !units.Equal(units.Truncate(0)) {
		return nil, fmt.Errorf("%w: amount %s has more than %d decimal places", apperrors.ErrValidation, total, places)
	}

	var scale int32
	for _, w := range weights {
		if w.IsNegative() {
			return nil, fmt.Errorf("%w: negative weight %s", apperrors.ErrValidation, w)
		}
		if exp := -w.Exponent(); exp > scale {
			scale = exp
		}
	}

	scaled := make([]decimal.Decimal, len(weights))
	weightSum := decimal.Zero
	for i, w := range weights {
		scaled[i] = w.Shift(scale)
		weightSum = weightSum.Add(scaled[i])
	}
	if weightSum.IsZero() {
		return nil, fmt.Errorf("%w: weights sum to zero", apperrors.ErrValidation)
	}

	shares := make([]share, len(weights))
	distributed := decimal.Zero
	for i := range scaled {
		q, r := units.Mul(scaled[i]).QuoRem(weightSum, 0)
		shares[i] = share{key: keys[i], index: i, quotient: q, remainder: r}
		distributed = distributed.Add(q)
	}

	leftover := units.Sub(distributed).IntPart()
	if leftover > 0 {
		order := make([]share, len(shares))
		copy(order, shares)
		sort.SliceStable(order, func(a, b int) bool {
			if c := order[a].remainder.Cmp(order[b].remainder); c != 0 {
				return c > 0
			}
			return order[a].key < order[b].key
		})
		for i := int64(0); i < leftover; i++ {
			idx := order[i].index
			shares[idx].quotient = shares[idx].quotient.Add(decimal.NewFromInt(1))
		}
	}

	parts := make([]decimal.Decimal, len(shares))
	for i, s := range shares {
		parts[i] = s.quotient.Shift(-places)
	}
	return parts, nil
}
