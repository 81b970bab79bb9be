package tipping

import (
	"fmt"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ratePlaces is the display precision of the per-hour rate.
const ratePlaces int32 = 4

// Allocation is the result of splitting a pool across recipients.
type Allocation struct {
	Distributions []domain.PoolDistribution
	TotalHours    decimal.Decimal
	RatePerHour   decimal.Decimal // informational, amounts are not derived from it
}

// Allocate splits total across recipients proportional to hours worked.
// The distributions are returned in input order and sum exactly to total.
func Allocate(total decimal.Decimal, recipients []domain.PoolRecipient, places int32) (Allocation, error) {
	if !total.IsPositive() {
		return Allocation{}, fmt.Errorf("%w: pool total must be positive, got %s", apperrors.ErrValidation, total)
	}
	if len(recipients) == 0 {
		return Allocation{}, fmt.Errorf("%w: %w", apperrors.ErrZeroHoursPool, apperrors.ErrNoPoolRecipients)
	}

	keys := make([]string, len(recipients))
	hours := make([]decimal.Decimal, len(recipients))
	totalHours := decimal.Zero
	seen := make(map[domain.UserID]struct{}, len(recipients))
	for i, r := range recipients {
		if r.UserID == "" {
			return Allocation{}, fmt.Errorf("%w: recipient %d has no user id", apperrors.ErrValidation, i)
		}
		if _, dup := seen[r.UserID]; dup {
			return Allocation{}, fmt.Errorf("%w: recipient %s listed twice", apperrors.ErrValidation, r.UserID)
		}
		seen[r.UserID] = struct{}{}
		if r.HoursWorked.IsNegative() {
			return Allocation{}, fmt.Errorf("%w: recipient %s has negative hours %s", apperrors.ErrValidation, r.UserID, r.HoursWorked)
		}
		keys[i] = string(r.UserID)
		hours[i] = r.HoursWorked
		totalHours = totalHours.Add(r.HoursWorked)
	}
	if totalHours.IsZero() {
		return Allocation{}, fmt.Errorf("%w: %d recipients worked no hours", apperrors.ErrZeroHoursPool, len(recipients))
	}

	amounts, err := splitByWeight(total, keys, hours, places)
	if err != nil {
		return Allocation{}, err
	}

	dists := make([]domain.PoolDistribution, len(recipients))
	for i, r := range recipients {
		dists[i] = domain.PoolDistribution{
			UserID:            r.UserID,
			HoursWorked:       r.HoursWorked,
			DistributedAmount: amounts[i],
		}
	}

	return Allocation{
		Distributions: dists,
		TotalHours:    totalHours,
		RatePerHour:   total.Div(totalHours).Round(ratePlaces),
	}, nil
}
