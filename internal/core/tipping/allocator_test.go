package tipping_test

import (
	"testing"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	"github.com/SscSPs/tip_pooling_app/internal/core/tipping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipients(pairs ...string) []domain.PoolRecipient {
	out := make([]domain.PoolRecipient, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.PoolRecipient{UserID: domain.UserID(pairs[i]), HoursWorked: dec(pairs[i+1])})
	}
	return out
}

func amountsByUser(dists []domain.PoolDistribution) map[domain.UserID]string {
	out := make(map[domain.UserID]string, len(dists))
	for _, d := range dists {
		out[d.UserID] = d.DistributedAmount.StringFixed(2)
	}
	return out
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name       string
		total      string
		recipients []domain.PoolRecipient
		want       map[domain.UserID]string
	}{
		{
			name:       "even split",
			total:      "90.00",
			recipients: recipients("a", "10", "b", "20"),
			want:       map[domain.UserID]string{"a": "30.00", "b": "60.00"},
		},
		{
			name:       "one cent remainder goes to lowest id on a tie",
			total:      "100.00",
			recipients: recipients("c", "1", "a", "1", "b", "1"),
			want:       map[domain.UserID]string{"a": "33.34", "b": "33.33", "c": "33.33"},
		},
		{
			name:       "largest remainder wins before id order",
			total:      "10.00",
			recipients: recipients("a", "1", "b", "2"),
			want:       map[domain.UserID]string{"a": "3.33", "b": "6.67"},
		},
		{
			name:       "fractional hours",
			total:      "250.00",
			recipients: recipients("x", "7.5", "y", "4.25", "z", "0"),
			want:       map[domain.UserID]string{"x": "159.57", "y": "90.43", "z": "0.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tipping.Allocate(dec(tt.total), tt.recipients, tipping.DefaultPlaces)

			require.NoError(t, err)
			assert.Equal(t, tt.want, amountsByUser(got.Distributions))

			sum := decimal.Zero
			for i, d := range got.Distributions {
				assert.Equal(t, tt.recipients[i].UserID, d.UserID, "input order is kept")
				sum = sum.Add(d.DistributedAmount)
			}
			assert.True(t, sum.Equal(dec(tt.total)), "distributed %s of %s", sum, tt.total)
		})
	}
}

func TestAllocate_ReconcilesAwkwardTotals(t *testing.T) {
	hours := recipients("a", "3.3", "b", "7.1", "c", "1.9", "d", "12", "e", "0.7", "f", "5.55", "g", "9")
	for _, total := range []string{"0.01", "0.05", "1.00", "99.99", "1234.57", "100000.03"} {
		got, err := tipping.Allocate(dec(total), hours, tipping.DefaultPlaces)
		require.NoError(t, err)

		sum := decimal.Zero
		for _, d := range got.Distributions {
			assert.False(t, d.DistributedAmount.IsNegative())
			sum = sum.Add(d.DistributedAmount)
		}
		assert.True(t, sum.Equal(dec(total)), "total %s distributed %s", total, sum)
	}
}

func TestAllocate_RatePerHour(t *testing.T) {
	got, err := tipping.Allocate(dec("100"), recipients("a", "1", "b", "2"), tipping.DefaultPlaces)

	require.NoError(t, err)
	assert.True(t, got.TotalHours.Equal(dec("3")))
	assert.Equal(t, "33.3333", got.RatePerHour.StringFixed(4))
}

func TestAllocate_Rejects(t *testing.T) {
	tests := []struct {
		name       string
		total      string
		recipients []domain.PoolRecipient
		wantErr    error
	}{
		{name: "no recipients", total: "50", recipients: nil, wantErr: apperrors.ErrNoPoolRecipients},
		{name: "no recipients is a zero hours pool", total: "50", recipients: nil, wantErr: apperrors.ErrZeroHoursPool},
		{name: "zero total hours", total: "50", recipients: recipients("a", "0", "b", "0"), wantErr: apperrors.ErrZeroHoursPool},
		{name: "zero total", total: "0", recipients: recipients("a", "1"), wantErr: apperrors.ErrValidation},
		{name: "negative hours", total: "50", recipients: recipients("a", "-1", "b", "3"), wantErr: apperrors.ErrValidation},
		{name: "duplicate recipient", total: "50", recipients: recipients("a", "1", "a", "3"), wantErr: apperrors.ErrValidation},
		{name: "sub-cent total", total: "10.005", recipients: recipients("a", "1"), wantErr: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tipping.Allocate(dec(tt.total), tt.recipients, tipping.DefaultPlaces)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
