package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountSpec_Constructors(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (domain.AmountSpec, error)
		wantErr bool
	}{
		{name: "percentage in range", build: func() (domain.AmountSpec, error) { return domain.NewPercentageAmount(decimal.NewFromInt(15)) }},
		{name: "percentage zero", build: func() (domain.AmountSpec, error) { return domain.NewPercentageAmount(decimal.Zero) }},
		{name: "percentage hundred", build: func() (domain.AmountSpec, error) { return domain.NewPercentageAmount(decimal.NewFromInt(100)) }},
		{name: "percentage above hundred", build: func() (domain.AmountSpec, error) { return domain.NewPercentageAmount(decimal.NewFromInt(101)) }, wantErr: true},
		{name: "negative percentage", build: func() (domain.AmountSpec, error) { return domain.NewPercentageAmount(decimal.NewFromInt(-1)) }, wantErr: true},
		{name: "flat positive", build: func() (domain.AmountSpec, error) { return domain.NewFlatAmount(decimal.RequireFromString("4.50")) }},
		{name: "flat zero", build: func() (domain.AmountSpec, error) { return domain.NewFlatAmount(decimal.Zero) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidRuleConfiguration)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAmountSpec_ZeroValueIsInvalid(t *testing.T) {
	var a domain.AmountSpec
	assert.ErrorIs(t, a.Validate(), apperrors.ErrInvalidRuleConfiguration)
}

func TestAmountSpec_Compute(t *testing.T) {
	p, err := domain.NewPercentageAmount(decimal.NewFromInt(10))
	require.NoError(t, err)
	f, err := domain.NewFlatAmount(decimal.NewFromInt(5))
	require.NoError(t, err)

	assert.True(t, p.Compute(decimal.NewFromInt(250)).Equal(decimal.NewFromInt(25)))
	assert.True(t, f.Compute(decimal.NewFromInt(250)).Equal(decimal.NewFromInt(5)))
}

func TestDistribution_Constructors(t *testing.T) {
	_, err := domain.NewIndividualSelection(nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRuleConfiguration)

	_, err = domain.NewDepartmentPool("")
	assert.ErrorIs(t, err, apperrors.ErrInvalidRuleConfiguration)

	roles := []domain.Role{"commis"}
	d, err := domain.NewIndividualSelection(roles)
	require.NoError(t, err)
	roles[0] = "gerant"
	assert.True(t, d.AllowsRole("commis"), "constructor copies the role slice")
	assert.False(t, d.AllowsRole("gerant"))
}

func TestTipOutRule_AppliesTo(t *testing.T) {
	barman := domain.Role("barman")
	anyone := domain.TipOutRule{}
	barOnly := domain.TipOutRule{SourceRole: &barman}

	assert.True(t, anyone.AppliesTo("serveur"))
	assert.True(t, barOnly.AppliesTo("barman"))
	assert.False(t, barOnly.AppliesTo("serveur"))
}

func TestTipOutRule_Validate(t *testing.T) {
	amount, _ := domain.NewFlatAmount(decimal.NewFromInt(3))
	dist, _ := domain.NewDepartmentPool("kitchen")

	valid := domain.TipOutRule{RuleID: "r", Basis: domain.BasisGrossTips, Amount: amount, Distribution: dist}
	assert.NoError(t, valid.Validate())

	badBasis := valid
	badBasis.Basis = "NET_SALES"
	assert.ErrorIs(t, badBasis.Validate(), apperrors.ErrInvalidRuleConfiguration)
}

func TestDepartment_ValidateDistribution(t *testing.T) {
	tests := []struct {
		name    string
		dist    map[domain.CategoryID]decimal.Decimal
		wantErr bool
	}{
		{name: "no categories", dist: nil},
		{name: "sums to 100", dist: map[domain.CategoryID]decimal.Decimal{"a": decimal.RequireFromString("62.5"), "b": decimal.RequireFromString("37.5")}},
		{name: "sums to 99.99", dist: map[domain.CategoryID]decimal.Decimal{"a": decimal.RequireFromString("66.66"), "b": decimal.RequireFromString("33.33")}, wantErr: true},
		{name: "negative share", dist: map[domain.CategoryID]decimal.Decimal{"a": decimal.NewFromInt(110), "b": decimal.NewFromInt(-10)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.Department{DepartmentID: "d", CategoryDistribution: tt.dist}.ValidateDistribution()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidRuleConfiguration)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDateRange(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, domain.DateRange{Start: start, End: start}.Validate())
	assert.ErrorIs(t, domain.DateRange{Start: end, End: start}.Validate(), apperrors.ErrDateRangeInvalid)

	r := domain.DateRange{Start: start, End: end}
	assert.True(t, r.Contains(start))
	assert.True(t, r.Contains(end.Add(23*time.Hour)))
	assert.False(t, r.Contains(end.AddDate(0, 0, 1)))
	assert.False(t, r.Contains(start.Add(-time.Minute)))
}

func TestCashOutReport_Normalized(t *testing.T) {
	r := domain.CashOutReport{
		FoodSales:    decimal.NewFromInt(10),
		AlcoholSales: decimal.NewFromInt(5),
		GrossTips:    decimal.NewFromInt(3),
		CashOnHand:   decimal.NewFromInt(2),
	}
	assert.True(t, r.TotalSales().Equal(decimal.NewFromInt(15)))

	n := r.Normalized()
	assert.True(t, n.TotalSales().IsZero())
	assert.True(t, n.CashOnHand.IsZero())

	r.WasCollector = true
	assert.Equal(t, r, r.Normalized())
}

func TestCashOutReport_ValidateNamesFirstNegativeFigure(t *testing.T) {
	r := domain.CashOutReport{
		ReporterID:   "u-1",
		ServiceDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		FoodSales:    decimal.NewFromInt(10),
		AlcoholSales: decimal.NewFromInt(-1),
		GrossTips:    decimal.NewFromInt(-2),
		CashOnHand:   decimal.NewFromInt(-3),
	}

	for i := 0; i < 20; i++ {
		err := r.Validate()
		require.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Contains(t, err.Error(), "alcoholSales")
	}
}
