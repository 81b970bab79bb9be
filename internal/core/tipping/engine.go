package tipping

import (
	"fmt"

	"github.com/SscSPs/tip_pooling_app/internal/apperrors"
	"github.com/SscSPs/tip_pooling_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecipientPolicy excludes roles from individual splits regardless of selection.
// A manager role never receives a share of a rule whose eligible roles include
// a back-of-house role.
type RecipientPolicy struct {
	ManagerRoles     []domain.Role
	BackOfHouseRoles []domain.Role
}

// Excludes reports whether a candidate holding role is barred from dist.
func (p RecipientPolicy) Excludes(role domain.Role, dist domain.Distribution) bool {
	if !containsRole(p.ManagerRoles, role) {
		return false
	}
	for _, eligible := range dist.EligibleRoles() {
		if containsRole(p.BackOfHouseRoles, eligible) {
			return true
		}
	}
	return false
}

func containsRole(roles []domain.Role, role domain.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// Policy holds the knobs of an evaluation.
type Policy struct {
	Places     int32
	Recipients RecipientPolicy
}

// DefaultPolicy rounds to cents and bars "gerant"/"manager" from kitchen rules.
func DefaultPolicy() Policy {
	return Policy{
		Places: DefaultPlaces,
		Recipients: RecipientPolicy{
			ManagerRoles:     []domain.Role{"gerant", "gérant", "manager"},
			BackOfHouseRoles: []domain.Role{"commis", "cuisinier", "chef", "plongeur"},
		},
	}
}

// EvaluateInput is everything one cash-out evaluation needs, already resolved.
type EvaluateInput struct {
	Report              domain.CashOutReport
	Rules               []domain.TipOutRule
	Roster              domain.Roster
	RecipientSelections map[domain.RuleID][]domain.UserID
	Departments         map[domain.DepartmentID]domain.Department
	ManualAdjustments   []domain.ManualAdjustment
	Policy              Policy
}

// SkipReason says why an applicable rule produced no ledger lines.
type SkipReason string

const (
	SkipZeroAmount           SkipReason = "zero_amount"
	SkipNoEligibleRecipients SkipReason = "no_eligible_recipients"
)

// SkippedRule records an applicable rule that emitted nothing.
type SkippedRule struct {
	RuleID domain.RuleID
	Reason SkipReason
	Err    error // wraps apperrors.ErrNoEligibleRecipients for recipient skips
}

// Evaluation is the ledger produced for one report.
type Evaluation struct {
	Report      domain.CashOutReport
	Ledger      []domain.Adjustment
	DueBack     decimal.Decimal
	TotalTipOut decimal.Decimal
	Skipped     []SkippedRule
}

// Evaluate turns a report and the company's tip-out rules into a signed ledger
// and the cash the reporter owes back.
//
// Every applicable rule and manual line is validated before any line is
// emitted, so an error never comes with a partial ledger. The output is fully
// determined by the input.
func Evaluate(in EvaluateInput) (Evaluation, error) {
	report := in.Report.Normalized()
	if err := report.Validate(); err != nil {
		return Evaluation{}, err
	}
	if !report.WasCollector {
		return Evaluation{Report: report, Ledger: []domain.Adjustment{}, DueBack: decimal.Zero, TotalTipOut: decimal.Zero}, nil
	}

	applicable := make([]domain.TipOutRule, 0, len(in.Rules))
	for _, rule := range in.Rules {
		if !rule.AppliesTo(report.ReporterRole) {
			continue
		}
		if err := validateRule(rule, in.Departments); err != nil {
			return Evaluation{}, err
		}
		applicable = append(applicable, rule)
	}
	for i, m := range in.ManualAdjustments {
		if err := m.Validate(); err != nil {
			return Evaluation{}, fmt.Errorf("manual adjustment %d: %w", i, err)
		}
	}

	places := in.Policy.Places
	ledger := make([]domain.Adjustment, 0)
	var skipped []SkippedRule
	deducted := decimal.Zero

	for _, rule := range applicable {
		ruleAmount := rule.Amount.Compute(rule.BasisValue(report)).Round(places)
		if !ruleAmount.IsPositive() {
			skipped = append(skipped, SkippedRule{RuleID: rule.RuleID, Reason: SkipZeroAmount})
			continue
		}

		switch rule.Distribution.Kind() {
		case domain.DistributionIndividual:
			recipients := resolveRecipients(rule, in.RecipientSelections[rule.RuleID], in.Roster, in.Policy.Recipients)
			if len(recipients) == 0 {
				skipped = append(skipped, SkippedRule{
					RuleID: rule.RuleID,
					Reason: SkipNoEligibleRecipients,
					Err:    fmt.Errorf("rule %s: %w", rule.RuleID, apperrors.ErrNoEligibleRecipients),
				})
				continue
			}
			credits, err := equalSplit(ruleAmount, recipients, places)
			if err != nil {
				return Evaluation{}, fmt.Errorf("rule %s: %w", rule.RuleID, err)
			}
			ledger = append(ledger, deductionLine(rule.RuleID, report.ReporterID, ruleAmount))
			for i, recipient := range recipients {
				ledger = append(ledger, creditLine(rule.RuleID, recipient, credits[i]))
			}
		case domain.DistributionDepartment:
			ledger = append(ledger, deductionLine(rule.RuleID, report.ReporterID, ruleAmount))
		}
		deducted = deducted.Add(ruleAmount)
	}

	dueBack := deducted.Add(report.CashOnHand)
	for _, m := range in.ManualAdjustments {
		ledger = append(ledger, domain.Adjustment{
			Type:          m.Type,
			Amount:        m.Amount,
			UserID:        report.ReporterID,
			RelatedUserID: copyUserID(m.RelatedUserID),
			Note:          m.Note,
		})
		dueBack = dueBack.Sub(m.Amount)
	}

	return Evaluation{
		Report:      report,
		Ledger:      ledger,
		DueBack:     dueBack,
		TotalTipOut: deducted,
		Skipped:     skipped,
	}, nil
}

// Restate rebuilds the evaluation of a stored report from its persisted ledger.
// Skipped rules are not recorded and cannot be restated.
func Restate(report domain.CashOutReport, ledger []domain.Adjustment) Evaluation {
	report = report.Normalized()
	deducted := decimal.Zero
	for _, line := range ledger {
		if line.Type == domain.AdjustmentTipOutAutomatic && line.IsDeduction() {
			deducted = deducted.Add(line.Amount.Abs())
		}
	}
	return Evaluation{
		Report:      report,
		Ledger:      ledger,
		DueBack:     DueBack(report, ledger),
		TotalTipOut: deducted,
	}
}

// DueBack recomputes what a collector owes from a stored report and ledger.
func DueBack(report domain.CashOutReport, ledger []domain.Adjustment) decimal.Decimal {
	report = report.Normalized()
	if !report.WasCollector {
		return decimal.Zero
	}
	due := report.CashOnHand
	for _, line := range ledger {
		switch {
		case line.Type.IsManual():
			due = due.Sub(line.Amount)
		case line.Type == domain.AdjustmentTipOutAutomatic && line.IsDeduction():
			due = due.Add(line.Amount.Abs())
		}
	}
	return due
}

func validateRule(rule domain.TipOutRule, departments map[domain.DepartmentID]domain.Department) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	if rule.Distribution.Kind() != domain.DistributionDepartment {
		return nil
	}
	dept, ok := departments[rule.Distribution.Destination()]
	if !ok {
		return fmt.Errorf("%w: rule %s targets unknown department %s",
			apperrors.ErrInvalidRuleConfiguration, rule.RuleID, rule.Distribution.Destination())
	}
	if err := dept.ValidateDistribution(); err != nil {
		return fmt.Errorf("rule %s: %w", rule.RuleID, err)
	}
	return nil
}

// resolveRecipients keeps, in selection order and without duplicates, the
// candidates present in the roster with an eligible, non-excluded role.
func resolveRecipients(rule domain.TipOutRule, candidates []domain.UserID, roster domain.Roster, policy RecipientPolicy) []domain.UserID {
	seen := make(map[domain.UserID]struct{}, len(candidates))
	recipients := make([]domain.UserID, 0, len(candidates))
	for _, id := range candidates {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		entry, ok := roster[id]
		if !ok {
			continue
		}
		if !rule.Distribution.AllowsRole(entry.Role) || policy.Excludes(entry.Role, rule.Distribution) {
			continue
		}
		recipients = append(recipients, id)
	}
	return recipients
}

func equalSplit(amount decimal.Decimal, recipients []domain.UserID, places int32) ([]decimal.Decimal, error) {
	keys := make([]string, len(recipients))
	weights := make([]decimal.Decimal, len(recipients))
	one := decimal.NewFromInt(1)
	for i, id := range recipients {
		keys[i] = string(id)
		weights[i] = one
	}
	return splitByWeight(amount, keys, weights, places)
}

func deductionLine(ruleID domain.RuleID, reporter domain.UserID, amount decimal.Decimal) domain.Adjustment {
	id := ruleID
	return domain.Adjustment{
		Type:   domain.AdjustmentTipOutAutomatic,
		Amount: amount.Neg(),
		RuleID: &id,
		UserID: reporter,
	}
}

func creditLine(ruleID domain.RuleID, recipient domain.UserID, amount decimal.Decimal) domain.Adjustment {
	id := ruleID
	related := recipient
	return domain.Adjustment{
		Type:          domain.AdjustmentTipOutAutomatic,
		Amount:        amount,
		RuleID:        &id,
		UserID:        recipient,
		RelatedUserID: &related,
	}
}

func copyUserID(id *domain.UserID) *domain.UserID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
