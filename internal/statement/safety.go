package statement

import (
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mleung/banknote/internal/bank"
	"github.com/mleung/banknote/internal/common"
	"github.com/mleung/banknote/internal/model"
)

// SafetyCheck reconciles the parsed transactions against the numbers
// printed elsewhere in the document. A missed or duplicated line makes
// the totals diverge from every printed figure.
func (s *Statement) SafetyCheck(txns []model.Transaction) error {
	if s.Config.Type == bank.TypeDebit {
		return s.debitSafetyCheck(txns)
	}
	return s.creditSafetyCheck(txns)
}

// creditSafetyCheck requires the rounded sum of absolute amounts to
// appear among the document's numbers.
func (s *Statement) creditSafetyCheck(txns []model.Transaction) error {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Amount.Abs())
	}
	total = total.Round(2)

	if containsNumber(s.Numbers(), total) {
		return nil
	}
	slog.Warn("credit safety check failed", "total", total.StringFixed(2))
	return &common.SafetyCheckError{Expected: []string{total.StringFixed(2)}}
}

// debitSafetyCheck requires the totals of both sides, deposits and
// withdrawals, to appear among the document's numbers. Zero passes
// implicitly so an all-one-sided statement still reconciles.
func (s *Statement) debitSafetyCheck(txns []model.Transaction) error {
	inflow, outflow := decimal.Zero, decimal.Zero
	for _, t := range txns {
		if t.Amount.IsPositive() {
			inflow = inflow.Add(t.Amount)
		} else {
			outflow = outflow.Add(t.Amount.Abs())
		}
	}
	inflow = inflow.Round(2)
	outflow = outflow.Round(2)

	var missing []string
	for _, total := range []decimal.Decimal{inflow, outflow} {
		if total.IsZero() || containsNumber(s.Numbers(), total) {
			continue
		}
		missing = append(missing, total.StringFixed(2))
	}
	if len(missing) == 0 {
		return nil
	}
	slog.Warn("debit safety check failed", "missing", missing)
	return &common.SafetyCheckError{Expected: missing}
}
