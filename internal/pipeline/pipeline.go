// Package pipeline is the extract → transform → load facade over a
// detected bank and its extracted pages.
package pipeline

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mleung/banknote/internal/bank"
	"github.com/mleung/banknote/internal/model"
	"github.com/mleung/banknote/internal/patterns"
	"github.com/mleung/banknote/internal/statement"
)

// Result is one parsed statement ready for transformation and writing.
type Result struct {
	Statement    *statement.Statement
	Transactions []model.Transaction
	Date         time.Time
}

// Extract parses the pages under the bank's configs, resolves the
// statement date, and runs the safety check when both the caller and
// the config ask for it.
func Extract(b bank.Bank, pages []model.Page, path string, safetyCheck bool) (*Result, error) {
	st, txns, err := statement.FirstMatching(b, pages, path)
	if err != nil {
		return nil, err
	}

	date, err := st.Date()
	if err != nil {
		return nil, err
	}

	if safetyCheck && st.Config.SafetyCheck {
		if err := st.SafetyCheck(txns); err != nil {
			return nil, err
		}
	}

	slog.Info("extracted statement",
		"bank", b.Name,
		"type", string(st.Config.Type),
		"transactions", len(txns),
		"statement_date", date.Format("2006-01-02"))

	return &Result{Statement: st, Transactions: txns, Date: date}, nil
}

var (
	isoDate       = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	fourDigitYear = regexp.MustCompile(`(?:19|20)\d{2}`)
)

// Transform rewrites every transaction date to ISO-8601. Raw dates
// without a year borrow the statement year; December transactions on a
// January or February statement roll back one year. Running Transform
// twice is a no-op.
func Transform(r *Result) error {
	order := r.Statement.Config.TransactionDateOrder
	// A two-digit year ("01/02/24") is indistinguishable from a day or
	// month by inspection, so the config's date format decides whether
	// the raw already carries one.
	formatHasYear := strings.Contains(r.Statement.Config.TransactionDateFormat, "06")
	year := r.Date.Year()

	for i := range r.Transactions {
		raw := r.Transactions[i].Date
		if isoDate.MatchString(raw) {
			continue
		}

		var parsed time.Time
		var err error
		if fourDigitYear.MatchString(raw) || formatHasYear {
			parsed, err = patterns.ParseDate(raw, order)
		} else {
			parsed, err = parseWithYear(raw, order, year)
			if err == nil && crossYear(r.Date, parsed) {
				parsed = parsed.AddDate(-1, 0, 0)
			}
		}
		if err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
		r.Transactions[i].Date = parsed.Format("2006-01-02")
	}
	return nil
}

func parseWithYear(raw string, order patterns.DateOrder, year int) (time.Time, error) {
	y := strconv.Itoa(year)
	if order == patterns.YMD {
		return patterns.ParseDate(y+" "+raw, order)
	}
	return patterns.ParseDate(raw+" "+y, order)
}

// crossYear detects a December (or later-than-February) transaction
// carried on a January/February statement.
func crossYear(statementDate, txnDate time.Time) bool {
	return statementDate.Month() <= time.February && txnDate.Month() > time.February
}
