// Package model defines the core value types shared across the statement
// parsing pipeline: transactions, pages, and document metadata.
package model

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Polarity markers that may appear next to an amount on a statement line.
const (
	PolarityCredit = "CR"
	PolarityDebit  = "DR"
	PolarityPlus   = "+"
	PolarityMinus  = "-"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	amountJunk    = regexp.MustCompile(`[^\d.\-]`)
)

// Transaction is a single posted entry on a statement.
//
// Date holds the raw captured string until the pipeline rewrites it to
// ISO-8601 form. Amount is signed: negative means money leaving the
// account holder, per the auto-polarity convention.
type Transaction struct {
	Date        string          `csv:"date"`
	Description string          `csv:"description"`
	Amount      decimal.Decimal `csv:"amount"`
	Polarity    string          `csv:"-"`
}

// NewTransaction builds a Transaction from raw captured fields, applying
// the coercion rules for amounts and descriptions.
//
// The raw amount is stripped of everything except digits, dot and minus.
// An amount wrapped in parentheses is a credit and forces polarity CR.
// When autoPolarity is set, polarity CR/+ makes the amount positive and
// anything else makes it negative; a zero amount is left untouched so we
// never emit negative zero.
//
// Patterns match case-insensitively, so a captured marker is folded to
// upper case before it drives the sign.
func NewTransaction(date, description, amount, polarity string, autoPolarity bool) (Transaction, error) {
	polarity = strings.ToUpper(strings.TrimSpace(polarity))
	if strings.HasPrefix(strings.TrimSpace(amount), "(") {
		polarity = PolarityCredit
	}

	cleaned := amountJunk.ReplaceAllString(amount, "")
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Transaction{}, err
	}

	if autoPolarity && !value.IsZero() {
		switch polarity {
		case PolarityCredit, PolarityPlus:
			value = value.Abs()
		default:
			value = value.Abs().Neg()
		}
	}

	return Transaction{
		Date:        strings.TrimSpace(date),
		Description: CollapseWhitespace(description),
		Amount:      value,
		Polarity:    polarity,
	}, nil
}

// CollapseWhitespace trims a string and squeezes internal whitespace runs
// down to single spaces.
func CollapseWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(s), " ")
}
