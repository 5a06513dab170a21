// Package bank holds the declarative catalog of supported issuers: the
// per-bank statement configurations, the identifiers used to recognize a
// document, and the registry + detector that tie them together.
package bank

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mleung/banknote/internal/patterns"
)

// StatementType distinguishes card statements from account statements.
type StatementType string

// Statement types.
const (
	TypeCredit StatementType = "credit"
	TypeDebit  StatementType = "debit"
)

// MultilineConfig controls how the extractor joins information spread
// over several physical lines.
type MultilineConfig struct {
	Descriptions    bool
	Polarity        bool
	TransactionDate bool
	StatementDate   bool

	// DescriptionMargin is the column-alignment tolerance for
	// continuation lines. Zero means the extractor default.
	DescriptionMargin int

	// IncludePrevMargin, when positive, also joins the line above the
	// match if its first word starts within this many columns of the
	// description.
	IncludePrevMargin int
}

// PDFConfig is passed through to the PDF collaborator when loading a
// document for this bank.
type PDFConfig struct {
	// PageStart/PageEnd bound the pages to parse; nil means open-ended.
	PageStart *int
	PageEnd   *int

	// PageBBox clips each page to (left, top, right, bottom) before
	// text extraction.
	PageBBox *[4]float64

	RemoveVerticalText bool

	// OCRIdentifiers name identifier groups that require OCR to appear.
	// OCR itself is the collaborator's duty; the groups are recorded so
	// the driver can surface the requirement.
	OCRIdentifiers [][]Identifier
}

// StatementConfig is the declarative parsing contract for one statement
// variant of a bank.
type StatementConfig struct {
	Type StatementType

	// TransactionPattern must define named groups "description" and
	// "amount"; "transaction_date", "posting_date", "polarity",
	// "balance" and "suffix" are optional.
	TransactionPattern string

	// StatementDatePattern yields either a single captured date string
	// or named day/month/year groups.
	StatementDatePattern string

	StatementDateOrder   patterns.DateOrder
	TransactionDateOrder patterns.DateOrder

	// TransactionDateFormat is the canonical form of the transaction
	// date when the pattern omits a year, e.g. "02 Jan".
	TransactionDateFormat string

	// HeaderPattern locates the column-header line; debit statements
	// need it for withdrawal/deposit column geometry.
	HeaderPattern string

	// PrevBalancePattern captures a previous-statement-balance line to
	// inject as a synthetic first transaction.
	PrevBalancePattern string

	Multiline *MultilineConfig

	// TransactionBound, when positive, drops matches whose amount
	// starts at or beyond this column. Suppresses the second column of
	// side-by-side layouts.
	TransactionBound int

	// AutoPolarity derives the amount sign from the polarity marker.
	AutoPolarity bool

	// SafetyCheck reconciles parsed totals against numbers found
	// elsewhere in the document.
	SafetyCheck bool

	// FilenameFallbackPattern is applied to the file basename when the
	// content yields no statement date; it must capture (month)(year).
	FilenameFallbackPattern string

	// WithdrawDepositColumn marks debit layouts whose polarity comes
	// from which numeric column the amount sits under.
	WithdrawDepositColumn bool
}

// Compiled bundles a StatementConfig with its compiled regexes.
type Compiled struct {
	StatementConfig

	Transaction      *regexp.Regexp
	StatementDate    *regexp.Regexp
	Header           *regexp.Regexp
	PrevBalance      *regexp.Regexp
	FilenameFallback *regexp.Regexp
}

// Compile validates the config and compiles every pattern with
// case-insensitive matching. Registration calls this eagerly, so a
// registered bank's configs never fail at runtime.
func (c StatementConfig) Compile() (*Compiled, error) {
	if c.Type != TypeCredit && c.Type != TypeDebit {
		return nil, fmt.Errorf("invalid statement type %q", c.Type)
	}

	out := &Compiled{StatementConfig: c}

	var err error
	if out.Transaction, err = compileInsensitive(c.TransactionPattern); err != nil {
		return nil, fmt.Errorf("transaction pattern: %w", err)
	}
	if err := requireGroups(out.Transaction, "description", "amount"); err != nil {
		return nil, fmt.Errorf("transaction pattern: %w", err)
	}

	if out.StatementDate, err = compileInsensitive(c.StatementDatePattern); err != nil {
		return nil, fmt.Errorf("statement date pattern: %w", err)
	}

	if c.HeaderPattern != "" {
		if out.Header, err = compileInsensitive(c.HeaderPattern); err != nil {
			return nil, fmt.Errorf("header pattern: %w", err)
		}
	}
	if c.PrevBalancePattern != "" {
		if out.PrevBalance, err = compileInsensitive(c.PrevBalancePattern); err != nil {
			return nil, fmt.Errorf("previous balance pattern: %w", err)
		}
	}
	if c.FilenameFallbackPattern != "" {
		if out.FilenameFallback, err = compileInsensitive(c.FilenameFallbackPattern); err != nil {
			return nil, fmt.Errorf("filename fallback pattern: %w", err)
		}
	}
	return out, nil
}

func compileInsensitive(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("empty pattern")
	}
	if !strings.HasPrefix(pattern, "(?i)") {
		pattern = "(?i)" + pattern
	}
	return regexp.Compile(pattern)
}

func requireGroups(re *regexp.Regexp, names ...string) error {
	have := make(map[string]bool)
	for _, n := range re.SubexpNames() {
		if n != "" {
			have[n] = true
		}
	}
	for _, n := range names {
		if !have[n] {
			return fmt.Errorf("missing named group %q", n)
		}
	}
	return nil
}

// GroupIndex returns the submatch index of a named group, or -1.
func GroupIndex(re *regexp.Regexp, name string) int {
	for i, n := range re.SubexpNames() {
		if n == name {
			return i
		}
	}
	return -1
}
