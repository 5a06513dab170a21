// Package patterns is the shared regex library for statement parsing.
//
// Fragments come in three layers: atoms (day, month, year alternations),
// date templates composed from atoms, and shared parts (amounts,
// descriptions, polarity markers). Bank configurations interpolate the
// string forms; the generic analyzer uses the compiled forms.
package patterns

import "regexp"

// Atoms. Alternations are explicit so a template never matches an
// impossible literal like day 39 or month 17.
const (
	DD   = `(?:3[01]|[12][0-9]|0?[1-9])`
	MM   = `(?:1[0-2]|0?[1-9])`
	YY   = `(?:[0-9]{2})`
	YYYY = `(?:20[0-9]{2}|19[0-9]{2})`
	MMM  = `(?:jan|feb|mar|apr|may|jun|jul|aug|sept?|oct|nov|dec)`
	MMMM = `(?:january|february|march|april|may|june|july|august|september|october|november|december)`

	// sep joins date components: slash, dash or whitespace.
	sep = `[\/\-\s]+`
)

// Date templates.
const (
	DDMM     = DD + sep + MM
	DDMMYY   = DD + sep + MM + sep + YY
	DDMMYYYY = DD + sep + MM + sep + YYYY

	DDMMM     = DD + sep + MMM
	DDMMMYY   = DD + sep + MMM + sep + YY
	DDMMMYYYY = DD + sep + MMM + sep + YYYY

	MMMDD     = MMM + sep + DD
	MMMDDYYYY = MMM + sep + DD + `[,\s]+` + YYYY

	MMMMDDYYYY = MMMM + sep + DD + `[,\s]+` + YYYY
)

// Shared parts.
const (
	// Amount is a comma-thousands decimal, optionally parenthesized.
	// Parentheses mark credits on some card statements.
	Amount = `(?P<amount>\(?[\d,]+\.\d+\)?)`

	// Balance is the optional running-balance column on debit
	// statements, including its separating whitespace.
	Balance = `(?:\s+(?P<balance>\-?[\d,]+\.\d+))?`

	// Description is non-greedy free text up to the next whitespace run.
	Description = `(?P<description>.*?)\s+`

	// Polarity is an optional textual sign marker after the amount.
	Polarity = `(?:\s*(?P<polarity>CR|DR|\+|\-))?`
)

// TemplateNames lists the date templates in scan order for the generic
// analyzer. Longer, more specific templates come first so a tie on
// occurrence counts prefers the richer capture.
var TemplateNames = []string{
	"mmmm_dd_yyyy",
	"mmm_dd_yyyy",
	"dd_mmm_yyyy",
	"dd_mm_yyyy",
	"dd_mmm_yy",
	"dd_mm_yy",
	"mmm_dd",
	"dd_mmm",
	"dd_mm",
}

// Templates maps template names to their pattern strings.
var Templates = map[string]string{
	"dd_mm":        DDMM,
	"dd_mm_yy":     DDMMYY,
	"dd_mm_yyyy":   DDMMYYYY,
	"dd_mmm":       DDMMM,
	"dd_mmm_yy":    DDMMMYY,
	"dd_mmm_yyyy":  DDMMMYYYY,
	"mmm_dd":       MMMDD,
	"mmm_dd_yyyy":  MMMDDYYYY,
	"mmmm_dd_yyyy": MMMMDDYYYY,
}

// Compiled returns the case-insensitive compiled form of a template,
// anchored on word boundaries so dates are not carved out of longer
// digit runs.
func Compiled(name string) *regexp.Regexp {
	return compiledTemplates[name]
}

var compiledTemplates = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(Templates))
	for name, pat := range Templates {
		m[name] = regexp.MustCompile(`(?i)\b` + pat + `\b`)
	}
	return m
}()

// TemplateOrder reports the component order a template's dates follow.
func TemplateOrder(name string) DateOrder {
	switch name {
	case "mmm_dd", "mmm_dd_yyyy", "mmmm_dd_yyyy":
		return MDY
	default:
		return DMY
	}
}

// TemplateHasYear reports whether a template captures a year component.
func TemplateHasYear(name string) bool {
	switch name {
	case "dd_mm", "dd_mmm", "mmm_dd":
		return false
	default:
		return true
	}
}
