package patterns

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// DateOrder is the component order of a textual date.
type DateOrder int

const (
	// DMY is day-month-year, the common order on Commonwealth statements.
	DMY DateOrder = iota
	// MDY is month-day-year, used by North American issuers.
	MDY
	// YMD is year-month-day.
	YMD
)

func (o DateOrder) String() string {
	switch o {
	case MDY:
		return "MDY"
	case YMD:
		return "YMD"
	default:
		return "DMY"
	}
}

var orderLayouts = map[DateOrder][]string{
	DMY: {
		"2 1 2006",
		"2 Jan 2006",
		"2 January 2006",
		"2 1 06",
		"2 Jan 06",
	},
	MDY: {
		"1 2 2006",
		"Jan 2 2006",
		"January 2 2006",
		"1 2 06",
		"Jan 2 06",
	},
	YMD: {
		"2006 1 2",
		"2006 Jan 2",
	},
}

// ParseDate parses a raw statement date using an explicit component
// order. It is locale-free: separators are normalized to spaces and
// month names are case-folded before matching against layouts.
func ParseDate(raw string, order DateOrder) (time.Time, error) {
	normalized := NormalizeDate(raw)
	for _, layout := range orderLayouts[order] {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable %s date %q", order, raw)
}

// NormalizeDate rewrites a date string into space-separated tokens with
// canonical month-name casing, e.g. "09-JUN-2023" -> "09 Jun 2023".
func NormalizeDate(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '/', '-', ',', '.':
			return ' '
		}
		return r
	}, raw)

	fields := strings.Fields(cleaned)
	for i, f := range fields {
		fields[i] = canonicalToken(f)
	}
	return strings.Join(fields, " ")
}

func canonicalToken(tok string) string {
	if tok == "" || !unicode.IsLetter(rune(tok[0])) {
		return tok
	}
	lower := strings.ToLower(tok)
	if lower == "sept" {
		lower = "sep"
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}
