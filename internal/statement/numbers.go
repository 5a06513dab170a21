package statement

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	numberToken  = regexp.MustCompile(`[\d,]*\d\.\d+`)
	subTotalLine = regexp.MustCompile(`(?i)^\s*sub\s*total`)
)

// Numbers returns every decimal number appearing in the document, the
// substrate of the safety check. Statements that print per-card or
// per-cycle subtotals but no grand total are covered by also adding the
// sum of all "sub total" lines.
func (s *Statement) Numbers() []decimal.Decimal {
	s.numbersOnce.Do(func() {
		var found []decimal.Decimal
		subTotal := decimal.Zero

		for _, page := range s.Pages {
			for _, line := range page.Lines {
				tokens := numberToken.FindAllString(line, -1)
				for _, tok := range tokens {
					d, err := decimal.NewFromString(strings.ReplaceAll(tok, ",", ""))
					if err != nil {
						continue
					}
					found = append(found, d)
				}
				if subTotalLine.MatchString(line) && len(tokens) > 0 {
					d, err := decimal.NewFromString(strings.ReplaceAll(tokens[0], ",", ""))
					if err == nil {
						subTotal = subTotal.Add(d)
					}
				}
			}
		}
		if !subTotal.IsZero() {
			found = append(found, subTotal)
		}
		s.numbers = found
	})
	return s.numbers
}

// containsNumber reports value membership, not representation equality:
// 322.070 in the document satisfies a 322.07 total.
func containsNumber(set []decimal.Decimal, want decimal.Decimal) bool {
	for _, d := range set {
		if d.Equal(want) {
			return true
		}
	}
	return false
}
