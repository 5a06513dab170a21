// Package generic synthesizes a statement configuration for documents
// no registered bank claims. A statement is defined by where dates
// recur: the analyzer finds the most frequent date-span pattern across
// pages and derives the rest of the schema geometrically.
package generic

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/mleung/banknote/internal/bank"
	"github.com/mleung/banknote/internal/common"
	"github.com/mleung/banknote/internal/model"
	"github.com/mleung/banknote/internal/patterns"
)

const (
	// amountsPerLineDebitThreshold splits credit from debit layouts:
	// above it a matched line averages more than one numeric column
	// (amount + running balance). Tuning constant; statements dense
	// with foreign-currency sub-amounts can misclassify.
	amountsPerLineDebitThreshold = 1.1

	// multilineGapThreshold enables multiline descriptions when
	// consecutive matched lines sit further apart on average.
	multilineGapThreshold = 2.0

	// headerSearchDepth bounds the upward walk for a column-header
	// line above the first transaction.
	headerSearchDepth = 20

	// prevBalanceSearchDepth bounds the upward search for a previous
	// balance row above the first transaction.
	prevBalanceSearchDepth = 5
)

var (
	amountLike  = regexp.MustCompile(`[\d,]+\.\d+`)
	headerStart = regexp.MustCompile(`(?i)^\s*date`)
	wideSpaces  = regexp.MustCompile(`\s{3,}`)
	wordsSpan   = regexp.MustCompile(`^([A-Za-z][A-Za-z ']*[A-Za-z])`)
)

// occurrence is one date hit on one line.
type occurrence struct {
	page, line int
	start, end int
	raw        string
	date       time.Time
}

type span struct {
	start, end int
}

// Analyze scans the pages for recurring date spans and synthesizes a
// StatementConfig for them.
func Analyze(pages []model.Page) (bank.StatementConfig, error) {
	byTemplate := scan(pages)
	if len(byTemplate) == 0 {
		return bank.StatementConfig{}, &common.GenericParserError{Reason: "no dates found in document"}
	}

	template, spans := chooseSpans(byTemplate)
	if template == "" {
		return bank.StatementConfig{}, &common.GenericParserError{Reason: "no recurring date span"}
	}
	occ := filterSpans(byTemplate[template], spans)
	slog.Debug("generic analyzer selected pattern",
		"template", template,
		"spans", len(spans),
		"occurrences", len(occ))

	matched := matchedLines(pages, occ)
	isDebit := meanAmountsPerLine(matched) > amountsPerLineDebitThreshold

	datePart := datePattern(template, spans, occ)
	tail := patterns.Amount + `\s*$`
	if isDebit {
		tail = patterns.Amount + patterns.Balance + `\s*$`
	}

	cfg := bank.StatementConfig{
		Type:                  bank.TypeCredit,
		TransactionPattern:    datePart + `\s+` + patterns.Description + tail,
		StatementDatePattern:  `(` + patterns.Templates[statementTemplate(template)] + `)`,
		StatementDateOrder:    patterns.TemplateOrder(template),
		TransactionDateOrder:  patterns.TemplateOrder(template),
		TransactionDateFormat: formatHints[template],
		AutoPolarity:          true,
		SafetyCheck:           true,
	}
	if isDebit {
		cfg.Type = bank.TypeDebit
	}

	if meanLineGap(occ) > multilineGapThreshold {
		cfg.Multiline = &bank.MultilineConfig{Descriptions: true}
	}

	first := firstOccurrence(occ)
	if isDebit {
		if header := findHeader(pages, first); header != "" {
			cfg.HeaderPattern = header
			if withdrawDeposit(header) {
				cfg.WithdrawDepositColumn = true
			}
		}
	}
	if prev := findPrevBalance(pages, first); prev != "" {
		cfg.PrevBalancePattern = prev
	}

	return cfg, nil
}

// scan records every date-template occurrence on every line.
func scan(pages []model.Page) map[string][]occurrence {
	out := make(map[string][]occurrence)
	for _, name := range patterns.TemplateNames {
		re := patterns.Compiled(name)
		for pi, page := range pages {
			for li, line := range page.Lines {
				for _, loc := range re.FindAllStringIndex(line, -1) {
					raw := line[loc[0]:loc[1]]
					date, err := parseTemplateDate(raw, name)
					if err != nil {
						continue
					}
					out[name] = append(out[name], occurrence{
						page: pi, line: li,
						start: loc[0], end: loc[1],
						raw: raw, date: date,
					})
				}
			}
		}
		if len(out[name]) == 0 {
			delete(out, name)
		}
	}
	return out
}

// statementTemplate picks the template used to find the statement's own
// date. Transactions often omit the year but the statement date never
// does, so a no-year template upgrades to its year-bearing sibling.
func statementTemplate(template string) string {
	switch template {
	case "dd_mm":
		return "dd_mm_yyyy"
	case "dd_mmm":
		return "dd_mmm_yyyy"
	case "mmm_dd":
		return "mmm_dd_yyyy"
	default:
		return template
	}
}

func parseTemplateDate(raw, template string) (time.Time, error) {
	if !patterns.TemplateHasYear(template) {
		// A placeholder year makes no-year dates comparable.
		raw += " 2000"
	}
	return patterns.ParseDate(raw, patterns.TemplateOrder(template))
}

// chooseSpans picks the template whose most frequent (start, end) span
// recurs the most, keeping two spans when the template's top two tie —
// one will be the transaction date, the other the posting date.
// Templates rank by total retained occurrences, so a layout with two
// date columns outweighs a template whose single span merely straddles
// the gap between them.
func chooseSpans(byTemplate map[string][]occurrence) (string, []span) {
	bestScore := 0
	bestTemplate := ""
	var bestSpans []span

	for _, name := range patterns.TemplateNames {
		occ, ok := byTemplate[name]
		if !ok {
			continue
		}
		counts := make(map[span]int)
		for _, o := range occ {
			counts[span{o.start, o.end}]++
		}
		ordered := make([]span, 0, len(counts))
		for sp := range counts {
			ordered = append(ordered, sp)
		}
		sort.Slice(ordered, func(a, b int) bool {
			if counts[ordered[a]] != counts[ordered[b]] {
				return counts[ordered[a]] > counts[ordered[b]]
			}
			return ordered[a].start < ordered[b].start
		})

		top := counts[ordered[0]]
		spans := []span{ordered[0]}
		if len(ordered) > 1 && counts[ordered[1]] == top {
			spans = append(spans, ordered[1])
			sort.Slice(spans, func(a, b int) bool { return spans[a].start < spans[b].start })
		}
		score := top * len(spans)
		if score <= bestScore {
			continue
		}
		bestScore, bestTemplate, bestSpans = score, name, spans
	}
	return bestTemplate, bestSpans
}

func filterSpans(occ []occurrence, spans []span) []occurrence {
	keep := make(map[span]bool, len(spans))
	for _, sp := range spans {
		keep[sp] = true
	}
	var out []occurrence
	for _, o := range occ {
		if keep[span{o.start, o.end}] {
			out = append(out, o)
		}
	}
	return out
}

// datePattern builds the date-group prefix of the transaction pattern.
// With two spans, the earlier-dated of any co-occurring pair is the
// transaction date; a line where the first date is later than the
// second reveals the first as the posting date.
func datePattern(template string, spans []span, occ []occurrence) string {
	t := patterns.Templates[template]
	if len(spans) < 2 {
		return `(?P<transaction_date>` + t + `)`
	}

	firstIsPosting := false
	type key struct{ page, line int }
	left := make(map[key]occurrence)
	for _, o := range occ {
		if (span{o.start, o.end}) == spans[0] {
			left[key{o.page, o.line}] = o
		}
	}
	for _, o := range occ {
		if (span{o.start, o.end}) != spans[1] {
			continue
		}
		if l, ok := left[key{o.page, o.line}]; ok && l.date.After(o.date) {
			firstIsPosting = true
			break
		}
	}

	if firstIsPosting {
		return `(?P<posting_date>` + t + `)\s+(?P<transaction_date>` + t + `)`
	}
	return `(?P<transaction_date>` + t + `)\s+(?P<posting_date>` + t + `)`
}

// matchedLines returns the distinct text lines carrying an occurrence.
func matchedLines(pages []model.Page, occ []occurrence) []string {
	type key struct{ page, line int }
	seen := make(map[key]bool)
	var out []string
	for _, o := range occ {
		k := key{o.page, o.line}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, pages[o.page].Lines[o.line])
	}
	return out
}

func meanAmountsPerLine(lines []string) float64 {
	if len(lines) == 0 {
		return 0
	}
	total := 0
	for _, line := range lines {
		total += len(amountLike.FindAllString(line, -1))
	}
	return float64(total) / float64(len(lines))
}

// meanLineGap averages the positive gaps between consecutive matched
// line numbers within each page.
func meanLineGap(occ []occurrence) float64 {
	byPage := make(map[int][]int)
	for _, o := range occ {
		byPage[o.page] = append(byPage[o.page], o.line)
	}
	var sum, n float64
	for _, lines := range byPage {
		sort.Ints(lines)
		for i := 1; i < len(lines); i++ {
			gap := lines[i] - lines[i-1]
			if gap > 0 {
				sum += float64(gap)
				n++
			}
		}
	}
	if n == 0 {
		return 0
	}
	return sum / n
}

func firstOccurrence(occ []occurrence) occurrence {
	first := occ[0]
	for _, o := range occ[1:] {
		if o.page < first.page || (o.page == first.page && o.line < first.line) {
			first = o
		}
	}
	return first
}

// findHeader walks up from the first transaction looking for a line
// starting with "date" and turns it into a header pattern: runs of
// three or more spaces collapse to \s+, everything else is literal.
func findHeader(pages []model.Page, first occurrence) string {
	lines := pages[first.page].Lines
	for i := first.line - 1; i >= 0 && i >= first.line-headerSearchDepth; i-- {
		line := strings.TrimSpace(lines[i])
		if !headerStart.MatchString(line) {
			continue
		}
		parts := wideSpaces.Split(line, -1)
		for j, p := range parts {
			parts[j] = regexp.QuoteMeta(p)
		}
		return strings.Join(parts, `\s+`)
	}
	return ""
}

func withdrawDeposit(header string) bool {
	lower := strings.ToLower(header)
	return strings.Contains(lower, "withdraw") && strings.Contains(lower, "deposit")
}

// findPrevBalance looks a few lines above the first transaction for a
// words-then-amount row and pins the synthesized pattern to those
// literal words.
func findPrevBalance(pages []model.Page, first occurrence) string {
	lines := pages[first.page].Lines
	for i := first.line - 1; i >= 0 && i >= first.line-prevBalanceSearchDepth; i-- {
		line := strings.TrimSpace(lines[i])
		words := wordsSpan.FindStringSubmatch(line)
		if words == nil {
			continue
		}
		rest := line[len(words[1]):]
		if !amountLike.MatchString(rest) {
			continue
		}
		return `(?P<description>` + regexp.QuoteMeta(words[1]) + `)\s+` + patterns.Amount
	}
	return ""
}

var formatHints = map[string]string{
	"dd_mm":        "02/01",
	"dd_mm_yy":     "02/01/06",
	"dd_mm_yyyy":   "02/01/2006",
	"dd_mmm":       "02 Jan",
	"dd_mmm_yy":    "02 Jan 06",
	"dd_mmm_yyyy":  "02 Jan 2006",
	"mmm_dd":       "Jan 02",
	"mmm_dd_yyyy":  "Jan 02 2006",
	"mmmm_dd_yyyy": "January 02 2006",
}
