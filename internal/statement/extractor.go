package statement

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/mleung/banknote/internal/bank"
	"github.com/mleung/banknote/internal/common"
	"github.com/mleung/banknote/internal/model"
)

const (
	// descriptionMargin is the default column-alignment tolerance for
	// description continuation lines.
	descriptionMargin = 3

	// minBreakGap is the column gap between a words span and a numbers
	// span that marks a footer ("total", "balance carried forward")
	// rather than a description continuation.
	minBreakGap = 20
)

var (
	polarityOnly = regexp.MustCompile(`(?i)^\s*(CR|DR)\s*$`)
	footerWords  = regexp.MustCompile(`[A-Za-z][A-Za-z '&/.\-]*[A-Za-z]`)
	footerNumber = regexp.MustCompile(`[\d,]+(?:\.\d+)?`)
)

// Transactions scans every page line by line with the bank's
// transaction pattern and returns the coerced transactions.
func (s *Statement) Transactions() ([]model.Transaction, error) {
	re := s.Config.Transaction
	idx := groupIndexes(re)

	var txns []model.Transaction
	var carryDate string

	for pi, page := range s.Pages {
		for li, line := range page.Lines {
			loc := re.FindStringSubmatchIndex(line)
			if loc == nil {
				continue
			}
			m := buildMatch(line, loc, idx, pi, li)

			if bound := s.Config.TransactionBound; bound > 0 && m.AmountStart >= bound {
				slog.Debug("dropping match beyond transaction bound",
					"line", li, "column", m.AmountStart)
				continue
			}

			if err := s.preProcessMatch(&m, &carryDate); err != nil {
				return nil, err
			}
			s.processMatch(&m, page)

			txn, err := model.NewTransaction(m.Date(), m.Description, m.Amount, m.Polarity, s.Config.AutoPolarity)
			if err != nil {
				slog.Debug("skipping unparsable amount", "line", line, "error", err)
				continue
			}
			txns = append(txns, txn)
		}
	}

	txns, err := s.postProcessTransactions(txns)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, common.ErrNoTransactionsFound
	}
	return txns, nil
}

// preProcessMatch applies stateful fixups before multiline handling:
// transaction-date carry-forward, suffix-derived polarity, and debit
// column-geometry polarity.
func (s *Statement) preProcessMatch(m *model.TransactionMatch, carryDate *string) error {
	if ml := s.Config.Multiline; ml != nil && ml.TransactionDate {
		if m.TransactionDate == "" {
			m.TransactionDate = *carryDate
		} else {
			*carryDate = m.TransactionDate
		}
	}

	if m.Polarity == "" && m.Suffix != "" {
		switch strings.ToUpper(m.Suffix) {
		case model.PolarityCredit, model.PolarityPlus:
			m.Polarity = model.PolarityCredit
		case model.PolarityDebit, model.PolarityMinus:
			m.Polarity = model.PolarityDebit
		}
	}

	if s.Config.WithdrawDepositColumn {
		cols, err := s.headerColumns(m.PageIndex)
		if err != nil {
			return err
		}
		// Numeric columns are right-aligned under their headers, so
		// the closer header end wins.
		if abs(m.AmountEnd-cols.withdraw) < abs(m.AmountEnd-cols.deposit) {
			m.Polarity = model.PolarityDebit
		} else {
			m.Polarity = model.PolarityCredit
		}
	}
	return nil
}

// processMatch applies the multiline policies to a single match.
func (s *Statement) processMatch(m *model.TransactionMatch, page model.Page) {
	ml := s.Config.Multiline
	if ml == nil {
		return
	}
	if ml.Polarity && m.LineIndex+1 < len(page.Lines) {
		if pm := polarityOnly.FindStringSubmatch(page.Lines[m.LineIndex+1]); pm != nil {
			m.Polarity = strings.ToUpper(pm[1])
		}
	}
	if ml.Descriptions {
		m.Description = s.buildDescription(m, page)
	}
}

// buildDescription coalesces a multi-line description. Continuation
// lines must align with the description's starting column; the walk
// stops at the first blank line, new transaction match, misaligned
// line, or aligned footer.
func (s *Statement) buildDescription(m *model.TransactionMatch, page model.Page) string {
	re := s.Config.Transaction
	ml := s.Config.Multiline

	margin := ml.DescriptionMargin
	if margin <= 0 {
		margin = descriptionMargin
	}

	parts := []string{m.Description}

	if ml.IncludePrevMargin > 0 && m.LineIndex > 0 {
		prev := page.Lines[m.LineIndex-1]
		if strings.TrimSpace(prev) != "" &&
			!re.MatchString(prev) &&
			abs(firstWordColumn(prev)-m.DescriptionStart) <= ml.IncludePrevMargin {
			parts = append([]string{strings.TrimSpace(prev)}, parts...)
		}
	}

	for j := m.LineIndex + 1; j < len(page.Lines); j++ {
		line := page.Lines[j]
		if strings.TrimSpace(line) == "" ||
			re.MatchString(line) ||
			abs(firstWordColumn(line)-m.DescriptionStart) > margin ||
			isFooter(line) {
			break
		}
		parts = append(parts, strings.TrimSpace(line))
	}
	return strings.Join(parts, " ")
}

// isFooter detects aligned summary rows: a words span followed by a
// numbers span far to its right.
func isFooter(line string) bool {
	words := footerWords.FindStringIndex(line)
	if words == nil {
		return false
	}
	for _, num := range footerNumber.FindAllStringIndex(line, -1) {
		if num[0] > words[1] {
			return num[0]-words[1] > minBreakGap
		}
	}
	return false
}

// postProcessTransactions runs the per-kind hook after the scan. Credit
// statements inject previous-balance rows at the front.
func (s *Statement) postProcessTransactions(txns []model.Transaction) ([]model.Transaction, error) {
	if s.Config.Type == bank.TypeCredit {
		return s.injectPreviousBalance(txns)
	}
	return txns, nil
}

// matchGroups caches the submatch indexes of the named groups a
// transaction pattern may carry.
type matchGroups struct {
	transactionDate int
	postingDate     int
	description     int
	amount          int
	polarity        int
	balance         int
	suffix          int
}

func groupIndexes(re *regexp.Regexp) matchGroups {
	return matchGroups{
		transactionDate: bank.GroupIndex(re, "transaction_date"),
		postingDate:     bank.GroupIndex(re, "posting_date"),
		description:     bank.GroupIndex(re, "description"),
		amount:          bank.GroupIndex(re, "amount"),
		polarity:        bank.GroupIndex(re, "polarity"),
		balance:         bank.GroupIndex(re, "balance"),
		suffix:          bank.GroupIndex(re, "suffix"),
	}
}

func buildMatch(line string, loc []int, idx matchGroups, page, lineIdx int) model.TransactionMatch {
	group := func(i int) string {
		if i < 0 || loc[2*i] < 0 {
			return ""
		}
		return line[loc[2*i]:loc[2*i+1]]
	}
	m := model.TransactionMatch{
		TransactionDate:  group(idx.transactionDate),
		PostingDate:      group(idx.postingDate),
		Description:      group(idx.description),
		Amount:           group(idx.amount),
		Polarity:         group(idx.polarity),
		Balance:          group(idx.balance),
		Suffix:           group(idx.suffix),
		AmountStart:      -1,
		AmountEnd:        -1,
		DescriptionStart: -1,
		PageIndex:        page,
		LineIndex:        lineIdx,
		Line:             line,
	}
	if idx.amount >= 0 && loc[2*idx.amount] >= 0 {
		m.AmountStart = loc[2*idx.amount]
		m.AmountEnd = loc[2*idx.amount+1]
	}
	if idx.description >= 0 && loc[2*idx.description] >= 0 {
		m.DescriptionStart = loc[2*idx.description]
	}
	return m
}

func firstWordColumn(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
