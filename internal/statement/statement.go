// Package statement implements the parsing engine: given pages of
// physical-layout text and a bank configuration, it extracts validated
// transactions and the statement's coverage date.
package statement

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/mleung/banknote/internal/bank"
	"github.com/mleung/banknote/internal/common"
	"github.com/mleung/banknote/internal/model"
)

// Statement owns the page list of one document and the configuration it
// is being parsed under.
type Statement struct {
	Bank   bank.Bank
	Config *bank.Compiled
	Pages  []model.Page
	Path   string

	numbersOnce sync.Once
	numbers     []decimal.Decimal

	headerCols map[int]columnEnds
}

// New builds a statement over pages with a compiled config.
func New(b bank.Bank, cfg *bank.Compiled, pages []model.Page, path string) *Statement {
	return &Statement{Bank: b, Config: cfg, Pages: pages, Path: path}
}

// FirstMatching tries each of a bank's statement configs and returns
// the statement for the first config that yields transactions. Banks
// with credit and debit variants rely on this to pick the right one
// per document.
//
// A config whose column-header line appears in the document is tried
// before the others: a loose credit pattern can swallow a debit row
// and capture the balance as the amount, so finding the header is a
// stronger claim than a transaction match alone. Configs without a
// confirmed header keep their declaration order.
func FirstMatching(b bank.Bank, pages []model.Page, path string) (*Statement, []model.Transaction, error) {
	candidates := make([]*bank.Compiled, 0, len(b.Configs))
	for _, cfg := range b.Configs {
		compiled, err := cfg.Compile()
		if err != nil {
			// Registration validates catalog configs, so this only
			// trips for synthesized ones.
			return nil, nil, fmt.Errorf("bank %s: %w", b.Name, err)
		}
		candidates = append(candidates, compiled)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return headerFound(candidates[i], pages) && !headerFound(candidates[j], pages)
	})

	var lastErr error = common.ErrNoTransactionsFound
	for _, compiled := range candidates {
		st := New(b, compiled, pages, path)
		txns, err := st.Transactions()
		if err != nil {
			slog.Debug("statement config did not match",
				"bank", b.Name,
				"type", string(compiled.Type),
				"error", err)
			lastErr = err
			continue
		}
		return st, txns, nil
	}
	return nil, nil, lastErr
}

func headerFound(cfg *bank.Compiled, pages []model.Page) bool {
	if cfg.Header == nil {
		return false
	}
	for _, p := range pages {
		for _, line := range p.Lines {
			if cfg.Header.MatchString(line) {
				return true
			}
		}
	}
	return false
}

// rawText concatenates every page for substring and previous-balance
// searches.
func (s *Statement) rawText() string {
	var sb strings.Builder
	for _, p := range s.Pages {
		sb.WriteString(p.Raw())
		sb.WriteString("\n")
	}
	return sb.String()
}
