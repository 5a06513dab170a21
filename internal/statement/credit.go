package statement

import (
	"log/slog"

	"github.com/mleung/banknote/internal/bank"
	"github.com/mleung/banknote/internal/common"
	"github.com/mleung/banknote/internal/model"
)

// prevBalanceSentinelDate marks an injected previous-balance row before
// it is re-dated to the first real transaction's date.
const prevBalanceSentinelDate = "1900-01-01"

// injectPreviousBalance searches the whole document for the bank's
// previous-statement-balance line and inserts one synthetic transaction
// per match at the front, dated like the first real transaction.
func (s *Statement) injectPreviousBalance(txns []model.Transaction) ([]model.Transaction, error) {
	re := s.Config.PrevBalance
	if re == nil || len(txns) == 0 {
		return txns, nil
	}

	descIdx := bank.GroupIndex(re, "description")
	amountIdx := bank.GroupIndex(re, "amount")

	var injected []model.Transaction
	for _, m := range re.FindAllStringSubmatch(s.rawText(), -1) {
		desc, amount := "", ""
		if descIdx > 0 {
			desc = m[descIdx]
		}
		if amountIdx > 0 {
			amount = m[amountIdx]
		}
		txn, err := model.NewTransaction(prevBalanceSentinelDate, desc, amount, "", s.Config.AutoPolarity)
		if err != nil {
			return nil, common.NewUserError("failed to parse previous balance", err)
		}
		txn.Date = txns[0].Date
		injected = append(injected, txn)
	}
	if len(injected) == 0 {
		return txns, nil
	}

	slog.Debug("injected previous balance rows", "count", len(injected))
	return append(injected, txns...), nil
}
