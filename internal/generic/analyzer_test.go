package generic

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleung/banknote/internal/bank"
	"github.com/mleung/banknote/internal/common"
	"github.com/mleung/banknote/internal/model"
	"github.com/mleung/banknote/internal/statement"
)

func pagesOf(lines ...string) []model.Page {
	return []model.Page{{Lines: lines}}
}

func TestAnalyzeCreditStatement(t *testing.T) {
	pages := pagesOf(
		"Statement Date   31 Aug 2024",
		"  04 Aug  SHOPEE SINGAPORE            31.50",
		"  05 Aug  GRAB TRANSPORT               8.80",
		"  06 Aug  NETFLIX SUBSCRIPTION        19.99",
	)

	cfg, err := Analyze(pages)
	require.NoError(t, err)

	assert.Equal(t, bank.TypeCredit, cfg.Type)
	assert.Contains(t, cfg.TransactionPattern, "transaction_date")
	assert.NotContains(t, cfg.TransactionPattern, "posting_date")
	assert.NotContains(t, cfg.TransactionPattern, "balance")
	assert.Equal(t, "02 Jan", cfg.TransactionDateFormat)
	assert.Nil(t, cfg.Multiline)
	assert.True(t, cfg.AutoPolarity)
	assert.True(t, cfg.SafetyCheck)
}

func TestAnalyzeEndToEnd(t *testing.T) {
	pages := pagesOf(
		"Statement Date   31 Aug 2024",
		"  04 Aug  SHOPEE SINGAPORE            31.50",
		"  05 Aug  GRAB TRANSPORT               8.80",
		"  06 Aug  NETFLIX SUBSCRIPTION        19.99",
	)

	cfg, err := Analyze(pages)
	require.NoError(t, err)

	b := bank.Bank{Name: "generic", Configs: []bank.StatementConfig{cfg}}
	st, txns, err := statement.FirstMatching(b, pages, "")
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, "04 Aug", txns[0].Date)
	assert.Equal(t, "SHOPEE SINGAPORE", txns[0].Description)
	assert.Equal(t, "-31.50", txns[0].Amount.StringFixed(2))

	date, err := st.Date()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC), date)
}

func TestAnalyzeTwoDateColumns(t *testing.T) {
	pages := pagesOf(
		"  05 Aug  03 Aug  MERCHANT ONE        10.00",
		"  07 Aug  06 Aug  MERCHANT TWO        20.00",
		"  09 Aug  09 Aug  MERCHANT THREE      30.00",
	)

	cfg, err := Analyze(pages)
	require.NoError(t, err)

	// The left column's dates run later, so it must be the posting date.
	post := strings.Index(cfg.TransactionPattern, "posting_date")
	txn := strings.Index(cfg.TransactionPattern, "transaction_date")
	require.GreaterOrEqual(t, post, 0)
	require.GreaterOrEqual(t, txn, 0)
	assert.Less(t, post, txn)

	// Day-first template wins: the month-first one only straddles the
	// gap between the two columns with a single span.
	assert.Equal(t, "02 Jan", cfg.TransactionDateFormat)
}

func TestAnalyzeTwoDateColumnsTransactionFirst(t *testing.T) {
	pages := pagesOf(
		"  03 Aug  05 Aug  MERCHANT ONE        10.00",
		"  06 Aug  07 Aug  MERCHANT TWO        20.00",
		"  09 Aug  09 Aug  MERCHANT THREE      30.00",
	)

	cfg, err := Analyze(pages)
	require.NoError(t, err)

	post := strings.Index(cfg.TransactionPattern, "posting_date")
	txn := strings.Index(cfg.TransactionPattern, "transaction_date")
	require.GreaterOrEqual(t, post, 0)
	require.GreaterOrEqual(t, txn, 0)
	assert.Less(t, txn, post)
}

func TestAnalyzeDebitStatement(t *testing.T) {
	pages := pagesOf(
		"Date         Description             Withdrawal      Deposit        Balance",
		"01 Jan 2024  ATM WITHDRAWAL              200.00                    1,800.00",
		"02 Jan 2024  SALARY CREDIT                             3,000.00    4,800.00",
	)

	cfg, err := Analyze(pages)
	require.NoError(t, err)

	assert.Equal(t, bank.TypeDebit, cfg.Type)
	assert.Contains(t, cfg.TransactionPattern, "balance")
	assert.Equal(t, `Date\s+Description\s+Withdrawal\s+Deposit\s+Balance`, cfg.HeaderPattern)
	assert.True(t, cfg.WithdrawDepositColumn)
}

func TestAnalyzeHeaderWithoutBothColumnWords(t *testing.T) {
	pages := pagesOf(
		"Date         Description                  Amount         Balance",
		"01 Jan 2024  ATM WITHDRAWAL              200.00         1,800.00",
		"02 Jan 2024  SALARY CREDIT             3,000.00         4,800.00",
	)

	cfg, err := Analyze(pages)
	require.NoError(t, err)

	assert.Equal(t, bank.TypeDebit, cfg.Type)
	assert.NotEmpty(t, cfg.HeaderPattern)
	assert.False(t, cfg.WithdrawDepositColumn,
		"column polarity needs both withdrawal and deposit header words")
}

func TestAnalyzeSparseLinesEnableMultiline(t *testing.T) {
	pages := pagesOf(
		"  04 Aug  MERCHANT A                  10.00",
		"          EXTRA DETAIL LINE",
		"",
		"  07 Aug  MERCHANT B                  20.00",
		"          MORE DETAIL",
		"",
		"  10 Aug  MERCHANT C                  30.00",
	)

	cfg, err := Analyze(pages)
	require.NoError(t, err)
	require.NotNil(t, cfg.Multiline)
	assert.True(t, cfg.Multiline.Descriptions)
}

func TestAnalyzeFindsPreviousBalance(t *testing.T) {
	pages := pagesOf(
		"PREVIOUS BALANCE                     250.00",
		"  04 Aug  MERCHANT A                  10.00",
		"  05 Aug  MERCHANT B                  20.00",
	)

	cfg, err := Analyze(pages)
	require.NoError(t, err)
	assert.Contains(t, cfg.PrevBalancePattern, "PREVIOUS BALANCE")
}

func TestAnalyzeNoDates(t *testing.T) {
	_, err := Analyze(pagesOf("Nothing here resembles a transaction table."))
	var gpErr *common.GenericParserError
	assert.ErrorAs(t, err, &gpErr)
}

func TestAnalyzeSynthesizedConfigCompiles(t *testing.T) {
	pages := pagesOf(
		"Date         Description             Withdrawal      Deposit        Balance",
		"01 Jan 2024  ATM WITHDRAWAL              200.00                    1,800.00",
		"02 Jan 2024  SALARY CREDIT                             3,000.00    4,800.00",
	)

	cfg, err := Analyze(pages)
	require.NoError(t, err)
	_, err = cfg.Compile()
	assert.NoError(t, err)
}
