package bank

import "github.com/mleung/banknote/internal/patterns"

func init() {
	MustRegister(Bank{
		Name: "uob",
		Identifiers: [][]Identifier{
			{
				MetadataIdentifier{Author: "United Overseas Bank"},
			},
			{
				TextIdentifier{Text: "United Overseas Bank Limited"},
				TextIdentifier{Text: "uob.com.sg"},
			},
		},
		Configs: []StatementConfig{
			{
				Type: TypeCredit,
				TransactionPattern: `^\s*(?P<posting_date>` + patterns.DDMMM + `)\s+` +
					`(?P<transaction_date>` + patterns.DDMMM + `)\s+` +
					patterns.Description + patterns.Amount + patterns.Polarity + `$`,
				StatementDatePattern: `Statement\s+Date\s*:?\s+(` + patterns.DDMMMYY + `)`,
				StatementDateOrder:   patterns.DMY,
				TransactionDateOrder: patterns.DMY,
				TransactionDateFormat: "02 Jan",
				PrevBalancePattern: `(?P<description>PREVIOUS\s+BALANCE)\s+` +
					patterns.Amount,
				Multiline:    &MultilineConfig{Descriptions: true},
				AutoPolarity: true,
				SafetyCheck:  true,
			},
			{
				Type: TypeDebit,
				TransactionPattern: `^\s*(?P<transaction_date>` + patterns.DDMMMYY + `)\s+` +
					patterns.Description + patterns.Amount + patterns.Balance + `\s*$`,
				StatementDatePattern:  `Period\s*:?\s+.*?\s+to\s+(` + patterns.DDMMMYYYY + `)`,
				StatementDateOrder:    patterns.DMY,
				TransactionDateOrder:  patterns.DMY,
				TransactionDateFormat: "02 Jan 06",
				HeaderPattern:         `Date\s+Description\s+Withdrawals?.*Deposits?.*Balance`,
				Multiline: &MultilineConfig{
					Descriptions: true,
				},
				AutoPolarity:          true,
				SafetyCheck:           true,
				WithdrawDepositColumn: true,
			},
		},
	})
}
