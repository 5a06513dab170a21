package bank

import "github.com/mleung/banknote/internal/patterns"

func init() {
	MustRegister(Bank{
		Name: "bank_of_america",
		Identifiers: [][]Identifier{
			{
				MetadataIdentifier{Creator: "Bank of America"},
			},
			{
				TextIdentifier{Text: "Bank of America, N.A."},
			},
		},
		Configs: []StatementConfig{
			{
				Type: TypeDebit,
				TransactionPattern: `^\s*(?P<transaction_date>` + patterns.MMMDD + `)\s+` +
					patterns.Description + patterns.Amount + patterns.Balance + `\s*$`,
				StatementDatePattern:  `(?:for|through)\s+(` + patterns.MMMMDDYYYY + `)`,
				StatementDateOrder:    patterns.MDY,
				TransactionDateOrder:  patterns.MDY,
				TransactionDateFormat: "Jan 02",
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
