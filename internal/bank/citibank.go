package bank

import "github.com/mleung/banknote/internal/patterns"

func init() {
	MustRegister(Bank{
		Name: "citibank",
		Identifiers: [][]Identifier{
			{
				MetadataIdentifier{Author: "Citibank Singapore"},
				TextIdentifier{Text: "www.citibank.com.sg"},
			},
			{
				TextIdentifier{Text: "Citibank Singapore (ATM/Phone)"},
			},
		},
		Configs: []StatementConfig{
			{
				Type: TypeCredit,
				TransactionPattern: `^\s*(?P<transaction_date>` + patterns.DDMMM + `)\s+` +
					patterns.Description + patterns.Amount + patterns.Polarity + `$`,
				StatementDatePattern:  `Statement\s+Date\s*:?\s+(` + patterns.DDMMMYYYY + `)`,
				StatementDateOrder:    patterns.DMY,
				TransactionDateOrder:  patterns.DMY,
				TransactionDateFormat: "02 Jan",
				PrevBalancePattern: `(?P<description>BALANCE\s+PREVIOUS\s+STATEMENT)\s+` +
					patterns.Amount,
				Multiline:    &MultilineConfig{Descriptions: true},
				AutoPolarity: true,
				SafetyCheck:  true,
			},
		},
	})
}
