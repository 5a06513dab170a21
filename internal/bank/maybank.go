package bank

import "github.com/mleung/banknote/internal/patterns"

func init() {
	MustRegister(Bank{
		Name: "maybank",
		Identifiers: [][]Identifier{
			{
				MetadataIdentifier{Author: "Maybank2U.com"},
			},
			{
				TextIdentifier{Text: "Malayan Banking Berhad"},
			},
		},
		Configs: []StatementConfig{
			{
				Type: TypeCredit,
				TransactionPattern: `^\s*(?P<posting_date>` + patterns.DDMM + `)\s+` +
					`(?P<transaction_date>` + patterns.DDMM + `)\s+` +
					patterns.Description + patterns.Amount + patterns.Polarity + `$`,
				StatementDatePattern: `(?P<day>\d{2})/(?P<month>\d{2})/(?P<year>\d{2})\s+STATEMENT\s+DATE`,
				StatementDateOrder:   patterns.DMY,
				TransactionDateOrder: patterns.DMY,
				TransactionDateFormat: "02/01",
				PrevBalancePattern: `(?P<description>YOUR\s+PREVIOUS\s+STATEMENT\s+BALANCE)\s+` +
					patterns.Amount,
				Multiline:    &MultilineConfig{Descriptions: true},
				AutoPolarity: true,
				SafetyCheck:  true,
			},
			{
				Type: TypeDebit,
				TransactionPattern: `^\s*(?P<transaction_date>` + patterns.DDMMYY + `)?\s+` +
					patterns.Description + patterns.Amount +
					`(?P<suffix>[+-])` + patterns.Balance + `\s*$`,
				StatementDatePattern:  `STATEMENT\s+DATE\s*:?\s+(` + patterns.DDMMYY + `)`,
				StatementDateOrder:    patterns.DMY,
				TransactionDateOrder:  patterns.DMY,
				TransactionDateFormat: "02/01/06",
				Multiline: &MultilineConfig{
					Descriptions:    true,
					TransactionDate: true,
				},
				AutoPolarity: true,
				SafetyCheck:  true,
			},
		},
	})
}
