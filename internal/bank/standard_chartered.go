package bank

import "github.com/mleung/banknote/internal/patterns"

func init() {
	MustRegister(Bank{
		Name: "standard_chartered",
		Identifiers: [][]Identifier{
			{
				MetadataIdentifier{Title: "Standard Chartered", Producer: "iText"},
			},
			{
				TextIdentifier{Text: "Standard Chartered Bank (Singapore)"},
			},
		},
		Configs: []StatementConfig{
			{
				Type: TypeCredit,
				TransactionPattern: `^\s*(?P<posting_date>` + patterns.DDMMM + `)\s+` +
					`(?P<transaction_date>` + patterns.DDMMM + `)\s+` +
					patterns.Description + `Transaction\s+Ref\s+\d+\s+` +
					patterns.Amount + patterns.Polarity + `$`,
				StatementDatePattern: `Statement\s+Date\s*:?\s+(` + patterns.DDMMMYYYY + `)`,
				StatementDateOrder:   patterns.DMY,
				TransactionDateOrder: patterns.DMY,
				TransactionDateFormat: "02 Jan",
				PrevBalancePattern: `(?P<description>BALANCE\s+FROM\s+PREVIOUS\s+STATEMENT)\s+` +
					patterns.Amount,
				Multiline:    &MultilineConfig{Descriptions: true},
				AutoPolarity: true,
				SafetyCheck:  true,
			},
		},
	})
}
