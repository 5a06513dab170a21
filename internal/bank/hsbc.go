package bank

import "github.com/mleung/banknote/internal/patterns"

func init() {
	MustRegister(Bank{
		Name: "hsbc",
		Identifiers: [][]Identifier{
			{
				MetadataIdentifier{Producer: "OpenText Exstream"},
				TextIdentifier{Text: "HSBC Bank"},
			},
			{
				TextIdentifier{Text: "www.hsbc.com.sg"},
			},
		},
		Configs: []StatementConfig{
			{
				Type: TypeCredit,
				TransactionPattern: `^\s*(?P<posting_date>` + patterns.DDMMM + `)\s+` +
					`(?P<transaction_date>` + patterns.DDMMM + `)\s+` +
					patterns.Description + patterns.Amount + patterns.Polarity + `$`,
				StatementDatePattern: `Statement\s+From\s+.*?\s+To\s+(` +
					patterns.DDMMMYYYY + `)`,
				StatementDateOrder:    patterns.DMY,
				TransactionDateOrder:  patterns.DMY,
				TransactionDateFormat: "02 Jan",
				PrevBalancePattern: `(?P<description>PREVIOUS\s+STATEMENT\s+BALANCE)\s+` +
					patterns.Amount,
				Multiline: &MultilineConfig{
					Descriptions:      true,
					Polarity:          true,
					StatementDate:     true,
					IncludePrevMargin: 2,
				},
				AutoPolarity: true,
				SafetyCheck:  true,
			},
		},
	})
}
