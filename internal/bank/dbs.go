package bank

import "github.com/mleung/banknote/internal/patterns"

func init() {
	MustRegister(Bank{
		Name: "dbs",
		Identifiers: [][]Identifier{
			{
				MetadataIdentifier{Creator: "Designer 6.1", Producer: "PDFlib"},
				TextIdentifier{Text: "DBS Bank Ltd"},
			},
			{
				TextIdentifier{Text: "www.dbs.com.sg"},
			},
		},
		Configs: []StatementConfig{
			{
				Type: TypeCredit,
				TransactionPattern: `^\s*(?P<transaction_date>` + patterns.DDMMM + `)\s+` +
					patterns.Description + patterns.Amount + patterns.Polarity + `$`,
				StatementDatePattern:  `(` + patterns.DDMMMYYYY + `)\s+STATEMENT`,
				StatementDateOrder:    patterns.DMY,
				TransactionDateOrder:  patterns.DMY,
				TransactionDateFormat: "02 Jan",
				PrevBalancePattern: `(?P<description>PREVIOUS\s+BALANCE)\s+` +
					patterns.Amount,
				Multiline:    &MultilineConfig{Descriptions: true},
				AutoPolarity: true,
				SafetyCheck:  true,
			},
			{
				Type: TypeDebit,
				TransactionPattern: `^\s*(?P<transaction_date>` + patterns.DDMMMYYYY + `)\s+` +
					patterns.Description + patterns.Amount + patterns.Balance + `\s*$`,
				StatementDatePattern: `(?:As\s+at|Statement\s+as\s+of)\s+(` +
					patterns.DDMMMYYYY + `)`,
				StatementDateOrder:    patterns.DMY,
				TransactionDateOrder:  patterns.DMY,
				TransactionDateFormat: "02 Jan 2006",
				HeaderPattern:         `DATE\s+DESCRIPTION\s+WITHDRAWAL.*DEPOSIT.*BALANCE`,
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
