package bank

import "github.com/mleung/banknote/internal/patterns"

func init() {
	MustRegister(Bank{
		Name: "ocbc",
		Identifiers: [][]Identifier{
			{
				MetadataIdentifier{Author: "OCBC", Creator: "OCBC Group"},
			},
			{
				TextIdentifier{Text: "Oversea-Chinese Banking Corporation"},
			},
		},
		Configs: []StatementConfig{
			{
				Type: TypeCredit,
				TransactionPattern: `^\s*(?P<transaction_date>` + patterns.DDMM + `)\s+` +
					patterns.Description + patterns.Amount + patterns.Polarity + `$`,
				StatementDatePattern:  `(` + patterns.DDMMYYYY + `)\s+STATEMENT\s+DATE`,
				StatementDateOrder:    patterns.DMY,
				TransactionDateOrder:  patterns.DMY,
				TransactionDateFormat: "02/01",
				PrevBalancePattern: `(?P<description>LAST\s+MONTH'?S\s+BALANCE)\s+` +
					patterns.Amount,
				Multiline:    &MultilineConfig{Descriptions: true},
				AutoPolarity: true,
				SafetyCheck:  true,
			},
			{
				Type: TypeDebit,
				TransactionPattern: `^\s*(?P<transaction_date>` + patterns.DDMMM + `)\s+` +
					`(?:` + patterns.DDMMM + `\s+)?` +
					patterns.Description + patterns.Amount + patterns.Balance + `\s*$`,
				StatementDatePattern:  `TO\s+(` + patterns.DDMMMYYYY + `)`,
				StatementDateOrder:    patterns.DMY,
				TransactionDateOrder:  patterns.DMY,
				TransactionDateFormat: "02 Jan",
				HeaderPattern:         `Date\s+Description\s+Withdrawal.*Deposit.*Balance`,
				// Account summaries print a second, side-by-side column of
				// figures past column 96; those are not transactions.
				TransactionBound: 96,
				Multiline: &MultilineConfig{
					Descriptions: true,
				},
				AutoPolarity:            true,
				SafetyCheck:             true,
				WithdrawDepositColumn:   true,
				FilenameFallbackPattern: `_([A-Za-z]{3})(\d{4})`,
			},
		},
	})
}
