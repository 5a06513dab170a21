package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleung/banknote/internal/model"
)

func TestDetectByMetadata(t *testing.T) {
	meta := model.Metadata{
		Author:  "Citibank Singapore branch",
		Creator: "Ricoh ProcessDirector",
	}
	b := Detect(meta, "page text mentioning www.citibank.com.sg somewhere")
	assert.Equal(t, "citibank", b.Name)
}

func TestDetectMetadataShortCircuit(t *testing.T) {
	// The citibank group pairs a metadata identifier with a text one;
	// when the metadata fingerprint fails the group must not match even
	// though the text would.
	meta := model.Metadata{Author: "Some Other Bank"}
	b := Detect(meta, "www.citibank.com.sg and also Citibank Singapore (ATM/Phone)")
	assert.Equal(t, "citibank", b.Name,
		"text-only group should still match")

	b = Detect(meta, "www.citibank.com.sg")
	assert.Equal(t, Generic.Name, b.Name,
		"metadata mismatch must short-circuit the mixed group")
}

func TestDetectByTextOnly(t *testing.T) {
	b := Detect(model.Metadata{}, "issued by Malayan Banking Berhad, all rights reserved")
	assert.Equal(t, "maybank", b.Name)
}

func TestDetectTextGroupRequiresAllIdentifiers(t *testing.T) {
	// The uob text group needs both fingerprints.
	b := Detect(model.Metadata{}, "United Overseas Bank Limited")
	assert.Equal(t, Generic.Name, b.Name)

	b = Detect(model.Metadata{}, "United Overseas Bank Limited - uob.com.sg")
	assert.Equal(t, "uob", b.Name)
}

func TestDetectFallsBackToGeneric(t *testing.T) {
	b := Detect(model.Metadata{Title: "Totally Unknown Bank"}, "nothing recognizable")
	assert.Equal(t, Generic.Name, b.Name)
	assert.Empty(t, b.Configs)
}

func TestDetectDeterministic(t *testing.T) {
	meta := model.Metadata{Author: "Maybank2U.com"}
	first := Detect(meta, "")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.Name, Detect(meta, "").Name)
	}
}

func TestMetadataIdentifierEmptyFieldsAreWildcards(t *testing.T) {
	id := MetadataIdentifier{Producer: "PDFlib"}
	assert.True(t, id.Matches(model.Metadata{Producer: "PDFlib 9.2", Title: "anything"}))
	assert.False(t, id.Matches(model.Metadata{Producer: "iText"}))
	assert.True(t, MetadataIdentifier{}.Matches(model.Metadata{}))
}

func TestRegisterValidation(t *testing.T) {
	validConfig := StatementConfig{
		Type:                 TypeCredit,
		TransactionPattern:   `(?P<description>.*?)\s+(?P<amount>[\d,]+\.\d+)`,
		StatementDatePattern: `(\d{2} \w{3} \d{4})`,
	}
	validIdentifiers := [][]Identifier{{TextIdentifier{Text: "x"}}}

	tests := []struct {
		name string
		bank Bank
	}{
		{"empty name", Bank{Identifiers: validIdentifiers, Configs: []StatementConfig{validConfig}}},
		{"duplicate name", Bank{Name: "dbs", Identifiers: validIdentifiers, Configs: []StatementConfig{validConfig}}},
		{"no identifiers", Bank{Name: "t1", Configs: []StatementConfig{validConfig}}},
		{"empty identifier group", Bank{Name: "t2", Identifiers: [][]Identifier{{}}, Configs: []StatementConfig{validConfig}}},
		{"no configs", Bank{Name: "t3", Identifiers: validIdentifiers}},
		{
			"missing amount group",
			Bank{Name: "t4", Identifiers: validIdentifiers, Configs: []StatementConfig{{
				Type:                 TypeCredit,
				TransactionPattern:   `(?P<description>.*)`,
				StatementDatePattern: `(\d+)`,
			}}},
		},
		{
			"invalid statement type",
			Bank{Name: "t5", Identifiers: validIdentifiers, Configs: []StatementConfig{{
				Type:                 "savings",
				TransactionPattern:   validConfig.TransactionPattern,
				StatementDatePattern: validConfig.StatementDatePattern,
			}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Register(tt.bank)
			require.Error(t, err)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestCatalogCompiles(t *testing.T) {
	banks := Registered()
	require.NotEmpty(t, banks)
	for _, b := range banks {
		for i, cfg := range b.Configs {
			_, err := cfg.Compile()
			assert.NoError(t, err, "bank %s config %d", b.Name, i)
		}
	}
}
