package bank

import (
	"strings"

	"github.com/mleung/banknote/internal/model"
)

// Identifier is one clue used to recognize an issuer. A bank declares an
// OR of identifier groups; a group matches iff every identifier in it
// matches.
type Identifier interface {
	identifier()
}

// MetadataIdentifier matches when every non-empty field is a substring
// of the corresponding document-information field. Empty fields are
// wildcards.
type MetadataIdentifier struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Producer string
}

func (MetadataIdentifier) identifier() {}

// Matches tests the identifier against the document metadata.
func (id MetadataIdentifier) Matches(meta model.Metadata) bool {
	pairs := [][2]string{
		{id.Title, meta.Title},
		{id.Author, meta.Author},
		{id.Subject, meta.Subject},
		{id.Creator, meta.Creator},
		{id.Producer, meta.Producer},
	}
	for _, p := range pairs {
		if p[0] != "" && !strings.Contains(p[1], p[0]) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether every field is a wildcard.
func (id MetadataIdentifier) IsEmpty() bool {
	return id == MetadataIdentifier{}
}

// TextIdentifier matches when its text appears anywhere in the
// document's raw page text. Weaker than a metadata fingerprint but
// survives PDF-producer upgrades.
type TextIdentifier struct {
	Text string
}

func (TextIdentifier) identifier() {}

// Matches tests the identifier against the concatenated page text.
func (id TextIdentifier) Matches(rawText string) bool {
	return strings.Contains(rawText, id.Text)
}
