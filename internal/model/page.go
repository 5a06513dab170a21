package model

import "strings"

// Page is one page of a statement as physical-layout text: every line
// keeps the column positions the PDF laid the glyphs out at.
type Page struct {
	Lines []string
}

// NewPage splits raw physical-layout text on newlines.
func NewPage(raw string) Page {
	return Page{Lines: strings.Split(raw, "\n")}
}

// Raw reassembles the page text for substring searches.
func (p Page) Raw() string {
	return strings.Join(p.Lines, "\n")
}

// Metadata is the PDF document-information dictionary, empty strings
// where a field is absent.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Producer string
}

// TransactionMatch carries the raw captured fields of a single regex hit
// on a statement line, before coercion into a Transaction.
type TransactionMatch struct {
	TransactionDate string
	PostingDate     string
	Description     string
	Amount          string
	Polarity        string
	Balance         string
	Suffix          string

	// Byte offsets of the amount and description groups on the line,
	// used for column-geometry decisions. -1 when the group is absent.
	AmountStart      int
	AmountEnd        int
	DescriptionStart int

	PageIndex int
	LineIndex int
	Line      string
}

// Date returns the transaction date, falling back to the posting date
// when the pattern captured only one of the two.
func (m TransactionMatch) Date() string {
	if m.TransactionDate != "" {
		return m.TransactionDate
	}
	return m.PostingDate
}
