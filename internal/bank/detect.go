package bank

import (
	"log/slog"

	"github.com/mleung/banknote/internal/model"
)

// Detect selects the issuing bank for a document. Banks are evaluated in
// registration order; within a bank, the first matching identifier group
// wins. When nothing matches, the Generic sentinel is returned and the
// generic analyzer takes over.
func Detect(meta model.Metadata, rawText string) Bank {
	for _, b := range registered {
		for _, group := range b.Identifiers {
			if groupMatches(group, meta, rawText) {
				slog.Debug("identified bank", "bank", b.Name)
				return b
			}
		}
	}
	slog.Debug("no bank matched, falling back to generic parser")
	return Generic
}

// groupMatches requires every identifier in the group to match. Metadata
// identifiers are evaluated first: they are the strong signal, and a
// failed metadata fingerprint short-circuits the group before any text
// search runs.
func groupMatches(group []Identifier, meta model.Metadata, rawText string) bool {
	for _, id := range group {
		if m, ok := id.(MetadataIdentifier); ok {
			if !m.Matches(meta) {
				return false
			}
		}
	}
	for _, id := range group {
		if t, ok := id.(TextIdentifier); ok {
			if !t.Matches(rawText) {
				return false
			}
		}
	}
	return true
}
