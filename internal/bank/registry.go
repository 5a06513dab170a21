package bank

import (
	"fmt"
)

// Bank binds identifiers to one or more statement configurations.
type Bank struct {
	Name        string
	Identifiers [][]Identifier
	Configs     []StatementConfig
	PDF         *PDFConfig
}

// Generic is the fallback when no registered bank matches. It carries no
// identifiers and no configs; the generic analyzer synthesizes a config
// for it per document.
var Generic = Bank{Name: "generic"}

// ValidationError reports a structurally invalid bank declaration. It is
// raised at registration, never at runtime.
type ValidationError struct {
	Bank   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("bank %q: %s", e.Bank, e.Reason)
}

var (
	registered []Bank
	names      = make(map[string]bool)
)

// Register validates a bank declaration and adds it to the registry.
// Detection evaluates banks in registration order.
func Register(b Bank) error {
	if b.Name == "" {
		return &ValidationError{Bank: b.Name, Reason: "name must be non-empty"}
	}
	if names[b.Name] {
		return &ValidationError{Bank: b.Name, Reason: "duplicate bank name"}
	}
	if len(b.Identifiers) == 0 {
		return &ValidationError{Bank: b.Name, Reason: "at least one identifier group required"}
	}
	for i, group := range b.Identifiers {
		if len(group) == 0 {
			return &ValidationError{Bank: b.Name, Reason: fmt.Sprintf("identifier group %d is empty", i)}
		}
	}
	if len(b.Configs) == 0 {
		return &ValidationError{Bank: b.Name, Reason: "at least one statement config required"}
	}
	for i, cfg := range b.Configs {
		if _, err := cfg.Compile(); err != nil {
			return &ValidationError{Bank: b.Name, Reason: fmt.Sprintf("config %d: %v", i, err)}
		}
	}

	registered = append(registered, b)
	names[b.Name] = true
	return nil
}

// MustRegister registers a bank and panics on a validation error. The
// catalog uses it from init functions so a malformed declaration is
// fatal at startup.
func MustRegister(b Bank) {
	if err := Register(b); err != nil {
		panic(err)
	}
}

// Registered returns the catalog in registration order.
func Registered() []Bank {
	out := make([]Bank, len(registered))
	copy(out, registered)
	return out
}
