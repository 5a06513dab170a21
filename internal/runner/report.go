package runner

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/mleung/banknote/internal/cli"
	"github.com/mleung/banknote/internal/pipeline"
)

// PrintReport enumerates successes and failures after a run.
func PrintReport(w io.Writer, results []FileResult) {
	var ok, failed int
	for _, r := range results {
		if r.Err == nil {
			ok++
		} else {
			failed++
		}
	}

	fmt.Fprintln(w, cli.TitleStyle.Render(
		fmt.Sprintf("Processed %d file(s): %d succeeded, %d failed", len(results), ok, failed)))

	for _, r := range results {
		name := filepath.Base(r.File)
		if r.Err != nil {
			fmt.Fprintln(w, cli.FormatError(fmt.Sprintf("%s: %v", name, r.Err)))
			continue
		}
		detail := fmt.Sprintf("%s: %s %s statement, %d transactions",
			name, r.Bank, r.Type, r.Transactions)
		if r.CSV != "" {
			detail += " -> " + r.CSV
		}
		fmt.Fprintln(w, cli.FormatSuccess(detail))
	}
}

// HasFailures reports whether any file failed.
func HasFailures(results []FileResult) bool {
	for _, r := range results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// printTable renders the transactions of one statement as an aligned
// terminal table instead of writing a CSV.
func printTable(res *pipeline.Result) {
	descWidth := len("description")
	for _, t := range res.Transactions {
		if len(t.Description) > descWidth {
			descWidth = len(t.Description)
		}
	}

	header := fmt.Sprintf("%-10s  %-*s  %12s", "date", descWidth, "description", "amount")
	fmt.Println(cli.TableHeaderStyle.Render(header))

	for _, t := range res.Transactions {
		amount := t.Amount.StringFixed(2)
		style := cli.AmountDebitStyle
		if t.Amount.IsPositive() {
			style = cli.AmountCreditStyle
		}
		fmt.Printf("%-10s  %-*s  %s\n",
			t.Date,
			descWidth, cli.TableCellStyle.Render(t.Description),
			style.Render(fmt.Sprintf("%12s", amount)))
	}
}
