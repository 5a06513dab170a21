package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mleung/banknote/internal/config"
	"github.com/mleung/banknote/internal/runner"
)

func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [files or directories...]",
		Short: "Convert statement PDFs to CSV",
		Long: `Convert one or more statement PDFs into CSV files.

Examples:
  # Convert a single statement
  banknote convert ~/Downloads/eStatement_Nov2025.pdf

  # Convert every PDF under a directory
  banknote convert ~/statements --output ./csv

  # Preview transactions without writing files
  banknote convert statement.pdf --pprint

Passwords for encrypted statements come from the pdf.passwords list in
the config file or the BANKNOTE_PDF_PASSWORDS environment variable.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runConvert,
	}

	cmd.Flags().StringP("output", "o", "", "output directory for CSV files (default: working directory)")
	cmd.Flags().Bool("pprint", false, "print transactions as a table instead of writing CSV")
	cmd.Flags().Bool("single-process", false, "process files serially instead of in parallel")
	cmd.Flags().Bool("safe", true, "reconcile parsed totals against the document (--safe=false to skip)")
	cmd.Flags().Bool("preserve-filename", false, "name each CSV after its input file")

	_ = viper.BindPFlag("output.dir", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("output.preserve_filename", cmd.Flags().Lookup("preserve-filename"))
	_ = viper.BindPFlag("safety_check", cmd.Flags().Lookup("safe"))

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	prettyPrint, _ := cmd.Flags().GetBool("pprint")
	singleProcess, _ := cmd.Flags().GetBool("single-process")

	files, err := runner.FindPDFs(args)
	if err != nil {
		return err
	}

	outputDir := config.OutputDir()
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	results := runner.Run(cmd.Context(), files, runner.Options{
		OutputDir:        outputDir,
		Passwords:        config.Passwords(),
		SafetyCheck:      viper.GetBool("safety_check"),
		SingleProcess:    singleProcess,
		PreserveFilename: viper.GetBool("output.preserve_filename"),
		PrettyPrint:      prettyPrint,
	})

	// Individual file failures are reported, not fatal: the exit code
	// stays zero so batch runs over mixed directories keep working.
	runner.PrintReport(os.Stdout, results)
	return nil
}
