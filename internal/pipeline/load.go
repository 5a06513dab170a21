package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

// Load writes the transformed transactions as a CSV file under
// outputDir and returns the written path. The default filename encodes
// bank, statement type and coverage month plus a short random suffix;
// preserveFilename keeps the input stem instead.
func Load(r *Result, outputDir string, preserveFilename bool) (string, error) {
	name := r.csvName(preserveFilename)
	path := filepath.Join(outputDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&r.Transactions, f); err != nil {
		return "", fmt.Errorf("failed to write csv: %w", err)
	}
	return path, nil
}

func (r *Result) csvName(preserveFilename bool) string {
	if preserveFilename {
		stem := filepath.Base(r.Statement.Path)
		stem = strings.TrimSuffix(stem, filepath.Ext(stem))
		return stem + ".csv"
	}
	return fmt.Sprintf("%s-%s-%d-%02d-%s.csv",
		r.Statement.Bank.Name,
		r.Statement.Config.Type,
		r.Date.Year(),
		int(r.Date.Month()),
		uuid.NewString()[:8])
}
