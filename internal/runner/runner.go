// Package runner drives the per-file pipeline: one worker per PDF,
// coarse cancellation, and a collected report of successes and
// failures. Nothing is shared between workers at runtime.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/mleung/banknote/internal/bank"
	"github.com/mleung/banknote/internal/generic"
	"github.com/mleung/banknote/internal/pdf"
	"github.com/mleung/banknote/internal/pipeline"
)

// Options configure a run over a set of files.
type Options struct {
	OutputDir        string
	Passwords        []string
	SafetyCheck      bool
	SingleProcess    bool
	PreserveFilename bool
	PrettyPrint      bool
}

// FileResult is the outcome for one input file.
type FileResult struct {
	File         string
	CSV          string
	Bank         string
	Type         string
	Transactions int
	Err          error
}

// Run processes every file and returns one result per file, in input
// order. Individual failures never abort the run; context cancellation
// does.
func Run(ctx context.Context, files []string, opts Options) []FileResult {
	results := make([]FileResult, len(files))

	var bar *progressbar.ProgressBar
	if !opts.PrettyPrint && len(files) > 1 {
		bar = progressbar.Default(int64(len(files)), "converting")
	}

	process := func(i int) {
		results[i] = processFile(ctx, files[i], opts)
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if opts.SingleProcess {
		for i := range files {
			if ctx.Err() != nil {
				results[i] = FileResult{File: files[i], Err: ctx.Err()}
				continue
			}
			process(i)
		}
		return results
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range files {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = FileResult{File: files[i], Err: err}
				return nil
			}
			process(i)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// processFile runs one PDF through open → detect → extract → transform
// → load. The document handle is released on every exit path.
func processFile(ctx context.Context, path string, opts Options) (result FileResult) {
	result = FileResult{File: path}
	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("panic: %v", r)
		}
	}()

	doc, err := pdf.Open(path, opts.Passwords)
	if err != nil {
		result.Err = err
		return result
	}
	defer doc.Close()

	b := bank.Detect(doc.Metadata, doc.RawText())
	pages, err := doc.Pages(b.PDF)
	if err != nil {
		result.Err = err
		return result
	}

	if b.Name == bank.Generic.Name {
		cfg, err := generic.Analyze(pages)
		if err != nil {
			result.Err = err
			return result
		}
		b.Configs = []bank.StatementConfig{cfg}
	}

	res, err := pipeline.Extract(b, pages, path, opts.SafetyCheck)
	if err != nil {
		result.Err = err
		return result
	}
	if err := pipeline.Transform(res); err != nil {
		result.Err = err
		return result
	}

	result.Bank = b.Name
	result.Type = string(res.Statement.Config.Type)
	result.Transactions = len(res.Transactions)

	if opts.PrettyPrint {
		printTable(res)
		return result
	}

	csvPath, err := pipeline.Load(res, opts.OutputDir, opts.PreserveFilename)
	if err != nil {
		result.Err = err
		return result
	}
	result.CSV = csvPath
	slog.Debug("wrote csv", "file", path, "csv", csvPath)
	return result
}
