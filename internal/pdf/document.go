// Package pdf loads statement PDFs: decryption, document-information
// metadata, and physical-layout text extraction. The parsing engine
// consumes its output as pages of fixed-column text.
package pdf

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/ledongthuc/pdf"

	"github.com/mleung/banknote/internal/bank"
	"github.com/mleung/banknote/internal/common"
	"github.com/mleung/banknote/internal/model"
)

// Document is an open statement PDF. Close releases the file handle.
type Document struct {
	Path     string
	Metadata model.Metadata

	reader *pdf.Reader
	file   *os.File

	rawOnce sync.Once
	rawText string
}

// Open reads a PDF, trying each candidate password in order when the
// file is encrypted.
func Open(path string, passwords []string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	next := 0
	reader, err := pdf.NewReaderEncrypted(f, st.Size(), func() string {
		if next < len(passwords) {
			pw := passwords[next]
			next++
			return pw
		}
		return ""
	})
	if err != nil {
		f.Close()
		if strings.Contains(err.Error(), "invalid password") {
			if len(passwords) == 0 {
				return nil, common.ErrPasswordMissing
			}
			return nil, common.ErrPasswordWrong
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if next > 0 {
		slog.Debug("decrypted PDF", "file", path, "attempts", next)
	}

	doc := &Document{Path: path, reader: reader, file: f}
	doc.Metadata = readMetadata(reader)
	return doc, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.file.Close()
}

// RawText returns the concatenated text of every page, used for
// identifier substring searches. Extraction runs once; later calls
// return the cached text even when it is empty.
func (d *Document) RawText() string {
	d.rawOnce.Do(func() {
		pages, err := d.Pages(nil)
		if err != nil {
			return
		}
		var sb strings.Builder
		for _, p := range pages {
			sb.WriteString(p.Raw())
			sb.WriteString("\n")
		}
		d.rawText = sb.String()
	})
	return d.rawText
}

// Pages extracts physical-layout text pages, honoring the bank's page
// range, bounding box and vertical-text settings when given.
func (d *Document) Pages(cfg *bank.PDFConfig) ([]model.Page, error) {
	start, end := 1, d.reader.NumPage()
	if cfg != nil {
		if cfg.PageStart != nil {
			start += *cfg.PageStart
		}
		if cfg.PageEnd != nil {
			if e := *cfg.PageEnd; e >= 0 {
				end = min(end, e)
			} else {
				end += e
			}
		}
	}

	var pages []model.Page
	for i := start; i <= end; i++ {
		page := d.reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text := layoutPage(page.Content(), cfg)
		pages = append(pages, model.NewPage(text))
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("%s: no extractable pages", d.Path)
	}
	return pages, nil
}

func readMetadata(r *pdf.Reader) model.Metadata {
	info := r.Trailer().Key("Info")
	if info.IsNull() {
		return model.Metadata{}
	}
	text := func(key string) string {
		v := info.Key(key)
		if v.Kind() != pdf.String {
			return ""
		}
		return v.Text()
	}
	return model.Metadata{
		Title:    text("Title"),
		Author:   text("Author"),
		Subject:  text("Subject"),
		Creator:  text("Creator"),
		Producer: text("Producer"),
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
