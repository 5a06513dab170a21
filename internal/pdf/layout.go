package pdf

import (
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/mleung/banknote/internal/bank"
)

// defaultGlyphWidth approximates one character cell in points when a
// page carries no width information.
const defaultGlyphWidth = 5.5

// layoutPage reconstructs a page's physical layout: text runs are
// grouped into rows by Y, ordered by X, and placed at character columns
// derived from their horizontal position. Column positions are what the
// extractor's geometry heuristics (description margins, withdrawal vs
// deposit) key off, so the mapping must be stable across a page.
func layoutPage(content pdf.Content, cfg *bank.PDFConfig) string {
	runs := content.Text
	if cfg != nil && cfg.PageBBox != nil {
		runs = cropRuns(runs, *cfg.PageBBox)
	}
	if cfg != nil && cfg.RemoveVerticalText {
		runs = dropVerticalRuns(runs)
	}
	if len(runs) == 0 {
		return ""
	}

	unit := glyphUnit(runs)
	minX := runs[0].X
	for _, t := range runs {
		if t.X < minX {
			minX = t.X
		}
	}

	// Group into rows. PDF Y grows bottom-up, so rows sort descending.
	rows := make(map[int][]pdf.Text)
	for _, t := range runs {
		y := int(math.Round(t.Y))
		rows[y] = append(rows[y], t)
	}
	ys := make([]int, 0, len(rows))
	for y := range rows {
		ys = append(ys, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ys)))

	var lines []string
	for _, y := range ys {
		row := rows[y]
		sort.Slice(row, func(a, b int) bool { return row[a].X < row[b].X })

		var sb strings.Builder
		for _, t := range row {
			col := int(math.Round((t.X - minX) / unit))
			if col > sb.Len() {
				sb.WriteString(strings.Repeat(" ", col-sb.Len()))
			} else if sb.Len() > 0 && col < sb.Len() {
				sb.WriteString(" ")
			}
			sb.WriteString(t.S)
		}
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}
	return strings.Join(lines, "\n")
}

// glyphUnit estimates the width of one character cell from the runs on
// a page.
func glyphUnit(runs []pdf.Text) float64 {
	var width float64
	var chars int
	for _, t := range runs {
		width += t.W
		chars += len(t.S)
	}
	if chars == 0 || width <= 0 {
		return defaultGlyphWidth
	}
	return width / float64(chars)
}

// cropRuns keeps runs inside a (left, top, right, bottom) clipping box
// given in page coordinates.
func cropRuns(runs []pdf.Text, box [4]float64) []pdf.Text {
	left, top, right, bottom := box[0], box[1], box[2], box[3]
	var kept []pdf.Text
	for _, t := range runs {
		if t.X >= left && t.X <= right && t.Y >= bottom && t.Y <= top {
			kept = append(kept, t)
		}
	}
	return kept
}

// dropVerticalRuns removes columns of stacked single glyphs, the usual
// rendering of vertically printed margin text. A column qualifies when
// at least four single-rune runs share an X position on distinct rows.
func dropVerticalRuns(runs []pdf.Text) []pdf.Text {
	byX := make(map[int][]int)
	for i, t := range runs {
		if len(strings.TrimSpace(t.S)) == 1 {
			x := int(math.Round(t.X))
			byX[x] = append(byX[x], i)
		}
	}

	drop := make(map[int]bool)
	for _, idxs := range byX {
		if len(idxs) < 4 {
			continue
		}
		seen := make(map[int]bool)
		for _, i := range idxs {
			seen[int(math.Round(runs[i].Y))] = true
		}
		if len(seen) >= 4 {
			for _, i := range idxs {
				drop[i] = true
			}
		}
	}
	if len(drop) == 0 {
		return runs
	}

	kept := make([]pdf.Text, 0, len(runs)-len(drop))
	for i, t := range runs {
		if !drop[i] {
			kept = append(kept, t)
		}
	}
	return kept
}
