package statement

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/mleung/banknote/internal/bank"
	"github.com/mleung/banknote/internal/common"
	"github.com/mleung/banknote/internal/model"
	"github.com/mleung/banknote/internal/patterns"
)

// Date resolves the statement's coverage date from the page text, with
// a filename fallback for statements that never print one.
func (s *Statement) Date() (time.Time, error) {
	re := s.Config.StatementDate
	dayIdx := bank.GroupIndex(re, "day")
	monthIdx := bank.GroupIndex(re, "month")
	yearIdx := bank.GroupIndex(re, "year")
	joinLines := s.Config.Multiline != nil && s.Config.Multiline.StatementDate

	for _, page := range s.Pages {
		for i, line := range page.Lines {
			text := line
			if joinLines {
				// Dates split across a line break reassemble when the
				// next two lines are joined.
				end := min(i+3, len(page.Lines))
				text = model.CollapseWhitespace(strings.Join(page.Lines[i:end], " "))
			}
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}

			var raw string
			if dayIdx > 0 && monthIdx > 0 && yearIdx > 0 {
				raw = m[dayIdx] + "-" + m[monthIdx] + "-" + m[yearIdx]
			} else if len(m) > 1 {
				raw = m[1]
			}
			if raw == "" {
				continue
			}
			if t, err := patterns.ParseDate(raw, s.Config.StatementDateOrder); err == nil {
				return t, nil
			}
		}
	}

	if fb := s.Config.FilenameFallback; fb != nil && s.Path != "" {
		if m := fb.FindStringSubmatch(filepath.Base(s.Path)); len(m) >= 3 {
			if t, err := patterns.ParseDate("1 "+m[1]+" "+m[2], patterns.DMY); err == nil {
				return t, nil
			}
		}
	}

	return time.Time{}, common.ErrStatementDateNotFound
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
