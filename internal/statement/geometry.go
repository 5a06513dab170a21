package statement

import (
	"regexp"

	"github.com/mleung/banknote/internal/common"
)

var (
	withdrawWord = regexp.MustCompile(`(?i)withdraw\w*`)
	depositWord  = regexp.MustCompile(`(?i)deposit\w*`)
)

// columnEnds holds the ending columns of the withdrawal and deposit
// header words on a page. The numeric columns below are assumed
// right-aligned with them.
type columnEnds struct {
	withdraw int
	deposit  int
}

// headerColumns locates the column-header line of a page and returns
// the withdrawal/deposit end columns, cached per page. Pages after the
// first often omit the header, so earlier pages' geometry carries
// forward.
func (s *Statement) headerColumns(page int) (columnEnds, error) {
	if s.headerCols == nil {
		s.headerCols = make(map[int]columnEnds)
	}
	if c, ok := s.headerCols[page]; ok {
		return c, nil
	}

	re := s.Config.Header
	if re == nil {
		return columnEnds{}, common.ErrMissingHeader
	}

	for p := page; p >= 0; p-- {
		for _, line := range s.Pages[p].Lines {
			if !re.MatchString(line) {
				continue
			}
			w := withdrawWord.FindStringIndex(line)
			d := depositWord.FindStringIndex(line)
			if w == nil || d == nil {
				continue
			}
			c := columnEnds{withdraw: w[1], deposit: d[1]}
			s.headerCols[page] = c
			return c, nil
		}
	}
	return columnEnds{}, common.ErrMissingHeader
}
