package statement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mleung/banknote/internal/bank"
	"github.com/mleung/banknote/internal/common"
	"github.com/mleung/banknote/internal/patterns"
)

func TestDateFromSingleCapture(t *testing.T) {
	st := newStatement(t, creditConfig(), "", []string{
		"Account 1234-5678",
		"Statement Date   04 Aug 2024",
	})

	got, err := st.Date()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.August, 4, 0, 0, 0, 0, time.UTC), got)
}

func TestDateFromNamedGroups(t *testing.T) {
	cfg := creditConfig()
	cfg.StatementDatePattern = `Period ending (?P<day>\d{2})/(?P<month>\d{2})/(?P<year>\d{4})`
	st := newStatement(t, cfg, "", []string{
		"Period ending 31/01/2024",
	})

	got, err := st.Date()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC), got)
}

func TestDateJoinsWrappedLines(t *testing.T) {
	cfg := creditConfig()
	cfg.Multiline = &bank.MultilineConfig{StatementDate: true}
	st := newStatement(t, cfg, "", []string{
		"Statement Date   04",
		"Aug 2024",
	})

	got, err := st.Date()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.August, 4, 0, 0, 0, 0, time.UTC), got)
}

func TestDateWrappedLinesNeedTheJoinFlag(t *testing.T) {
	st := newStatement(t, creditConfig(), "", []string{
		"Statement Date   04",
		"Aug 2024",
	})

	_, err := st.Date()
	assert.ErrorIs(t, err, common.ErrStatementDateNotFound)
}

func TestDateRespectsOrder(t *testing.T) {
	cfg := creditConfig()
	cfg.StatementDatePattern = `Statement Date\s+(` + patterns.MMMDDYYYY + `)`
	cfg.StatementDateOrder = patterns.MDY
	st := newStatement(t, cfg, "", []string{
		"Statement Date   Aug 04, 2024",
	})

	got, err := st.Date()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.August, 4, 0, 0, 0, 0, time.UTC), got)
}

func TestDateFilenameFallback(t *testing.T) {
	cfg := creditConfig()
	cfg.FilenameFallbackPattern = `_([A-Za-z]{3})(\d{4})`
	st := newStatement(t, cfg, "/tmp/eStatement_Aug2024.pdf", []string{
		"No printed date anywhere in this document.",
	})

	got, err := st.Date()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestDateNotFound(t *testing.T) {
	st := newStatement(t, creditConfig(), "/tmp/plain.pdf", []string{
		"No printed date anywhere in this document.",
	})

	_, err := st.Date()
	assert.ErrorIs(t, err, common.ErrStatementDateNotFound)
}
