package catalog

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogIsClosedAndComplete(t *testing.T) {
	reports := Reports()
	require.Len(t, reports, 19)

	for i, report := range reports {
		require.Equal(t, strconv.Itoa(i+1), report.Key())
		require.NotEmpty(t, report.Title(), "report %s has no title", report.Key())

		sql := strings.TrimSpace(report.SQL())
		require.True(t, strings.HasPrefix(sql, "SELECT"), "report %s is not read-only: %s", report.Key(), sql)
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, report := range Reports() {
		parsed, err := Parse(report.Key())
		require.NoError(t, err)
		require.Equal(t, report, parsed)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	for _, key := range []string{"", "0", "20", "-1", "01", "abc"} {
		_, err := Parse(key)
		require.Error(t, err, "key %q", key)
	}
}

func TestQueriesAreParameterless(t *testing.T) {
	for _, report := range Reports() {
		require.NotContains(t, report.SQL(), "?", "report %s", report.Key())
		require.NotContains(t, report.SQL(), "$1", "report %s", report.Key())
	}
}
