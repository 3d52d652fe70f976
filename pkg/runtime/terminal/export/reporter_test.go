package export

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle(t *testing.T) {
	var buf bytes.Buffer
	report := &domain.Report{
		Title:  "Current Month Revenue",
		Period: domain.DateWindow{Start: "20240301", End: "20240331"},
		Sections: []domain.ReportSection{{
			Title:   "Revenue",
			Summary: map[string]interface{}{"Total Orders": 3},
			Details: []domain.ReportDetail{
				{Name: "Revenue", Value: "300.00", Description: "Net line-item revenue"},
			},
		}},
	}

	require.NoError(t, NewReporter(&buf).Handle(report))

	out := buf.String()
	assert.Contains(t, out, "Current Month Revenue")
	assert.Contains(t, out, "Period: 20240301 to 20240331")
	assert.Contains(t, out, "=== Revenue ===")
	assert.Contains(t, out, "Total Orders: 3")
	assert.Contains(t, out, "| Revenue ")
	assert.Contains(t, out, "300.00 |")

	cfg := DefaultTableConfig()
	width := cfg.NameWidth + cfg.ValueWidth + cfg.UnitWidth + cfg.DescriptionWidth + 13
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "|") || strings.HasPrefix(line, "+") {
			assert.Len(t, line, width, "row %q is not aligned", line)
		}
	}
}

func TestReporter_Handle_WithoutPeriod(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewReporter(&buf).Handle(&domain.Report{Title: "Empty"}))

	assert.NotContains(t, buf.String(), "Period:")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "Vitamin...", truncate("Vitamin C 1000mg", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}

func TestTruncate_MultibyteNames(t *testing.T) {
	got := truncate("Vitamín Ç 1000mg Ékstra", 10)

	assert.Equal(t, "Vitamín...", got)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "ñç", truncate("ñçü", 2))
	assert.Equal(t, "ñçü", truncate("ñçü", 3))
}

func TestReporter_Handle_AlignsMultibyteRows(t *testing.T) {
	var buf bytes.Buffer
	report := &domain.Report{
		Title: "Most Sold Products This Month",
		Sections: []domain.ReportSection{{
			Title: "Top 10 Products by sales",
			Details: []domain.ReportDetail{
				{Name: "1. Suplemen Zat Besi Ibu Hamil Formula Ékstra Kuat", Value: "12.00", Description: "Suplemen"},
			},
		}},
	}

	require.NoError(t, NewReporter(&buf).Handle(report))

	cfg := DefaultTableConfig()
	width := cfg.NameWidth + cfg.ValueWidth + cfg.UnitWidth + cfg.DescriptionWidth + 13
	assert.True(t, utf8.ValidString(buf.String()))
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "|") {
			assert.Equal(t, width, utf8.RuneCountInString(line), "row %q is not aligned", line)
		}
	}
}
