package report

import (
	"bytes"
	"testing"

	"fjacquet/card-spend/internal/chart"
	"fjacquet/card-spend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport_TextWithChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newGenerator().WriteReport(&buf, monthly(), FormatText, chart.New(10, "")))

	out := buf.String()
	assert.Contains(t, out, "315.25")
	assert.Contains(t, out, "█")
}

func TestWriteReport_TextWithoutChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newGenerator().WriteReport(&buf, monthly(), FormatText, nil))
	assert.NotContains(t, buf.String(), "█")
}

func TestWriteReport_DataFormatsSkipChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newGenerator().WriteReport(&buf, monthly(), FormatCSV, chart.New(10, "")))
	assert.NotContains(t, buf.String(), "█")
	assert.Contains(t, buf.String(), "2024-01-02,,,215.25")
}

func TestWriteReport_EmptySkipsChart(t *testing.T) {
	var buf bytes.Buffer
	r := models.Report{Kind: models.ReportMonthly, Title: "Spendings for Month 13"}
	require.NoError(t, newGenerator().WriteReport(&buf, r, FormatText, chart.New(10, "")))
	assert.Equal(t, "Spendings for Month 13\nNo transactions found.\n", buf.String())
}

func TestWriteReport_BadFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, newGenerator().WriteReport(&buf, monthly(), "pdf", nil))
	assert.Empty(t, buf.String())
}
