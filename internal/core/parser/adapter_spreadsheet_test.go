package parser_test

import (
	"testing"

	"github.com/explainmymoney/emm_backend/internal/apperrors"
	"github.com/explainmymoney/emm_backend/internal/core/domain"
	"github.com/explainmymoney/emm_backend/internal/core/parser"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestParseXLSX(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Date", "Narration", "Debit", "Credit", "Balance"},
		{"01/03/2024", "SIP ICICIPRUMF", "5000", "", "95000"},
		{"02/03/2024", "SALARY", "", "85000", "180000"},
	})

	candidates, err := parser.ParseXLSX(data)
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, domain.Debit, candidates[0].Direction)
	assert.True(t, candidates[0].Amount.Equal(decimal.RequireFromString("5000")))
	assert.Equal(t, domain.Credit, candidates[1].Direction)
	require.True(t, candidates[1].HasBalance)
	assert.True(t, candidates[1].Balance.Equal(decimal.RequireFromString("180000")))
}

func TestParseXLSX_HeaderOnly(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Date", "Narration", "Debit"},
	})

	candidates, err := parser.ParseXLSX(data)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestParseXLSX_Malformed(t *testing.T) {
	_, err := parser.ParseXLSX([]byte("this is not a zip archive"))
	assert.ErrorIs(t, err, apperrors.ErrMalformedDocument)
}

func TestParseXLS_Malformed(t *testing.T) {
	_, err := parser.ParseXLS([]byte("this is not a compound file"))
	assert.ErrorIs(t, err, apperrors.ErrMalformedDocument)
}

func TestParsePDF_Malformed(t *testing.T) {
	_, err := parser.ParsePDF([]byte("%PDF-1.4 truncated garbage"))
	assert.ErrorIs(t, err, apperrors.ErrMalformedDocument)
}
