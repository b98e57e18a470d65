package parser

import (
	"bytes"
	"fmt"

	"github.com/explainmymoney/emm_backend/internal/apperrors"
	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// maxSheetRows caps how many rows are pulled from a legacy .xls sheet.
const maxSheetRows = 65536

// ParseXLSX extracts candidates from the first sheet of an .xlsx workbook.
// Cell values arrive as display strings, so Excel date serials pass through
// the generic date fallback and rows that still fail to parse are rejected by
// the gate.
func ParseXLSX(data []byte) ([]RawCandidate, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedDocument, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedDocument, err)
	}
	return candidatesFromRows(rows), nil
}

// ParseXLS extracts candidates from the first sheet of a legacy .xls
// workbook.
func ParseXLS(data []byte) ([]RawCandidate, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedDocument, err)
	}
	return candidatesFromRows(wb.ReadAllCells(maxSheetRows)), nil
}
