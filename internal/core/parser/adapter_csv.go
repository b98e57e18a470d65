package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/explainmymoney/emm_backend/internal/apperrors"
)

// ParseCSV extracts candidates from a CSV statement export. The first row is
// the header; logical columns are resolved against it once, then each data
// row yields at most one candidate.
func ParseCSV(data []byte) ([]RawCandidate, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedDocument, err)
	}
	return candidatesFromRows(rows), nil
}
