package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/explainmymoney/emm_backend/internal/apperrors"
	"github.com/ledongthuc/pdf"
)

// ParsePDF extracts candidates from the plain text of a PDF statement, one
// per line carrying a date token and at least one amount. A document that
// cannot be decoded at all fails the whole batch; individual unparseable
// lines are dropped.
func ParsePDF(data []byte) (candidates []RawCandidate, err error) {
	// The pdf library panics on some malformed cross-reference tables; treat
	// that the same as a decode error.
	defer func() {
		if r := recover(); r != nil {
			candidates = nil
			err = fmt.Errorf("%w: %v", apperrors.ErrMalformedDocument, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedDocument, err)
	}

	textReader, err := reader.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedDocument, err)
	}
	var text bytes.Buffer
	if _, err := text.ReadFrom(textReader); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedDocument, err)
	}

	for _, line := range strings.Split(text.String(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if c, ok := ExtractLine(line); ok {
			candidates = append(candidates, c)
		}
	}
	return candidates, nil
}
