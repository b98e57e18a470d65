package parser_test

import (
	"testing"
	"time"

	"github.com/explainmymoney/emm_backend/internal/core/domain"
	"github.com/explainmymoney/emm_backend/internal/core/parser"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validCandidate() parser.RawCandidate {
	return parser.RawCandidate{
		Date:        time.Date(2024, time.December, 27, 0, 0, 0, 0, time.UTC),
		Description: "UPI/Starbucks",
		Amount:      decimal.RequireFromString("450.00"),
		Direction:   domain.Debit,
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, validCandidate().IsValid())

	zeroDate := validCandidate()
	zeroDate.Date = time.Time{}
	assert.False(t, zeroDate.IsValid())

	zeroAmount := validCandidate()
	zeroAmount.Amount = decimal.Zero
	assert.False(t, zeroAmount.IsValid())

	negativeAmount := validCandidate()
	negativeAmount.Amount = decimal.RequireFromString("-10")
	assert.False(t, negativeAmount.IsValid())

	shortDescription := validCandidate()
	shortDescription.Description = "  ab "
	assert.False(t, shortDescription.IsValid())

	noisePhrase := validCandidate()
	noisePhrase.Description = "Opening Balance"
	assert.False(t, noisePhrase.IsValid())

	// A noise phrase embedded in a real narration passes when money moved.
	embedded := validCandidate()
	embedded.Description = "transfer to total energies fuel"
	assert.True(t, embedded.IsValid())
}
