package parser

import (
	"strings"

	"github.com/explainmymoney/emm_backend/internal/core/domain"
)

// Ordered synonym lists per logical statement column. Resolution is
// synonym-major: earlier synonyms win over later ones, and within a synonym
// the first matching header wins.
var (
	dateSynonyms        = []string{"date", "txn date", "transaction date", "value date"}
	descriptionSynonyms = []string{"description", "narration", "particulars", "remarks", "details"}
	debitSynonyms       = []string{"debit", "withdrawal", "dr", "debit amount"}
	creditSynonyms      = []string{"credit", "deposit", "cr", "credit amount"}
	amountSynonyms      = []string{"amount", "transaction amount", "txn amount"}
	balanceSynonyms     = []string{"balance", "closing balance", "available balance"}
)

// columnMap holds resolved column indexes for one document. -1 marks a
// logical field with no matching header.
type columnMap struct {
	date        int
	description int
	debit       int
	credit      int
	amount      int
	balance     int
}

// resolveColumns maps the header row to logical fields once per document by
// case-insensitive substring match.
func resolveColumns(header []string) columnMap {
	return columnMap{
		date:        findColumn(header, dateSynonyms),
		description: findColumn(header, descriptionSynonyms),
		debit:       findColumn(header, debitSynonyms),
		credit:      findColumn(header, creditSynonyms),
		amount:      findColumn(header, amountSynonyms),
		balance:     findColumn(header, balanceSynonyms),
	}
}

func findColumn(header []string, synonyms []string) int {
	for _, name := range synonyms {
		for i, h := range header {
			if strings.Contains(strings.ToLower(h), name) {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// candidateFromRow extracts a candidate from one tabular row. A row with no
// resolvable date or description column never reaches the gate. A row whose
// amount cells are empty or non-numeric still yields a candidate with a zero
// amount so the gate can reject (and count) it.
func candidateFromRow(cols columnMap, row []string) (RawCandidate, bool) {
	if cols.date < 0 || cols.description < 0 {
		return RawCandidate{}, false
	}

	c := RawCandidate{Description: cell(row, cols.description)}
	c.Date, _ = ParseDate(cell(row, cols.date)) // zero on failure, gate rejects

	// Debit column takes precedence over credit; a lone generic amount column
	// carries direction in its sign (negative means debit).
	if v := cell(row, cols.debit); v != "" {
		if amt, ok := parseAmount(v); ok {
			c.Amount = amt.Abs()
			c.Direction = domain.Debit
		}
	} else if v := cell(row, cols.credit); v != "" {
		if amt, ok := parseAmount(v); ok {
			c.Amount = amt.Abs()
			c.Direction = domain.Credit
		}
	} else if v := cell(row, cols.amount); v != "" {
		if amt, ok := parseAmount(v); ok {
			if amt.Sign() < 0 {
				c.Direction = domain.Debit
			} else {
				c.Direction = domain.Credit
			}
			c.Amount = amt.Abs()
		}
	}
	if c.Direction == "" {
		c.Direction = domain.Debit
	}

	if v := cell(row, cols.balance); v != "" {
		if bal, ok := parseAmount(v); ok {
			c.Balance = bal
			c.HasBalance = true
		}
	}

	return c, true
}

// candidatesFromRows resolves columns against the header row, then extracts a
// candidate per data row. Rows that cannot produce a candidate are dropped,
// never fatal to the batch.
func candidatesFromRows(rows [][]string) []RawCandidate {
	if len(rows) < 2 {
		return nil
	}
	cols := resolveColumns(rows[0])

	var out []RawCandidate
	for _, row := range rows[1:] {
		if c, ok := candidateFromRow(cols, row); ok {
			out = append(out, c)
		}
	}
	return out
}
