package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnsupportedFormat indicates an uploaded document matched none of the
// supported statement formats (PDF, CSV, XLSX/XLS).
var ErrUnsupportedFormat = errors.New("unsupported statement format")

// ErrMalformedDocument indicates a statement document could not be decoded at
// all (corrupt PDF, unreadable spreadsheet binary). Fatal for the whole batch.
var ErrMalformedDocument = errors.New("statement document could not be decoded")

// ErrEmptyStatement indicates a document decoded successfully but yielded no
// valid transactions. Distinct from a decode failure so callers can tell
// "no transactions found" apart from "error parsing file".
var ErrEmptyStatement = errors.New("no valid transactions found in statement")
