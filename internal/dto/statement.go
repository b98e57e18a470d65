package dto

// ImportStatementResponse reports the outcome of a statement upload.
// Count is the number of records that passed validation and persistence;
// Skipped counts rows that were extracted but rejected by the validation gate
// or failed to persist.
type ImportStatementResponse struct {
	Success      bool                  `json:"success"`
	Message      string                `json:"message"`
	Count        int                   `json:"count"`
	Skipped      int                   `json:"skipped"`
	Transactions []TransactionResponse `json:"transactions"`
}

// IngestMessageRequest is a single bank notification message, e.g. from an
// on-device SMS read.
type IngestMessageRequest struct {
	Address         string `json:"address" binding:"required"`
	Body            string `json:"body" binding:"required"`
	TimestampMillis int64  `json:"timestampMillis"`
}
