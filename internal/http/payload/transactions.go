package payload

import (
	"txtracker/internal/core"

	"github.com/jellydator/validation"
)

// AddTransactionRequest carries a new transaction to track. Full record
// validation (hash shape, confirmations) happens in the tracker so that every
// violation is reported together; here only presence is checked.
type AddTransactionRequest struct {
	Hash          string         `json:"hash"`
	Description   string         `json:"description"`
	Confirmations *int64         `json:"confirmations,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
}

func (t AddTransactionRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Hash, validation.Required),
	)
}

func (t AddTransactionRequest) ToCandidate() core.TransactionCandidate {
	return core.TransactionCandidate{
		Hash:          t.Hash,
		Description:   t.Description,
		Confirmations: t.Confirmations,
		Details:       t.Details,
	}
}
