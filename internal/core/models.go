package core

import (
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/jellydator/validation"
)

// Status is the lifecycle state of a tracked transaction.
type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Terminal reports whether a record in this status can never transition again.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusError
}

// TransactionRecord is one tracked transaction as persisted per account.
// Timestamp and AccountAddress are assigned by the tracker, not the caller.
type TransactionRecord struct {
	Hash           string         `json:"hash"`
	Description    string         `json:"description"`
	Status         Status         `json:"status"`
	Timestamp      time.Time      `json:"timestamp"`
	AccountAddress string         `json:"accountAddress"`
	Confirmations  *int64         `json:"confirmations,omitempty"`
	Details        map[string]any `json:"details,omitempty"`
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TransactionCandidate is the caller-supplied part of a new record.
type TransactionCandidate struct {
	Hash          string         `json:"hash"`
	Description   string         `json:"description"`
	Confirmations *int64         `json:"confirmations,omitempty"`
	Details       map[string]any `json:"details,omitempty"`
}

var hashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]+$`)

// Validate checks every field and reports all violations together.
func (c TransactionCandidate) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Hash,
			validation.Required.Error("Invalid transaction hash"),
			validation.Match(hashPattern).Error("Invalid transaction hash")),
		validation.Field(&c.Description,
			validation.Required.Error("Transaction description is required")),
		// threshold rules treat a zero value as absent, so the bound is
		// checked explicitly on the dereferenced pointer
		validation.Field(&c.Confirmations,
			validation.By(func(any) error {
				if c.Confirmations != nil && *c.Confirmations < 1 {
					return errors.New("Confirmations must be a positive integer")
				}
				return nil
			})),
	)
}

// ValidationError aggregates every violation found while adding a transaction.
// Nothing is persisted when it is returned.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "Unable to add transaction\n" + strings.Join(e.Violations, "\n")
}

func newValidationError(err error) *ValidationError {
	verr := &ValidationError{}

	errs, ok := err.(validation.Errors)
	if !ok {
		verr.Violations = []string{err.Error()}
		return verr
	}

	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		verr.Violations = append(verr.Violations, errs[field].Error())
	}
	return verr
}
