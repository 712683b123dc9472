package handler

import (
	"context"
	"net/http"

	"txtracker/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}

//counterfeiter:generate -o fake -fake-name TrackerService . TrackerService
type TrackerService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	AddTransaction(ctx context.Context, account string, candidate core.TransactionCandidate) (core.TransactionRecord, error)
	GetTransactions(ctx context.Context, account string) ([]core.TransactionRecord, error)
	GetTransaction(ctx context.Context, account, txHash string) (core.TransactionRecord, bool, error)
	ClearTransactions(ctx context.Context, account string) error
}
