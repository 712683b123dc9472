package core

import (
	"context"
	"time"

	"txtracker/internal/ethereum"
	"txtracker/internal/repository"
	tokenIssuer "txtracker/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	// LoadDataset returns the persisted account->records JSON object,
	// or nil when nothing has been stored yet.
	LoadDataset(ctx context.Context) ([]byte, error)
	SaveDataset(ctx context.Context, data []byte) error
}

//counterfeiter:generate -o fake -fake-name Provider . Provider
type Provider interface {
	// WaitForReceipt blocks until the transaction is mined, polling at the
	// given interval, and returns its receipt.
	WaitForReceipt(ctx context.Context, txHash string, pollInterval time.Duration) (*ethereum.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name UserRepository . UserRepository
type UserRepository interface {
	GetUserFromDB(ctx context.Context, username string) (repository.User, error)
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
