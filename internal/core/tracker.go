package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"txtracker/internal/repository"
	tokenIssuer "txtracker/pkg/jwt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrUserNotFound error = errors.New("user not found")

var timeNow = time.Now

const (
	DefaultRetentionCap = 50
	DefaultPollInterval = time.Second
)

// TrackerConfig tunes retention and confirmation polling. Zero values fall
// back to the defaults.
type TrackerConfig struct {
	RetentionCap int
	PollInterval time.Duration
}

// dataset is the persisted state: one JSON object keyed by account address.
type dataset map[string][]TransactionRecord

// emptyTransactions is shared between all accounts without records so that
// repeated reads of an empty account stay observably identical.
var emptyTransactions = make([]TransactionRecord, 0)

// Tracker owns the per-account transaction lists. It is the single writer of
// persisted state; construct it once at startup and pass it down explicitly.
type Tracker struct {
	logs      *zap.SugaredLogger
	store     Storage
	users     UserRepository
	jwtIssuer JWTIssuer

	retentionCap int
	pollInterval time.Duration

	// mu serializes dataset mutations within this instance and guards the
	// provider binding. Writers in other processes sharing the same persisted
	// key are only tolerated best-effort via the re-read-before-write below.
	mu       sync.Mutex
	provider Provider

	subMu      sync.Mutex
	changeSubs map[string]ChangeFunc
	statusSubs map[string]StatusFunc

	watchMu sync.Mutex
	watches map[string]struct{}
}

func NewTracker(logger *zap.SugaredLogger, store Storage, users UserRepository, jwtIssuer JWTIssuer, cfg TrackerConfig) *Tracker {
	if cfg.RetentionCap <= 0 {
		cfg.RetentionCap = DefaultRetentionCap
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	return &Tracker{
		logs:         logger,
		store:        store,
		users:        users,
		jwtIssuer:    jwtIssuer,
		retentionCap: cfg.RetentionCap,
		pollInterval: cfg.PollInterval,
		changeSubs:   make(map[string]ChangeFunc),
		statusSubs:   make(map[string]StatusFunc),
		watches:      make(map[string]struct{}),
	}
}

// Authenticate checks the provided credentials against the user store and
// issues a signed JWT token for the API client.
func (t *Tracker) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := t.users.GetUserFromDB(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   user.Username,
		Subject:    user.ID,
		Expiration: 24,
	}
	token := t.jwtIssuer.Generate(tokenInfo)
	signed, err := t.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// AddTransaction validates the candidate, normalizes its details and inserts
// the new pending record at the head of the account's list. An existing
// record with the same hash is replaced, newest occurrence wins.
func (t *Tracker) AddTransaction(ctx context.Context, account string, candidate TransactionCandidate) (TransactionRecord, error) {
	if err := candidate.Validate(); err != nil {
		return TransactionRecord{}, newValidationError(err)
	}

	details, err := NormalizeDetails(candidate.Details)
	if err != nil {
		return TransactionRecord{}, err
	}

	record := TransactionRecord{
		Hash:           candidate.Hash,
		Description:    candidate.Description,
		Status:         StatusPending,
		Timestamp:      timeNow().UTC(),
		AccountAddress: account,
		Confirmations:  candidate.Confirmations,
		Details:        details,
	}

	err = t.updateTransactions(ctx, account, func(records []TransactionRecord) []TransactionRecord {
		kept := make([]TransactionRecord, 0, len(records)+1)
		kept = append(kept, record)
		for _, rec := range records {
			if rec.Hash != record.Hash {
				kept = append(kept, rec)
			}
		}
		return kept
	})
	if err != nil {
		return TransactionRecord{}, err
	}

	t.logs.Infow("transaction added", "account", account, "hash", record.Hash)
	return record, nil
}

// GetTransactions returns the account's records, newest first.
func (t *Tracker) GetTransactions(ctx context.Context, account string) ([]TransactionRecord, error) {
	data, err := t.loadDataset(ctx)
	if err != nil {
		return nil, err
	}

	records := data[account]
	if len(records) == 0 {
		return emptyTransactions, nil
	}
	return records, nil
}

// GetTransaction returns the account's record with the given hash, if any.
func (t *Tracker) GetTransaction(ctx context.Context, account, txHash string) (TransactionRecord, bool, error) {
	records, err := t.GetTransactions(ctx, account)
	if err != nil {
		return TransactionRecord{}, false, err
	}

	for _, rec := range records {
		if rec.Hash == txHash {
			return rec, true, nil
		}
	}
	return TransactionRecord{}, false, nil
}

// SetTransactionStatus records the settlement of a transaction and notifies
// every status subscriber with (status, hash). A record already in a terminal
// state is never rewritten; an unknown hash leaves the list unchanged.
func (t *Tracker) SetTransactionStatus(ctx context.Context, account, txHash string, status Status) error {
	err := t.updateTransactions(ctx, account, func(records []TransactionRecord) []TransactionRecord {
		for i := range records {
			if records[i].Hash != txHash {
				continue
			}
			if records[i].Status.Terminal() {
				t.logs.Warnw("transaction already settled, keeping its status",
					"hash", txHash,
					"status", records[i].Status)
				break
			}
			records[i].Status = status
			break
		}
		return records
	})
	if err != nil {
		return err
	}

	t.notifyStatus(status, txHash)
	return nil
}

// ClearTransactions empties the account's list.
func (t *Tracker) ClearTransactions(ctx context.Context, account string) error {
	return t.updateTransactions(ctx, account, func([]TransactionRecord) []TransactionRecord {
		return nil
	})
}

// SetProvider rebinds the object used for confirmation polling. Watches
// already in flight keep the provider they started with.
func (t *Tracker) SetProvider(provider Provider) {
	t.mu.Lock()
	t.provider = provider
	t.mu.Unlock()
}

// updateTransactions applies a single mutation to one account's list. The
// full persisted dataset is re-read immediately before the change so that
// other store instances sharing the same key are not clobbered wholesale;
// truly simultaneous writers still resolve last-write-wins.
func (t *Tracker) updateTransactions(ctx context.Context, account string, mutate func([]TransactionRecord) []TransactionRecord) error {
	if err := t.persistUpdate(ctx, account, mutate); err != nil {
		return err
	}

	t.notifyChange()
	t.spawnPendingWatch(account)
	return nil
}

func (t *Tracker) persistUpdate(ctx context.Context, account string, mutate func([]TransactionRecord) []TransactionRecord) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := t.loadDataset(ctx)
	if err != nil {
		return err
	}

	records := t.pruneCompleted(mutate(data[account]))
	if len(records) == 0 {
		delete(data, account)
	} else {
		data[account] = records
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}

	if err := t.store.SaveDataset(ctx, raw); err != nil {
		return fmt.Errorf("save dataset: %w", err)
	}
	return nil
}

// loadDataset treats missing or malformed persisted state as an empty
// dataset, favoring availability over strict failure surfacing.
func (t *Tracker) loadDataset(ctx context.Context) (dataset, error) {
	raw, err := t.store.LoadDataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	if len(raw) == 0 {
		return dataset{}, nil
	}

	var data dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		t.logs.Warnw("persisted transactions are malformed, starting from an empty dataset", "error", err)
		return dataset{}, nil
	}
	if data == nil {
		data = dataset{}
	}
	return data, nil
}

// pruneCompleted walks the newest-first list keeping every pending record and
// the first retentionCap completed ones; older completed records are dropped.
func (t *Tracker) pruneCompleted(records []TransactionRecord) []TransactionRecord {
	kept := make([]TransactionRecord, 0, len(records))
	completed := 0
	for _, rec := range records {
		if rec.Status == StatusPending {
			kept = append(kept, rec)
			continue
		}
		if completed >= t.retentionCap {
			continue
		}
		completed++
		kept = append(kept, rec)
	}
	return kept
}
