package repository

import (
	"context"
	"errors"
	"fmt"

	"txtracker/internal/db"

	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")

// DatasetRepository persists the tracker's account->records object as one
// JSON blob under a fixed key.
type DatasetRepository struct {
	db  Storage
	key string
}

func NewDatasetRepository(db Storage, key string) *DatasetRepository {
	return &DatasetRepository{
		db:  db,
		key: key,
	}
}

func (r *DatasetRepository) Migrate() error {
	if err := r.db.MigrateTable(&TxDataset{}); err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

// LoadDataset returns the stored JSON object, or nil when the key has never
// been written.
func (r *DatasetRepository) LoadDataset(ctx context.Context) ([]byte, error) {
	var row TxDataset

	err := r.db.GetOneBy(ctx, "key", r.key, &row)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dataset by key: %w", err)
	}

	return []byte(row.Payload), nil
}

func (r *DatasetRepository) SaveDataset(ctx context.Context, data []byte) error {
	row := TxDataset{
		Key:     r.key,
		Payload: string(data),
	}

	err := r.db.Upsert(ctx, "key", []string{"payload"}, &row)
	if err != nil {
		return fmt.Errorf("save dataset: %w", err)
	}

	return nil
}

// UserRepository backs API authentication.
type UserRepository struct {
	db Storage
}

func NewUserRepository(db Storage) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) MigrateAndSeed() error {
	err := r.db.MigrateTable(&User{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	users := []User{
		{
			ID:           uuid.NewString(),
			Username:     "alice",
			PasswordHash: "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK",
		},
		{
			ID:           uuid.NewString(),
			Username:     "bob",
			PasswordHash: "$2a$10$SHWr22XIYjY3/nLI6QOSJezr5KAB2AUs740F8NahmhBNsPsKacL8u",
		},
		{
			ID:           uuid.NewString(),
			Username:     "carol",
			PasswordHash: "$2a$10$sIVvau/Udc4hgV/xny/IE.LRHVVuTiMF0UTGt.SFfRhCYvunds4h2",
		},
		{
			ID:           uuid.NewString(),
			Username:     "dave",
			PasswordHash: "$2a$10$53qBwnstmYjn4S5HbYoiYe5i.SyQxyZfBiPiCoB1241HRtpVYFMvG",
		},
	}
	err = r.db.SaveToTable(context.Background(), &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *UserRepository) GetUserFromDB(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}
