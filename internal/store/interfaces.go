package store

import (
	"context"

	"github.com/MKhiriev/go-diary-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// KeyValueRepository is the durable local key-value medium.
type KeyValueRepository interface {
	// Get returns the value for key; found is false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key, value string) error
	// Delete removes keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
	// ListByPrefix returns every key starting with prefix and its value.
	ListByPrefix(ctx context.Context, prefix string) (map[string]string, error)
}

// DiaryRepository is the server-side diary table.
type DiaryRepository interface {
	// GetDiary returns [ErrDiaryNotFound] when nothing is stored.
	GetDiary(ctx context.Context, userID int64, date string) (models.StoredDiary, error)
	// UpsertDiary inserts or replaces the diary keyed by (UserID, Date).
	UpsertDiary(ctx context.Context, diary models.StoredDiary) error
}
