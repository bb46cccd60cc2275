package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/models"
)

const diariesTable = "diaries"

// diaryRepository is the SQL-backed [DiaryRepository] of the server.
type diaryRepository struct {
	*DB
	logger *logger.Logger
}

func NewDiaryRepository(db *DB, logger *logger.Logger) DiaryRepository {
	logger.Debug().Msg("creating diary repository")
	return &diaryRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *diaryRepository) GetDiary(ctx context.Context, userID int64, date string) (models.StoredDiary, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Select("user_id", "date", "content", "updated_at").
		From(diariesTable).
		Where(sq.Eq{"user_id": userID, "date": date}).
		ToSql()
	if err != nil {
		return models.StoredDiary{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var diary models.StoredDiary
	err = r.QueryRowContext(ctx, query, args...).Scan(&diary.UserID, &diary.Date, &diary.Content, &diary.UpdatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.StoredDiary{}, ErrDiaryNotFound
	case err != nil:
		log.Err(err).
			Str("func", "diaryRepository.GetDiary").
			Int64("user_id", userID).
			Str("date", date).
			Msg("failed to get diary")
		return models.StoredDiary{}, r.wrap(ErrExecutingQuery, err)
	}

	return diary, nil
}

func (r *diaryRepository) UpsertDiary(ctx context.Context, diary models.StoredDiary) error {
	log := logger.FromContext(ctx)

	query, args, err := r.Builder().
		Insert(diariesTable).
		Columns("user_id", "date", "content", "updated_at").
		Values(diary.UserID, diary.Date, diary.Content, diary.UpdatedAt).
		Suffix("ON CONFLICT (user_id, date) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "diaryRepository.UpsertDiary").
			Int64("user_id", diary.UserID).
			Str("date", diary.Date).
			Msg("failed to upsert diary")
		return r.wrap(ErrExecutingStatement, err)
	}

	return nil
}

// wrap tags retryable driver errors with [ErrTemporarilyUnavailable].
func (r *diaryRepository) wrap(kind, err error) error {
	if r.IsRetryable(err) {
		return fmt.Errorf("%w: %w: %w", ErrTemporarilyUnavailable, kind, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}
