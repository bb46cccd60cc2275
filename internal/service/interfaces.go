package service

import (
	"context"

	"github.com/MKhiriev/go-diary-keeper/models"
)

type DiaryService interface {
	// GetDiary returns store.ErrDiaryNotFound when the user has no entry for date.
	GetDiary(ctx context.Context, userID int64, date string) (models.Diary, error)
	// SaveDiary upserts req for userID. Repeating a save is harmless.
	SaveDiary(ctx context.Context, userID int64, req models.SaveDiaryRequest) (models.SaveDiaryResponse, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, userID int64) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// DiaryServiceWrapper defines middleware composition for DiaryService.
// Implementations wrap an existing DiaryService to add behavior such as
// validation.
type DiaryServiceWrapper interface {
	Wrap(DiaryService) DiaryService
}
