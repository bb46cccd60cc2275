package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-diary-keeper/internal/validators"
	"github.com/MKhiriev/go-diary-keeper/models"
)

// DiaryValidationService rejects malformed requests before they reach the
// wrapped DiaryService.
type DiaryValidationService struct {
	inner     DiaryService
	validator validators.Validator
}

func NewDiaryValidationService() DiaryServiceWrapper {
	return &DiaryValidationService{
		validator: validators.NewDiaryValidator(),
	}
}

func (v *DiaryValidationService) Wrap(inner DiaryService) DiaryService {
	return &DiaryValidationService{
		inner:     inner,
		validator: v.validator,
	}
}

func (v *DiaryValidationService) GetDiary(ctx context.Context, userID int64, date string) (models.Diary, error) {
	query := models.StoredDiary{UserID: userID, Date: date}
	if err := v.validator.Validate(ctx, query, validators.FieldUserID, validators.FieldDate); err != nil {
		return models.Diary{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.GetDiary(ctx, userID, date)
}

func (v *DiaryValidationService) SaveDiary(ctx context.Context, userID int64, req models.SaveDiaryRequest) (models.SaveDiaryResponse, error) {
	diary := models.StoredDiary{UserID: userID, Date: req.Date, Content: req.Content}
	if err := v.validator.Validate(ctx, diary); err != nil {
		return models.SaveDiaryResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.SaveDiary(ctx, userID, req)
}
