// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/store"
	"github.com/MKhiriev/go-diary-keeper/models"
)

type diaryService struct {
	repository store.DiaryRepository
	now        func() time.Time

	logger *logger.Logger
}

// NewDiaryService returns the server diary service over repository.
// wrappers are applied in order, the last one being outermost.
func NewDiaryService(repository store.DiaryRepository, logger *logger.Logger, wrappers ...DiaryServiceWrapper) DiaryService {
	var svc DiaryService = &diaryService{
		repository: repository,
		now:        time.Now,
		logger:     logger,
	}
	for _, w := range wrappers {
		svc = w.Wrap(svc)
	}
	return svc
}

func (s *diaryService) GetDiary(ctx context.Context, userID int64, date string) (models.Diary, error) {
	stored, err := s.repository.GetDiary(ctx, userID, date)
	if err != nil {
		return models.Diary{}, fmt.Errorf("get diary: %w", err)
	}
	return stored.ToDiary(), nil
}

func (s *diaryService) SaveDiary(ctx context.Context, userID int64, req models.SaveDiaryRequest) (models.SaveDiaryResponse, error) {
	log := logger.FromContext(ctx)

	stored := models.StoredDiary{
		UserID:    userID,
		Date:      req.Date,
		Content:   req.Content,
		UpdatedAt: s.now().UTC(),
	}
	if err := s.repository.UpsertDiary(ctx, stored); err != nil {
		log.Err(err).Int64("user_id", userID).Str("date", req.Date).Msg("diary upsert failed")
		return models.SaveDiaryResponse{}, fmt.Errorf("save diary: %w", err)
	}

	return models.SaveDiaryResponse{
		Success: true,
		Updated: stored.ToDiary().Updated,
	}, nil
}
