// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the remote diary API.
//
// [DiaryAdapter] decouples the cache engine from the protocol. The package
// ships an HTTP/REST implementation built on resty ([NewHTTPDiaryAdapter]).
//
// Non-2xx responses are mapped to the sentinel errors in errors.go by
// mapHTTPError so callers can match them with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-diary-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/diary_adapter_mock.go -package=mock

// DiaryAdapter is the remote diary collaborator of the cache engine.
type DiaryAdapter interface {
	// SaveDiary upserts the content for req.Date. Pushing the same content
	// twice is safe. A response with Success=false is a rejected save.
	SaveDiary(ctx context.Context, req models.SaveDiaryRequest) (models.SaveDiaryResponse, error)

	// GetDiary returns the remote diary for date, or nil when the server has
	// none.
	GetDiary(ctx context.Context, date string) (*models.Diary, error)

	// Ping issues the bounded liveness request. A nil error means the remote
	// is reachable.
	Ping(ctx context.Context) error
}
