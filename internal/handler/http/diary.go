// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/internal/validators"
	"github.com/MKhiriev/go-diary-keeper/models"
)

// maxBodyBytes leaves room for JSON escaping around the largest allowed content.
const maxBodyBytes = 2*validators.MaxContentBytes + 1024

type saveDiaryBody struct {
	Content string `json:"content"`
}

func (h *Handler) getDiary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoUserInContext)
		return
	}

	date := chi.URLParam(r, dateParam)
	diary, err := h.services.DiaryService.GetDiary(ctx, userID, date)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, diary, http.StatusOK); err != nil {
		log.Err(err).Str("date", date).Msg("writing diary response failed")
	}
}

func (h *Handler) saveDiary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrNoUserInContext)
		return
	}

	var body saveDiaryBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, r, ErrRequestBodyTooLarge)
			return
		}
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	req := models.SaveDiaryRequest{Date: chi.URLParam(r, dateParam), Content: body.Content}
	resp, err := h.services.DiaryService.SaveDiary(ctx, userID, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("date", req.Date).Msg("writing save response failed")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	http.Error(w, http.StatusText(status), status)
}
