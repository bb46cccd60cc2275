// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-diary-keeper/models"
)

var errSaveRejected = errors.New("remote rejected the save")

type pushResult int

const (
	pushNothing pushResult = iota
	pushDone
	pushOffline
	pushFailed
	pushCancelled
)

// scheduleLocked re-arms the single debounce timer with the live auto-save
// interval. Before Init no timer is armed.
func (s *diaryCacheService) scheduleLocked() {
	s.cancelTimerLocked()
	if !s.initialized {
		return
	}

	seq := s.timerSeq
	s.timer = s.clock.AfterFunc(s.config.Config().Interval(), func() {
		s.onTimer(seq)
	})
}

// cancelTimerLocked stops the pending timer. Bumping timerSeq also disarms
// a callback that already fired and is waiting for mu.
func (s *diaryCacheService) cancelTimerLocked() {
	s.timerSeq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *diaryCacheService) onTimer(seq uint64) {
	s.mu.Lock()
	if !s.initialized || seq != s.timerSeq {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	ctx, session := s.session, s.sessionID
	s.mu.Unlock()

	switch s.push(ctx, session) {
	case pushNothing:
		if s.active(session) {
			s.syncState.idle()
		}
	case pushOffline, pushFailed:
		s.mu.Lock()
		if s.initialized && s.sessionID == session && s.timer == nil {
			s.scheduleLocked()
		}
		s.mu.Unlock()
	}
}

func (s *diaryCacheService) ForceSyncNow(ctx context.Context) bool {
	s.mu.Lock()
	s.cancelTimerLocked()
	session := s.sessionID
	s.mu.Unlock()

	switch s.push(ctx, session) {
	case pushNothing, pushDone:
		return true
	default:
		return false
	}
}

func (s *diaryCacheService) ScheduleSync() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer == nil && s.countDirtyLocked() > 0 {
		s.scheduleLocked()
	}
}

func (s *diaryCacheService) active(session uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized && s.sessionID == session
}

// push runs one cycle over a snapshot of the dirty entries. Entries are
// saved one at a time; the first error or rejected save aborts the rest of
// the batch. Results are dropped once the session that started the cycle
// has ended.
func (s *diaryCacheService) push(ctx context.Context, session uint64) pushResult {
	s.pushMu.Lock()
	defer s.pushMu.Unlock()

	batch := s.GetDirtyEntries()
	if len(batch) == 0 {
		return pushNothing
	}

	online := s.probe.CheckOnlineStatus(ctx)
	if !s.active(session) {
		return pushCancelled
	}
	if !online {
		s.logger.Debug().Str("func", "diaryCacheService.push").Int("pending", len(batch)).Msg("offline, push postponed")
		s.syncState.offline()
		return pushOffline
	}

	s.syncState.saving(batch[0].Date)

	for _, entry := range batch {
		resp, err := s.adapter.SaveDiary(ctx, models.SaveDiaryRequest{
			Date:    entry.Date,
			Content: entry.Content,
		})
		if !s.active(session) {
			return pushCancelled
		}
		if err == nil && !resp.Success {
			err = errSaveRejected
		}
		if err != nil {
			s.logger.Error().Err(err).Str("func", "diaryCacheService.push").Str("date", entry.Date).Msg("failed to push diary")
			s.syncState.failed(entry.Date)
			return pushFailed
		}

		s.markPushed(ctx, entry, s.serverTimestamp(resp))
	}

	s.logger.Debug().Str("func", "diaryCacheService.push").Int("pushed", len(batch)).Msg("dirty entries pushed")
	s.syncState.saved()
	return pushDone
}

func (s *diaryCacheService) serverTimestamp(resp models.SaveDiaryResponse) string {
	if resp.Updated != "" {
		return resp.Updated
	}
	return s.clock.Now().UTC().Format(time.RFC3339)
}
