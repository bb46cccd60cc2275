// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/adapter"
	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/models"
)

// onlineCacheTTL is how long a completed probe answers CheckOnlineStatus.
const onlineCacheTTL = 3 * time.Second

type onlineService struct {
	adapter adapter.DiaryAdapter
	link    utils.LinkChecker
	events  LinkEvents
	clock   utils.Clock
	state   *utils.Observable[models.OnlineState]

	mu          sync.Mutex
	unsubscribe func()

	logger *logger.Logger
}

// NewOnlineService creates the connectivity probe. Liveness requests go
// through diaryAdapter.Ping, which enforces its own timeout. events may be
// nil when no link transitions are available.
func NewOnlineService(diaryAdapter adapter.DiaryAdapter, link utils.LinkChecker, events LinkEvents, clock utils.Clock, logger *logger.Logger) ConnectivityProbe {
	return &onlineService{
		adapter: diaryAdapter,
		link:    link,
		events:  events,
		clock:   clock,
		state:   utils.NewObservable(models.OnlineState{IsOnline: true}),
		logger:  logger,
	}
}

func (s *onlineService) State() *utils.Observable[models.OnlineState] {
	return s.state
}

func (s *onlineService) IsOnline() bool {
	return s.state.Get().IsOnline
}

func (s *onlineService) CheckOnlineStatus(ctx context.Context) bool {
	st := s.state.Get()
	now := s.clock.Now().UnixMilli()

	if now-st.LastChecked < onlineCacheTTL.Milliseconds() && !st.Checking {
		return st.IsOnline
	}

	return s.probe(ctx)
}

// probe runs the link check and, if no other probe is in flight, the
// liveness request. It ignores the cache TTL.
func (s *onlineService) probe(ctx context.Context) bool {
	now := s.clock.Now().UnixMilli()

	if !s.link.HasLink() {
		s.state.Set(models.OnlineState{IsOnline: false, LastChecked: now})
		return false
	}

	claimed := false
	st := s.state.Update(func(cur models.OnlineState) models.OnlineState {
		if cur.Checking {
			return cur
		}
		claimed = true
		cur.Checking = true
		return cur
	})
	if !claimed {
		return st.IsOnline
	}

	err := s.adapter.Ping(ctx)
	online := err == nil
	if err != nil {
		s.logger.Debug().Err(err).Str("func", "onlineService.probe").Msg("remote unreachable")
	}

	s.state.Set(models.OnlineState{
		IsOnline:    online,
		LastChecked: s.clock.Now().UnixMilli(),
	})
	return online
}

func (s *onlineService) Init(ctx context.Context) {
	s.mu.Lock()
	if s.unsubscribe != nil {
		s.mu.Unlock()
		return
	}
	s.unsubscribe = func() {}
	if s.events != nil {
		sessionCtx := context.WithoutCancel(ctx)
		s.unsubscribe = s.events.Subscribe(func(up bool) {
			if up {
				s.handleOnline(sessionCtx)
			} else {
				s.handleOffline()
			}
		})
	}
	s.mu.Unlock()

	s.CheckOnlineStatus(ctx)
}

func (s *onlineService) Cleanup() {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// handleOnline trusts the link at once, then confirms with a fresh probe:
// a link can be up while the remote is not reachable.
func (s *onlineService) handleOnline(ctx context.Context) {
	now := s.clock.Now().UnixMilli()
	s.state.Update(func(cur models.OnlineState) models.OnlineState {
		cur.IsOnline = true
		cur.LastChecked = now
		return cur
	})
	s.probe(ctx)
}

func (s *onlineService) handleOffline() {
	s.state.Set(models.OnlineState{
		IsOnline:    false,
		LastChecked: s.clock.Now().UnixMilli(),
	})
}
