// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal diary editor.
//
// A single screen edits one date at a time. Every keystroke is handed to the
// cache engine, which persists it locally and pushes it to the server in the
// background. The status line mirrors the engine's observable state.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/service"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/models"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	clock     utils.Clock

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, clock utils.Clock, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		clock:     clock,
		logger:    logger,
	}
}

// Run shows the editor and blocks until the user quits or ctx ends.
func (t *TUI) Run(ctx context.Context) error {
	model := newEditorModel(ctx, t.services, t.buildInfo, t.clock)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Observables notify synchronously from inside the engine, so the
	// program is nudged from a separate goroutine and reads the latest
	// values itself when the message arrives.
	notify := func() { go program.Send(stateChangedMsg{}) }
	unsubscribers := []func(){
		t.services.DiaryCache.SyncState().Subscribe(func(models.SyncState) { notify() }),
		t.services.DiaryCache.Stats().Subscribe(func(models.CacheStats) { notify() }),
		t.services.OnlineService.State().Subscribe(func(models.OnlineState) { notify() }),
		t.services.ThemeService.State().Subscribe(func(models.Theme) { notify() }),
	}
	defer func() {
		for _, unsubscribe := range unsubscribers {
			unsubscribe()
		}
	}()

	if _, err := program.Run(); err != nil {
		t.logger.Err(err).Msg("tui stopped with error")
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
