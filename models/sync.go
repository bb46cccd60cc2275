// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncStatus is the coarse state of the background push.
type SyncStatus string

const (
	SyncStatusIdle   SyncStatus = "idle"
	SyncStatusSaving SyncStatus = "saving"
	SyncStatusSaved  SyncStatus = "saved"
	SyncStatusError  SyncStatus = "error"
)

// Human-readable messages published together with a [SyncStatus].
const (
	SyncMessageSaving  = "Saving..."
	SyncMessageSaved   = "Saved"
	SyncMessageOffline = "Offline"
	SyncMessageFailed  = "Failed to save"
)

// SyncState is the observable status of the sync scheduler.
type SyncState struct {
	IsSyncing bool `json:"isSyncing"`
	// CurrentDate is the date being pushed (or the one that failed), empty otherwise.
	CurrentDate string     `json:"currentDate,omitempty"`
	Status      SyncStatus `json:"status"`
	Message     string     `json:"message"`
}

// IdleSyncState is the initial and resting state.
func IdleSyncState() SyncState {
	return SyncState{Status: SyncStatusIdle}
}
