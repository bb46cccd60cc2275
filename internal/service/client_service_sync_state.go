package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-diary-keeper/internal/utils"
	"github.com/MKhiriev/go-diary-keeper/models"
)

// savedDisplayWindow is how long "saved" stays up before reverting to idle.
const savedDisplayWindow = 2 * time.Second

// syncStatePublisher serialises SyncState transitions. Every transition
// bumps a generation counter; the delayed saved->idle revert only applies
// when no other transition happened since.
//
// Subscribers of the observable must not publish from their callback.
type syncStatePublisher struct {
	clock utils.Clock
	state *utils.Observable[models.SyncState]

	mu         sync.Mutex
	generation uint64
	revert     utils.Timer
}

func newSyncStatePublisher(clock utils.Clock) *syncStatePublisher {
	return &syncStatePublisher{
		clock: clock,
		state: utils.NewObservable(models.IdleSyncState()),
	}
}

func (p *syncStatePublisher) publish(s models.SyncState) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.generation++
	if p.revert != nil {
		p.revert.Stop()
		p.revert = nil
	}
	p.state.Set(s)
	return p.generation
}

func (p *syncStatePublisher) idle() {
	p.publish(models.IdleSyncState())
}

func (p *syncStatePublisher) saving(date string) {
	p.publish(models.SyncState{
		IsSyncing:   true,
		CurrentDate: date,
		Status:      models.SyncStatusSaving,
		Message:     models.SyncMessageSaving,
	})
}

func (p *syncStatePublisher) offline() {
	p.publish(models.SyncState{
		Status:  models.SyncStatusError,
		Message: models.SyncMessageOffline,
	})
}

func (p *syncStatePublisher) failed(date string) {
	p.publish(models.SyncState{
		CurrentDate: date,
		Status:      models.SyncStatusError,
		Message:     models.SyncMessageFailed,
	})
}

// saved publishes "saved" and arms the revert to idle.
func (p *syncStatePublisher) saved() {
	gen := p.publish(models.SyncState{
		Status:  models.SyncStatusSaved,
		Message: models.SyncMessageSaved,
	})

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.generation != gen {
		return
	}
	p.revert = p.clock.AfterFunc(savedDisplayWindow, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.generation != gen {
			return
		}
		p.generation++
		p.revert = nil
		p.state.Set(models.IdleSyncState())
	})
}

// stop cancels a pending revert.
func (p *syncStatePublisher) stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.revert != nil {
		p.revert.Stop()
		p.revert = nil
	}
}
