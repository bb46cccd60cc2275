package service

import (
	"sync"

	"github.com/MKhiriev/go-diary-keeper/internal/logger"
	"github.com/MKhiriev/go-diary-keeper/internal/utils"
)

type linkWatcher struct {
	checker utils.LinkChecker
	events  *utils.Observable[bool]

	mu      sync.Mutex
	last    bool
	sampled bool

	logger *logger.Logger
}

// NewLinkWatcher returns a LinkWatcher over checker. The first Poll only
// records the current state; later polls notify on change.
func NewLinkWatcher(checker utils.LinkChecker, logger *logger.Logger) LinkWatcher {
	return &linkWatcher{
		checker: checker,
		events:  utils.NewObservable(false),
		logger:  logger,
	}
}

func (w *linkWatcher) Subscribe(fn func(up bool)) func() {
	return w.events.Subscribe(fn)
}

func (w *linkWatcher) Poll() {
	up := w.checker.HasLink()

	w.mu.Lock()
	changed := w.sampled && up != w.last
	w.last = up
	w.sampled = true
	w.mu.Unlock()

	if !changed {
		return
	}

	w.logger.Debug().Str("func", "linkWatcher.Poll").Bool("up", up).Msg("network link changed")
	w.events.Set(up)
}
