package tui

// stateChangedMsg tells the editor to re-read the engine observables.
type stateChangedMsg struct{}

type diaryLoadedMsg struct {
	date    string
	content string
}

type forceSyncDoneMsg struct {
	allSaved bool
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
