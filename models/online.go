package models

// OnlineState is the cached result of the connectivity probe.
type OnlineState struct {
	IsOnline bool `json:"isOnline"`
	// LastChecked is the Unix millisecond time of the last completed check.
	LastChecked int64 `json:"lastChecked"`
	// Checking is true while a liveness request is in flight.
	Checking bool `json:"checking"`
}
