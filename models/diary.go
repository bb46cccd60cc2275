// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DateLayout is the calendar-date format used as diary identifier and sort key.
const DateLayout = "2006-01-02"

// Diary is a single per-day diary record as stored by the remote server.
type Diary struct {
	// Date is the YYYY-MM-DD day the entry belongs to.
	Date string `json:"date"`
	// Content is the diary text.
	Content string `json:"content"`
	// Updated is the server-side modification timestamp (RFC 3339).
	// Empty when the record has never been saved.
	Updated string `json:"updated,omitempty"`
}

// SaveDiaryRequest is the payload pushed to the remote store for one date.
type SaveDiaryRequest struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

// SaveDiaryResponse is returned by the server after a successful upsert.
type SaveDiaryResponse struct {
	Success bool   `json:"success"`
	Updated string `json:"updated,omitempty"`
}

// StoredDiary is the server-side row shape of a diary owned by a user.
type StoredDiary struct {
	UserID    int64
	Date      string
	Content   string
	UpdatedAt time.Time
}

// ToDiary converts the stored row to its wire representation.
func (s StoredDiary) ToDiary() Diary {
	return Diary{
		Date:    s.Date,
		Content: s.Content,
		Updated: s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// ParseDate parses a YYYY-MM-DD key in the given location.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, loc)
}

// FormatDate renders t as a YYYY-MM-DD key.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
