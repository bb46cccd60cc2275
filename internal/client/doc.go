// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the diary client process.
//
// It starts the cache engine session and the background workers, hands the
// terminal to the editor, and flushes unsaved entries on the way out.
package client
