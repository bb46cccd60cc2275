// Package server runs the diary HTTP server.
//
// It owns startup, signal handling and graceful shutdown.
package server
