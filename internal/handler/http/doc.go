// Package http implements the HTTP transport of the diary server.
//
// It wires chi routes for the version (liveness) endpoint and the per-date
// diary resource, and the middleware chain in front of them: panic
// recovery, request tracing, access logging and bearer authentication.
package http
