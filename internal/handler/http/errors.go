// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading requests. Match with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoUserInContext means a protected handler ran without the auth
	// middleware in front of it.
	ErrNoUserInContext = errors.New("no authenticated user in request context")

	// ErrInvalidRequestBody is returned when a diary body is not valid JSON.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrRequestBodyTooLarge is returned when a diary body exceeds the limit.
	ErrRequestBodyTooLarge = errors.New("request body too large")
)
