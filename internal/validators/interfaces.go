// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks diary records before they reach storage.
//
// Validators are injected into the service layer, which wraps their
// errors in service.ErrInvalidDataProvided.
package validators

import "context"

// Validator checks value, optionally only the named fields. With no field
// names every known field is checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
