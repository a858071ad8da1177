// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks configuration loaded from route sources before
// it is turned into request handlers.
//
// A Validator accepts a value and an optional list of field names that
// restricts validation to a subset of the value's fields.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
