// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks API request bodies before they reach the
// service layer.
//
// A Validator accepts any supported request value and optional field names.
// When field names are passed only those fields are checked; otherwise the
// full rule set of the request type applies. Missing required fields are
// reported together in a single error wrapping [ErrMissingRequiredFields].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
