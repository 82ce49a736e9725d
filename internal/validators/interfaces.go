// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the services.
//
// [RecipeValidator] covers recipes, grocery items and parse requests;
// [CategoryValidator] covers categories and preference entries. Both reject
// unexpected types with ErrUnsupportedType, so a validator can be shared by
// several services.
package validators

import "context"

// Validator validates a single value. Field names, when given, restrict the
// check to those fields (e.g. "title" for a partial recipe update).
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
