// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// GroceryItem is one entry of a user's grocery list.
type GroceryItem struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"-"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Checked  bool    `json:"checked"`
	// RecipeID points to the recipe the item was added from, if any.
	RecipeID  *int64    `json:"recipe_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// GroceryItemUpdate is a partial update of a grocery item.
// Only non-nil fields are changed.
type GroceryItemUpdate struct {
	ID       int64    `json:"-"`
	UserID   int64    `json:"-"`
	Name     *string  `json:"name,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     *string  `json:"unit,omitempty"`
	Checked  *bool    `json:"checked,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u GroceryItemUpdate) IsEmpty() bool {
	return u.Name == nil && u.Quantity == nil && u.Unit == nil && u.Checked == nil
}
