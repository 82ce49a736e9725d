// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Recipe is a single stored recipe owned by a user.
type Recipe struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	// Category is the canonical name of the category the recipe belongs to.
	Category     string      `json:"category,omitempty"`
	Ingredients  Ingredients `json:"ingredients"`
	Instructions Steps       `json:"instructions"`
	Servings     int         `json:"servings,omitempty"`
	PrepMinutes  int         `json:"prep_minutes,omitempty"`
	CookMinutes  int         `json:"cook_minutes,omitempty"`
	SourceURL    string      `json:"source_url,omitempty"`
	ImageURL     string      `json:"image_url,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
}

// Ingredients is stored as a JSON array column.
type Ingredients []Ingredient

// Scan implements [sql.Scanner].
func (i *Ingredients) Scan(src any) error {
	return scanJSON(src, i)
}

// Value implements [driver.Valuer].
func (i Ingredients) Value() (driver.Value, error) {
	if i == nil {
		return "[]", nil
	}
	return valueJSON(i)
}

// Steps are the ordered instructions of a recipe, stored as a JSON array.
type Steps []string

// Scan implements [sql.Scanner].
func (s *Steps) Scan(src any) error {
	return scanJSON(src, s)
}

// Value implements [driver.Valuer].
func (s Steps) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return valueJSON(s)
}

// RecipeFilter narrows a recipe listing.
type RecipeFilter struct {
	UserID int64
	// Category is a canonical category name. Empty or "all" disables the filter.
	Category string
	// Search matches recipe titles case-insensitively.
	Search   string
	Page     int
	PageSize int
}

// RecipePage is one page of a recipe listing.
type RecipePage struct {
	Recipes    []Recipe `json:"recipes"`
	Total      int      `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalPages int      `json:"total_pages"`
	// Window holds the page numbers a pager should display.
	Window []int `json:"window"`
}

func scanJSON(src any, dst any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for json column")
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func valueJSON(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
