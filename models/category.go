// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Category is a named grouping tag for recipes.
//
// Global categories (UserID == nil) are shared by every user; system
// categories among them are built in and can be neither renamed nor deleted.
// User-created categories carry the owner's UserID.
type Category struct {
	// ID is the database identifier of the category.
	ID int64 `json:"id"`

	// UserID is the owner of a user-created category.
	// It is nil for global categories.
	UserID *int64 `json:"-"`

	// Name is the canonical, lowercase, locale-independent category name.
	// It is unique per owner and acts as the stable join key for preferences.
	Name string `json:"name"`

	// IsSystem marks built-in immutable categories.
	IsSystem bool `json:"is_system"`

	// Translated holds per-locale labels (locale code -> label).
	Translated Translations `json:"translated_category,omitempty"`

	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// Translations maps a locale code ("en", "de") to a translated label.
// It is stored as a JSON document in the database.
type Translations map[string]string

// Label returns the translation for locale, or an empty string if there is
// none or it is empty.
func (t Translations) Label(locale string) string {
	if t == nil {
		return ""
	}
	return t[locale]
}

// Scan implements [sql.Scanner] for JSON/JSONB and TEXT columns.
func (t *Translations) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for translations")
	}

	if len(raw) == 0 {
		*t = nil
		return nil
	}

	return json.Unmarshal(raw, t)
}

// Value implements [driver.Valuer]. A nil map is stored as an empty object.
func (t Translations) Value() (driver.Value, error) {
	if t == nil {
		return "{}", nil
	}
	b, err := json.Marshal(map[string]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// UserPreference is a per-user override of a category's visibility and
// display rank. It references the category either by CategoryID or by
// CategoryValue (the canonical name); either may be used as the join key.
type UserPreference struct {
	// UserID is the owner of the preference.
	UserID int64 `json:"-"`

	// CategoryID references the category by database identifier.
	CategoryID *int64 `json:"category_id,omitempty"`

	// CategoryValue references the category by canonical name.
	CategoryValue *string `json:"category_value,omitempty"`

	// IsVisible controls whether the category appears in the filter list.
	IsVisible bool `json:"is_visible"`

	// DisplayOrder is the rank of the category; lower sorts first.
	DisplayOrder int `json:"display_order"`
}

// ResolvedCategory is a derived, never persisted, display entry produced by
// merging a category with the user's preference.
//
// The synthetic "all" entry carries only Value, Label and IsSystem.
type ResolvedCategory struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	IsSystem  bool   `json:"isSystem"`
	IsVisible *bool  `json:"isVisible,omitempty"`
	Order     *int   `json:"order,omitempty"`
	ID        *int64 `json:"id,omitempty"`
}

// CategoryCreateRequest is the payload for creating a user category.
type CategoryCreateRequest struct {
	UserID int64  `json:"-"`
	Name   string `json:"name"`
	// Locale is the language Name is written in. Defaults to the server's
	// default locale.
	Locale string `json:"locale,omitempty"`
}

// ReorderRequest lists canonical category names in the desired display order.
type ReorderRequest struct {
	Categories []string `json:"categories"`
}

// VisibilityRequest toggles visibility of a single category.
type VisibilityRequest struct {
	IsVisible bool `json:"is_visible"`
}
