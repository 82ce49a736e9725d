// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver merges global categories with a user's visibility and
// order preferences into the list of categories shown in the recipe filter.
//
// Both entry points are pure functions of their inputs. They perform no I/O
// and are safe for concurrent use.
package resolver

import (
	"sort"

	"github.com/MKhiriev/go-recipe-keeper/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	// AllValue is the value of the synthetic "all categories" entry.
	AllValue = "all"

	// DefaultOrder is the rank given to categories without a preference.
	// It sorts after every explicitly ordered category.
	DefaultOrder = 999
)

var allLabels = map[string]string{
	"de": "Alle Rezepte",
}

const defaultAllLabel = "All Recipes"

// Resolve returns the categories the user should see in locale: the "all"
// entry first, followed by visible categories sorted by display order and
// then by label.
func Resolve(categories []models.Category, preferences []models.UserPreference, locale string) []models.ResolvedCategory {
	return resolve(categories, preferences, locale, true)
}

// ResolveForManagement is [Resolve] without the visibility filter. It is
// used by the category management view, which lists hidden categories too.
func ResolveForManagement(categories []models.Category, preferences []models.UserPreference, locale string) []models.ResolvedCategory {
	return resolve(categories, preferences, locale, false)
}

// AllEntry returns the synthetic "all" entry labelled for locale.
func AllEntry(locale string) models.ResolvedCategory {
	label, ok := allLabels[locale]
	if !ok {
		label = defaultAllLabel
	}
	return models.ResolvedCategory{Value: AllValue, Label: label, IsSystem: true}
}

func resolve(categories []models.Category, preferences []models.UserPreference, locale string, visibleOnly bool) []models.ResolvedCategory {
	lookup := newPreferenceLookup(preferences)

	entries := make([]models.ResolvedCategory, 0, len(categories))
	for _, category := range categories {
		entries = append(entries, resolveCategory(category, lookup, locale))
	}

	// order asc, then label in the locale's alphabetical order ignoring
	// case; equal keys keep input order
	labels := collate.New(language.Make(locale), collate.IgnoreCase)
	sort.SliceStable(entries, func(i, j int) bool {
		if *entries[i].Order != *entries[j].Order {
			return *entries[i].Order < *entries[j].Order
		}
		return labels.CompareString(entries[i].Label, entries[j].Label) < 0
	})

	result := make([]models.ResolvedCategory, 0, len(entries)+1)
	result = append(result, AllEntry(locale))
	for _, entry := range entries {
		if visibleOnly && !*entry.IsVisible {
			continue
		}
		result = append(result, entry)
	}

	return result
}

func resolveCategory(category models.Category, lookup preferenceLookup, locale string) models.ResolvedCategory {
	label := category.Translated.Label(locale)
	if label == "" {
		label = category.Name
	}

	visible, order := true, DefaultOrder
	if pref, ok := lookup.find(category); ok {
		visible, order = pref.IsVisible, pref.DisplayOrder
	}

	id := category.ID
	return models.ResolvedCategory{
		Value:     category.Name,
		Label:     label,
		IsSystem:  category.IsSystem,
		IsVisible: &visible,
		Order:     &order,
		ID:        &id,
	}
}

// preferenceLookup indexes preferences by category id and by category name.
// The id index always wins over the name index.
type preferenceLookup struct {
	byID   map[int64]models.UserPreference
	byName map[string]models.UserPreference
}

func newPreferenceLookup(preferences []models.UserPreference) preferenceLookup {
	lookup := preferenceLookup{
		byID:   make(map[int64]models.UserPreference, len(preferences)),
		byName: make(map[string]models.UserPreference, len(preferences)),
	}

	for _, pref := range preferences {
		if pref.CategoryID != nil {
			lookup.byID[*pref.CategoryID] = pref
		}
		if pref.CategoryValue != nil && *pref.CategoryValue != "" {
			lookup.byName[*pref.CategoryValue] = pref
		}
	}

	return lookup
}

func (l preferenceLookup) find(category models.Category) (models.UserPreference, bool) {
	if pref, ok := l.byID[category.ID]; ok {
		return pref, true
	}
	pref, ok := l.byName[category.Name]
	return pref, ok
}
