// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ParseRequest asks the server to extract a recipe from free text or a URL.
type ParseRequest struct {
	Text   string `json:"text,omitempty"`
	URL    string `json:"url,omitempty"`
	Locale string `json:"locale,omitempty"`
}

// ParsedRecipe is the structured result of recipe extraction.
// It is returned to the client for review and is not persisted.
type ParsedRecipe struct {
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	Category     string       `json:"category,omitempty"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	Servings     int          `json:"servings,omitempty"`
	PrepMinutes  int          `json:"prep_minutes,omitempty"`
	CookMinutes  int          `json:"cook_minutes,omitempty"`
	SourceURL    string       `json:"source_url,omitempty"`
}

// ToRecipe converts the parsed result into a recipe owned by userID.
func (p ParsedRecipe) ToRecipe(userID int64) Recipe {
	return Recipe{
		UserID:       userID,
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		Ingredients:  p.Ingredients,
		Instructions: p.Instructions,
		Servings:     p.Servings,
		PrepMinutes:  p.PrepMinutes,
		CookMinutes:  p.CookMinutes,
		SourceURL:    p.SourceURL,
	}
}
