package models

import "fellowdash.org/internal/percentile"

// RiskCategoryReference describes one risk category and how it is displayed
type RiskCategoryReference struct {
	Name     string                     `json:"name"`
	Color    string                     `json:"color"`
	Glyph    string                     `json:"glyph"`
	Bands    []string                   `json:"percentiles"`
	Advisory percentile.AdvisoryMessage `json:"advisory"`
}

// ReferencesModel References model for related data
type ReferencesModel struct {
	RiskCategories []RiskCategoryReference `json:"riskCategories"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		RiskCategories: []RiskCategoryReference{},
	}
}

// NewRiskCategoryReference builds the reference entry for a category
func NewRiskCategoryReference(category percentile.Category) RiskCategoryReference {
	bands := make([]string, 0, 2)
	for _, b := range percentile.AllBands() {
		if b.Category() == category {
			bands = append(bands, b.String())
		}
	}

	return RiskCategoryReference{
		Name:     string(category),
		Color:    category.Color(),
		Glyph:    category.Glyph(),
		Bands:    bands,
		Advisory: percentile.Advisory(category),
	}
}

// NewCategoryReferences references the given categories, in order, once each
func NewCategoryReferences(categories ...percentile.Category) ReferencesModel {
	references := NewEmptyReferences()
	seen := make(map[percentile.Category]bool, len(categories))
	for _, c := range categories {
		if seen[c] {
			continue
		}
		seen[c] = true
		references.RiskCategories = append(references.RiskCategories, NewRiskCategoryReference(c))
	}
	return references
}
