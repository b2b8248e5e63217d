// Package search implements the public listing search used by the agent
// marketing sites. Filtering is pure and stateless; the caller supplies the
// candidate list already fetched from storage.
package search

import (
	"strings"

	"github.com/vitrineimob/vitrine-api/internal/models"
)

// Criteria is the optional-field filter record built per search request.
// Nil pointer fields mean the corresponding stage is skipped.
type Criteria struct {
	Keyword      string
	City         string
	Neighborhood string
	Type         models.PropertyType
	Operation    models.Operation
	MinPrice     *float64
	MaxPrice     *float64
	Bedrooms     *int
	Garage       *bool
	AgentID      string
}

// Filter narrows properties to those matching every set criterion.
//
// When the conjunctive result is empty and a keyword was given, the original
// list is re-scanned by description substring alone, ignoring every other
// criterion. That broadening is intentional: a visitor searching "piscina"
// with a mismatched city filter still sees pool listings rather than an
// empty page.
func Filter(properties []models.Property, c Criteria) []models.Property {
	result := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if matches(&p, c) {
			result = append(result, p)
		}
	}

	if len(result) == 0 && c.Keyword != "" {
		keyword := strings.ToLower(c.Keyword)
		for _, p := range properties {
			if strings.Contains(strings.ToLower(p.Description), keyword) {
				result = append(result, p)
			}
		}
	}

	return result
}

// matches applies the conjunction of per-field predicates
func matches(p *models.Property, c Criteria) bool {
	if c.Keyword != "" {
		keyword := strings.ToLower(c.Keyword)
		if !strings.Contains(strings.ToLower(p.Title), keyword) &&
			!strings.Contains(strings.ToLower(p.City), keyword) &&
			!strings.Contains(strings.ToLower(p.Neighborhood), keyword) {
			return false
		}
	}
	if c.City != "" && p.City != c.City {
		return false
	}
	if c.Neighborhood != "" &&
		!strings.Contains(strings.ToLower(p.Neighborhood), strings.ToLower(c.Neighborhood)) {
		return false
	}
	if c.Type != "" && p.Type != c.Type {
		return false
	}
	if c.Operation != "" && p.Operation != c.Operation {
		return false
	}
	if c.MinPrice != nil && p.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}
	if c.Bedrooms != nil && p.Bedrooms < *c.Bedrooms {
		return false
	}
	if c.Garage != nil {
		if *c.Garage && p.Garage == 0 {
			return false
		}
		if !*c.Garage && p.Garage != 0 {
			return false
		}
	}
	if c.AgentID != "" && p.AgentID != c.AgentID {
		return false
	}
	return true
}
