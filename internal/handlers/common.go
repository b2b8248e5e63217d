package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vitrineimob/vitrine-api/internal/models"
	"github.com/vitrineimob/vitrine-api/internal/search"
)

// ErrorResponse is the JSON error envelope returned by every handler
type ErrorResponse struct {
	Error string `json:"error"`
}

// parseCriteria builds the search criteria from query parameters. Numeric
// parameters that fail to parse are ignored; a bad value must not empty a
// public search result.
func parseCriteria(c *gin.Context, agentID string) search.Criteria {
	criteria := search.Criteria{
		Keyword:      c.Query("q"),
		City:         c.Query("city"),
		Neighborhood: c.Query("neighborhood"),
		Type:         models.PropertyType(c.Query("type")),
		Operation:    models.Operation(c.Query("operation")),
		AgentID:      agentID,
	}

	if v := c.Query("min_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.MinPrice = &f
		}
	}
	if v := c.Query("max_price"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.MaxPrice = &f
		}
	}
	if v := c.Query("bedrooms"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			criteria.Bedrooms = &n
		}
	}
	if v := c.Query("garage"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			criteria.Garage = &b
		}
	}

	return criteria
}
