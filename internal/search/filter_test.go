package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vitrineimob/vitrine-api/internal/models"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func boolPtr(b bool) *bool        { return &b }

func sampleProperties() []models.Property {
	return []models.Property{
		{
			ID:           "p1",
			Title:        "Casa Azul",
			Description:  "tem piscina incrível",
			City:         "SP",
			Neighborhood: "Moema",
			Type:         models.TypeCasa,
			Operation:    models.OperationVenda,
			Price:        500000,
			Bedrooms:     3,
			Garage:       2,
		},
		{
			ID:           "p2",
			Title:        "Apartamento Centro",
			Description:  "perto do metrô",
			City:         "RJ",
			Neighborhood: "Centro",
			Type:         models.TypeApartamento,
			Operation:    models.OperationAluguel,
			Price:        2000,
			Bedrooms:     2,
			Garage:       0,
		},
		{
			ID:           "p3",
			Title:        "Kitnet mobiliada",
			Description:  "ideal para estudantes",
			City:         "SP",
			Neighborhood: "Vila Mariana",
			Type:         models.TypeKitnet,
			Operation:    models.OperationAluguel,
			Price:        1200,
			Bedrooms:     1,
			Garage:       0,
		},
	}
}

func TestFilter_NoCriteriaReturnsAll(t *testing.T) {
	props := sampleProperties()
	result := Filter(props, Criteria{})
	assert.Len(t, result, len(props))
}

func TestFilter_Conjunction(t *testing.T) {
	props := sampleProperties()

	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []string
	}{
		{
			name:     "city exact match",
			criteria: Criteria{City: "SP"},
			wantIDs:  []string{"p1", "p3"},
		},
		{
			name:     "city is exact, not substring",
			criteria: Criteria{City: "S"},
			wantIDs:  []string{},
		},
		{
			name:     "neighborhood substring, case-insensitive",
			criteria: Criteria{Neighborhood: "vila"},
			wantIDs:  []string{"p3"},
		},
		{
			name:     "type and operation",
			criteria: Criteria{Type: models.TypeApartamento, Operation: models.OperationAluguel},
			wantIDs:  []string{"p2"},
		},
		{
			name:     "price range inclusive",
			criteria: Criteria{MinPrice: floatPtr(1200), MaxPrice: floatPtr(2000)},
			wantIDs:  []string{"p2", "p3"},
		},
		{
			name:     "minimum bedrooms",
			criteria: Criteria{Bedrooms: intPtr(2)},
			wantIDs:  []string{"p1", "p2"},
		},
		{
			name:     "garage required",
			criteria: Criteria{Garage: boolPtr(true)},
			wantIDs:  []string{"p1"},
		},
		{
			name:     "no garage",
			criteria: Criteria{Garage: boolPtr(false)},
			wantIDs:  []string{"p2", "p3"},
		},
		{
			name:     "keyword matches title",
			criteria: Criteria{Keyword: "casa"},
			wantIDs:  []string{"p1"},
		},
		{
			name:     "keyword matches neighborhood",
			criteria: Criteria{Keyword: "centro"},
			wantIDs:  []string{"p2"},
		},
		{
			name:     "combined stages narrow",
			criteria: Criteria{City: "SP", Operation: models.OperationAluguel},
			wantIDs:  []string{"p3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Filter(props, tt.criteria)
			got := make([]string, 0, len(result))
			for _, p := range result {
				got = append(got, p.ID)
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestFilter_KeywordFallbackToDescription(t *testing.T) {
	props := []models.Property{
		{ID: "p1", Title: "Casa Azul", City: "SP", Description: "tem piscina incrível"},
	}

	// City mismatch empties the conjunctive result; the keyword then
	// re-searches descriptions on the original list.
	result := Filter(props, Criteria{Keyword: "piscina", City: "RJ"})
	assert.Len(t, result, 1)
	assert.Equal(t, "p1", result[0].ID)
}

func TestFilter_FallbackIgnoresAllStructuredCriteria(t *testing.T) {
	props := sampleProperties()

	result := Filter(props, Criteria{
		Keyword:  "piscina",
		City:     "RJ",
		Type:     models.TypeGalpao,
		MinPrice: floatPtr(9000000),
	})
	assert.Len(t, result, 1)
	assert.Equal(t, "p1", result[0].ID)
}

func TestFilter_NoFallbackWithoutKeyword(t *testing.T) {
	props := sampleProperties()

	// Empty result and no keyword: no broadening happens.
	result := Filter(props, Criteria{City: "BH"})
	assert.Empty(t, result)
}

func TestFilter_NoFallbackWhenNarrowedResultNonEmpty(t *testing.T) {
	props := sampleProperties()

	// "centro" matches p2 conjunctively; the description of p3 must not
	// be consulted even though fallback would also match nothing there.
	result := Filter(props, Criteria{Keyword: "centro"})
	assert.Len(t, result, 1)
	assert.Equal(t, "p2", result[0].ID)
}

func TestFilter_FallbackMissEverythingYieldsEmpty(t *testing.T) {
	props := sampleProperties()

	result := Filter(props, Criteria{Keyword: "heliporto", City: "BH"})
	assert.Empty(t, result)
}

func TestFilter_Idempotent(t *testing.T) {
	props := sampleProperties()
	criteria := []Criteria{
		{},
		{City: "SP"},
		{Keyword: "piscina", City: "RJ"},
		{Operation: models.OperationAluguel, Garage: boolPtr(false)},
	}

	for _, c := range criteria {
		once := Filter(props, c)
		twice := Filter(once, c)
		assert.Equal(t, once, twice)
	}
}

func TestFilter_AgentScope(t *testing.T) {
	props := []models.Property{
		{ID: "p1", AgentID: "a1", Title: "Casa"},
		{ID: "p2", AgentID: "a2", Title: "Casa"},
	}

	result := Filter(props, Criteria{AgentID: "a2"})
	assert.Len(t, result, 1)
	assert.Equal(t, "p2", result[0].ID)
}
