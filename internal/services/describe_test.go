package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vitrineimob/vitrine-api/internal/models"
)

func TestSuggestDescription(t *testing.T) {
	p := &models.Property{
		Type:         models.TypeApartamento,
		Operation:    models.OperationAluguel,
		City:         "São Paulo",
		Neighborhood: "Moema",
		Bedrooms:     2,
		Bathrooms:    1,
		Garage:       1,
		BuiltArea:    78,
	}

	got := SuggestDescription(p)
	assert.Contains(t, got, "Apartamento para alugar em Moema, São Paulo.")
	assert.Contains(t, got, "2 quartos")
	assert.Contains(t, got, "1 banheiro")
	assert.Contains(t, got, "1 vaga de garagem")
	assert.Contains(t, got, "78 m² de área construída")
}

func TestSuggestDescription_Minimal(t *testing.T) {
	p := &models.Property{
		Type:      models.TypeTerreno,
		Operation: models.OperationVenda,
	}

	got := SuggestDescription(p)
	assert.Equal(t, "Terreno à venda.", got)
}
