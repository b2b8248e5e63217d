package services

import (
	"fmt"
	"strings"

	"github.com/vitrineimob/vitrine-api/internal/models"
)

// SuggestDescription assembles a draft listing description from the
// structured fields. It stands in for the hosted text-generation call made
// by the dashboard; the output is a starting point the agent edits.
func SuggestDescription(p *models.Property) string {
	var parts []string

	article := "à venda"
	if p.Operation == models.OperationAluguel {
		article = "para alugar"
	}

	location := p.City
	if p.Neighborhood != "" && p.City != "" {
		location = p.Neighborhood + ", " + p.City
	} else if p.Neighborhood != "" {
		location = p.Neighborhood
	}

	head := fmt.Sprintf("%s %s", p.Type, article)
	if location != "" {
		head += " em " + location
	}
	parts = append(parts, head+".")

	if p.Bedrooms > 0 {
		noun := "quartos"
		if p.Bedrooms == 1 {
			noun = "quarto"
		}
		parts = append(parts, fmt.Sprintf("%d %s", p.Bedrooms, noun))
	}
	if p.Bathrooms > 0 {
		noun := "banheiros"
		if p.Bathrooms == 1 {
			noun = "banheiro"
		}
		parts = append(parts, fmt.Sprintf("%d %s", p.Bathrooms, noun))
	}
	if p.Garage > 0 {
		noun := "vagas de garagem"
		if p.Garage == 1 {
			noun = "vaga de garagem"
		}
		parts = append(parts, fmt.Sprintf("%d %s", p.Garage, noun))
	}
	if p.BuiltArea > 0 {
		parts = append(parts, fmt.Sprintf("%.0f m² de área construída", p.BuiltArea))
	}

	if len(parts) == 1 {
		return parts[0]
	}
	return parts[0] + " " + strings.Join(parts[1:], ", ") + "."
}
