package portal

import (
	"strconv"
	"strings"

	"github.com/vitrineimob/vitrine-api/internal/models"
)

// BuildCasaMineira generates the Casa Mineira export document
func BuildCasaMineira(properties []models.Property) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("\n<imoveis>\n")

	for _, p := range properties {
		b.WriteString("<imovel>\n")
		b.WriteString("<codigo>" + Escape(p.ID) + "</codigo>\n")
		b.WriteString("<titulo>" + Escape(p.Title) + "</titulo>\n")
		b.WriteString("<descricao>" + Escape(p.Description) + "</descricao>\n")
		b.WriteString("<tipo>" + Escape(string(p.Type)) + "</tipo>\n")
		b.WriteString("<operacao>" + Escape(string(p.Operation)) + "</operacao>\n")
		b.WriteString("<preco>" + fnum(p.Price) + "</preco>\n")
		b.WriteString("<quartos>" + strconv.Itoa(p.Bedrooms) + "</quartos>\n")
		b.WriteString("<banheiros>" + strconv.Itoa(p.Bathrooms) + "</banheiros>\n")
		b.WriteString("<vagas>" + strconv.Itoa(p.Garage) + "</vagas>\n")
		b.WriteString("<areaconstruida>" + fnum(p.BuiltArea) + "</areaconstruida>\n")
		b.WriteString("<areatotal>" + fnum(p.TotalArea) + "</areatotal>\n")
		b.WriteString("<cidade>" + Escape(p.City) + "</cidade>\n")
		b.WriteString("<bairro>" + Escape(p.Neighborhood) + "</bairro>\n")
		b.WriteString("<fotos>\n")
		for _, url := range p.Images {
			b.WriteString("<foto>" + Escape(url) + "</foto>\n")
		}
		b.WriteString("</fotos>\n")
		b.WriteString("</imovel>\n")
	}

	b.WriteString("</imoveis>")
	return b.String()
}
