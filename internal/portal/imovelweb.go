package portal

import (
	"strconv"
	"strings"

	"github.com/vitrineimob/vitrine-api/internal/models"
)

// BuildImovelweb generates the Imovelweb ad listing document
func BuildImovelweb(properties []models.Property) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("\n<ads>\n")

	for _, p := range properties {
		b.WriteString("<ad>\n")
		b.WriteString("<id>" + Escape(p.ID) + "</id>\n")
		b.WriteString("<title>" + Escape(p.Title) + "</title>\n")
		b.WriteString("<content>" + Escape(p.Description) + "</content>\n")
		b.WriteString("<propertyType>" + Escape(string(p.Type)) + "</propertyType>\n")
		b.WriteString("<operation>" + Escape(string(p.Operation)) + "</operation>\n")
		b.WriteString("<price>" + fnum(p.Price) + "</price>\n")
		b.WriteString("<rooms>" + strconv.Itoa(p.Bedrooms) + "</rooms>\n")
		b.WriteString("<bathrooms>" + strconv.Itoa(p.Bathrooms) + "</bathrooms>\n")
		b.WriteString("<garages>" + strconv.Itoa(p.Garage) + "</garages>\n")
		b.WriteString("<coveredArea>" + fnum(p.BuiltArea) + "</coveredArea>\n")
		b.WriteString("<totalArea>" + fnum(p.TotalArea) + "</totalArea>\n")
		b.WriteString("<city>" + Escape(p.City) + "</city>\n")
		b.WriteString("<neighbourhood>" + Escape(p.Neighborhood) + "</neighbourhood>\n")
		b.WriteString("<pictures>\n")
		for _, url := range p.Images {
			b.WriteString("<picture><url>" + Escape(url) + "</url></picture>\n")
		}
		b.WriteString("</pictures>\n")
		b.WriteString("</ad>\n")
	}

	b.WriteString("</ads>")
	return b.String()
}
