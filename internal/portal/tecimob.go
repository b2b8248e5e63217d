package portal

import (
	"strconv"
	"strings"

	"github.com/vitrineimob/vitrine-api/internal/models"
)

// BuildTecimob generates the Tecimob property export document
func BuildTecimob(properties []models.Property) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("\n<properties>\n")

	for _, p := range properties {
		b.WriteString("<property>\n")
		b.WriteString("<reference>" + Escape(p.ID) + "</reference>\n")
		b.WriteString("<title>" + Escape(p.Title) + "</title>\n")
		b.WriteString("<description>" + Escape(p.Description) + "</description>\n")
		b.WriteString("<type>" + Escape(string(p.Type)) + "</type>\n")
		b.WriteString("<transaction>" + Escape(string(p.Operation)) + "</transaction>\n")
		b.WriteString("<price>" + fnum(p.Price) + "</price>\n")
		b.WriteString("<bedrooms>" + strconv.Itoa(p.Bedrooms) + "</bedrooms>\n")
		b.WriteString("<bathrooms>" + strconv.Itoa(p.Bathrooms) + "</bathrooms>\n")
		b.WriteString("<garage>" + strconv.Itoa(p.Garage) + "</garage>\n")
		b.WriteString("<built_area>" + fnum(p.BuiltArea) + "</built_area>\n")
		b.WriteString("<total_area>" + fnum(p.TotalArea) + "</total_area>\n")
		b.WriteString("<city>" + Escape(p.City) + "</city>\n")
		b.WriteString("<district>" + Escape(p.Neighborhood) + "</district>\n")
		b.WriteString("<images>\n")
		for _, url := range p.Images {
			b.WriteString("<image>" + Escape(url) + "</image>\n")
		}
		b.WriteString("</images>\n")
		b.WriteString("</property>\n")
	}

	b.WriteString("</properties>")
	return b.String()
}
