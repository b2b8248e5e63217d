package portal

import (
	"strconv"
	"strings"

	"github.com/vitrineimob/vitrine-api/internal/models"
)

// BuildChavesNaMao generates the Chaves na Mão advert document
func BuildChavesNaMao(properties []models.Property) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("\n<Anuncios>\n")

	for _, p := range properties {
		b.WriteString("<Anuncio>\n")
		b.WriteString("<CodigoCliente>" + Escape(p.ID) + "</CodigoCliente>\n")
		b.WriteString("<Titulo>" + Escape(p.Title) + "</Titulo>\n")
		b.WriteString("<Descricao>" + Escape(p.Description) + "</Descricao>\n")
		b.WriteString("<TipoImovel>" + Escape(string(p.Type)) + "</TipoImovel>\n")
		b.WriteString("<Transacao>" + Escape(string(p.Operation)) + "</Transacao>\n")
		b.WriteString("<Valor>" + fnum(p.Price) + "</Valor>\n")
		b.WriteString("<Dormitorios>" + strconv.Itoa(p.Bedrooms) + "</Dormitorios>\n")
		b.WriteString("<Banheiros>" + strconv.Itoa(p.Bathrooms) + "</Banheiros>\n")
		b.WriteString("<Garagem>" + strconv.Itoa(p.Garage) + "</Garagem>\n")
		b.WriteString("<AreaUtil>" + fnum(p.BuiltArea) + "</AreaUtil>\n")
		b.WriteString("<AreaTotal>" + fnum(p.TotalArea) + "</AreaTotal>\n")
		b.WriteString("<Cidade>" + Escape(p.City) + "</Cidade>\n")
		b.WriteString("<Bairro>" + Escape(p.Neighborhood) + "</Bairro>\n")
		b.WriteString("<Fotos>\n")
		for _, url := range p.Images {
			b.WriteString("<Foto><Url>" + Escape(url) + "</Url></Foto>\n")
		}
		b.WriteString("</Fotos>\n")
		b.WriteString("</Anuncio>\n")
	}

	b.WriteString("</Anuncios>")
	return b.String()
}
