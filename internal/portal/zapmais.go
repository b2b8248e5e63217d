package portal

import (
	"strconv"
	"strings"

	"github.com/vitrineimob/vitrine-api/internal/models"
)

// BuildZap generates the ZAP+ carga document. ZAP distinguishes offers by
// TipoOferta (Venda/Locacao) and expects the price in PrecoVenda or
// PrecoLocacao exclusively; the other element is emitted empty, not omitted.
func BuildZap(properties []models.Property) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	b.WriteString("\n<Carga>\n<Imoveis>\n")

	for _, p := range properties {
		oferta := "Venda"
		if p.Operation == models.OperationAluguel {
			oferta = "Locacao"
		}
		precoVenda, precoLocacao := fnum(p.Price), ""
		if oferta == "Locacao" {
			precoVenda, precoLocacao = "", fnum(p.Price)
		}

		b.WriteString("<Imovel>\n")
		b.WriteString("<CodigoImovel>" + Escape(p.ID) + "</CodigoImovel>\n")
		b.WriteString("<TipoImovel>" + Escape(string(p.Type)) + "</TipoImovel>\n")
		b.WriteString("<TipoOferta>" + oferta + "</TipoOferta>\n")
		b.WriteString("<PrecoVenda>" + precoVenda + "</PrecoVenda>\n")
		b.WriteString("<PrecoLocacao>" + precoLocacao + "</PrecoLocacao>\n")
		b.WriteString("<TituloAnuncio>" + Escape(p.Title) + "</TituloAnuncio>\n")
		b.WriteString("<Observacao>" + Escape(p.Description) + "</Observacao>\n")
		b.WriteString("<Cidade>" + Escape(p.City) + "</Cidade>\n")
		b.WriteString("<Bairro>" + Escape(p.Neighborhood) + "</Bairro>\n")
		b.WriteString("<QtdDormitorios>" + strconv.Itoa(p.Bedrooms) + "</QtdDormitorios>\n")
		b.WriteString("<QtdBanheiros>" + strconv.Itoa(p.Bathrooms) + "</QtdBanheiros>\n")
		b.WriteString("<QtdVagas>" + strconv.Itoa(p.Garage) + "</QtdVagas>\n")
		b.WriteString("<AreaUtil>" + fnum(p.BuiltArea) + "</AreaUtil>\n")
		b.WriteString("<AreaTotal>" + fnum(p.TotalArea) + "</AreaTotal>\n")
		b.WriteString("<Fotos>\n")
		for _, url := range p.Images {
			b.WriteString("<Foto><URLArquivo>" + Escape(url) + "</URLArquivo></Foto>\n")
		}
		b.WriteString("</Fotos>\n")
		b.WriteString("</Imovel>\n")
	}

	b.WriteString("</Imoveis>\n</Carga>")
	return b.String()
}
