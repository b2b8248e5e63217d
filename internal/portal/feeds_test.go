package portal

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrineimob/vitrine-api/internal/models"
)

// assertWellFormed runs the document through the stdlib decoder to confirm
// it is a single well-formed XML document.
func assertWellFormed(t *testing.T, doc string) {
	t.Helper()
	decoder := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			t.Fatalf("document is not well-formed XML: %v", err)
		}
	}
}

func feedProperties() []models.Property {
	return []models.Property{
		{
			ID:           "42",
			Title:        "Apartamento Centro",
			Description:  "2 quartos & varanda",
			Type:         models.TypeApartamento,
			Operation:    models.OperationAluguel,
			Price:        2000,
			Bedrooms:     2,
			Bathrooms:    1,
			City:         "Belo Horizonte",
			Neighborhood: "Centro",
			Images:       []string{"https://cdn.example.com/42/1.jpg"},
			Status:       models.StatusAtivo,
		},
		{
			ID:        "43",
			Title:     `Casa "térrea"`,
			Type:      models.TypeCasa,
			Operation: models.OperationVenda,
			Price:     450000,
			Status:    models.StatusAtivo,
		},
	}
}

func TestBuildZap_ExclusivePriceFields(t *testing.T) {
	doc := BuildZap([]models.Property{{ID: "42", Operation: models.OperationAluguel, Price: 2000}})

	assert.Contains(t, doc, "<PrecoLocacao>2000</PrecoLocacao>")
	assert.Contains(t, doc, "<PrecoVenda></PrecoVenda>")
	assert.Contains(t, doc, "<TipoOferta>Locacao</TipoOferta>")

	doc = BuildZap([]models.Property{{ID: "7", Operation: models.OperationVenda, Price: 450000}})
	assert.Contains(t, doc, "<PrecoVenda>450000</PrecoVenda>")
	assert.Contains(t, doc, "<PrecoLocacao></PrecoLocacao>")
	assert.Contains(t, doc, "<TipoOferta>Venda</TipoOferta>")
}

func TestBuildZap_Document(t *testing.T) {
	props := feedProperties()
	doc := BuildZap(props)

	assertWellFormed(t, doc)
	assert.True(t, strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Equal(t, 2, strings.Count(doc, "<Imovel>"))

	// Items appear in input order
	require.Less(t, strings.Index(doc, "<CodigoImovel>42<"), strings.Index(doc, "<CodigoImovel>43<"))

	// Free text escaped exactly once
	assert.Contains(t, doc, "<Observacao>2 quartos &amp; varanda</Observacao>")
	assert.Contains(t, doc, "<TituloAnuncio>Casa &quot;térrea&quot;</TituloAnuncio>")
	assert.NotContains(t, doc, "&amp;amp;")
}

func TestBuildGenerators_EmptyInput(t *testing.T) {
	tests := []struct {
		portal string
		build  func([]models.Property) string
		root   string
	}{
		{"zap", BuildZap, "Carga"},
		{"imovelweb", BuildImovelweb, "ads"},
		{"casamineira", BuildCasaMineira, "imoveis"},
		{"chavesnamao", BuildChavesNaMao, "Anuncios"},
		{"tecimob", BuildTecimob, "properties"},
	}

	for _, tt := range tests {
		t.Run(tt.portal, func(t *testing.T) {
			doc := tt.build(nil)
			assertWellFormed(t, doc)
			assert.Contains(t, doc, "<"+tt.root+">")
			assert.Contains(t, doc, "</"+tt.root+">")
		})
	}
}

func TestBuildGenerators_EveryPropertyOncePerPortal(t *testing.T) {
	props := feedProperties()

	tests := []struct {
		portal  string
		build   func([]models.Property) string
		itemTag string
	}{
		{"zap", BuildZap, "<Imovel>"},
		{"imovelweb", BuildImovelweb, "<ad>"},
		{"casamineira", BuildCasaMineira, "<imovel>"},
		{"chavesnamao", BuildChavesNaMao, "<Anuncio>"},
		{"tecimob", BuildTecimob, "<property>"},
	}

	for _, tt := range tests {
		t.Run(tt.portal, func(t *testing.T) {
			doc := tt.build(props)
			assertWellFormed(t, doc)
			assert.Equal(t, len(props), strings.Count(doc, tt.itemTag))
		})
	}
}

func TestBuildImovelweb_Fields(t *testing.T) {
	doc := BuildImovelweb(feedProperties())

	assert.Contains(t, doc, "<content>2 quartos &amp; varanda</content>")
	assert.Contains(t, doc, "<price>2000</price>")
	assert.Contains(t, doc, "<operation>Aluguel</operation>")
	assert.Contains(t, doc, "<picture><url>https://cdn.example.com/42/1.jpg</url></picture>")
}

func TestBuildCasaMineira_Fields(t *testing.T) {
	doc := BuildCasaMineira(feedProperties())

	assert.Contains(t, doc, "<codigo>42</codigo>")
	assert.Contains(t, doc, "<operacao>Aluguel</operacao>")
	assert.Contains(t, doc, "<bairro>Centro</bairro>")
	assert.Contains(t, doc, "<foto>https://cdn.example.com/42/1.jpg</foto>")
}

func TestBuildChavesNaMao_Fields(t *testing.T) {
	doc := BuildChavesNaMao(feedProperties())

	assert.Contains(t, doc, "<CodigoCliente>42</CodigoCliente>")
	assert.Contains(t, doc, "<Transacao>Aluguel</Transacao>")
	assert.Contains(t, doc, "<Valor>2000</Valor>")
	assert.Contains(t, doc, "<Titulo>Casa &quot;térrea&quot;</Titulo>")
}

func TestBuildTecimob_Fields(t *testing.T) {
	doc := BuildTecimob(feedProperties())

	assert.Contains(t, doc, "<reference>42</reference>")
	assert.Contains(t, doc, "<transaction>Aluguel</transaction>")
	assert.Contains(t, doc, "<district>Centro</district>")
	assert.Contains(t, doc, "<image>https://cdn.example.com/42/1.jpg</image>")
}
