package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrineimob/vitrine-api/internal/models"
)

const sampleCarga = `<?xml version="1.0" encoding="UTF-8"?>
<carga>
  <imovel>
    <codigo>REF-001</codigo>
    <titulo>Casa com quintal</titulo>
    <descricao>Ampla casa &amp; quintal</descricao>
    <tipo>Casa</tipo>
    <operacao>Venda</operacao>
    <preco>350000</preco>
    <quartos>3</quartos>
    <banheiros>2</banheiros>
    <vagas>1</vagas>
    <areaconstruida>120.5</areaconstruida>
    <areatotal>200</areatotal>
    <cidade>Belo Horizonte</cidade>
    <bairro>Savassi</bairro>
    <fotos>
      <foto>https://cdn.example.com/ref001/1.jpg</foto>
      <foto>https://cdn.example.com/ref001/2.jpg</foto>
    </fotos>
  </imovel>
  <imovel>
    <titulo>Kitnet centro</titulo>
    <tipo>Kitnet</tipo>
    <operacao>Aluguel</operacao>
    <preco>not-a-number</preco>
  </imovel>
</carga>`

func TestParseCargaXML(t *testing.T) {
	properties, err := ParseCargaXML([]byte(sampleCarga))
	require.NoError(t, err)
	require.Len(t, properties, 2)

	first := properties[0]
	assert.Equal(t, "REF-001", first.Reference)
	assert.Equal(t, "Casa com quintal", first.Title)
	assert.Equal(t, "Ampla casa & quintal", first.Description)
	assert.Equal(t, models.TypeCasa, first.Type)
	assert.Equal(t, models.OperationVenda, first.Operation)
	assert.Equal(t, 350000.0, first.Price)
	assert.Equal(t, 3, first.Bedrooms)
	assert.Equal(t, 2, first.Bathrooms)
	assert.Equal(t, 1, first.Garage)
	assert.Equal(t, 120.5, first.BuiltArea)
	assert.Equal(t, "Savassi", first.Neighborhood)
	assert.Len(t, first.Images, 2)
	assert.Equal(t, models.StatusAtivo, first.Status)

	// Malformed numerics degrade to zero instead of failing the upload
	second := properties[1]
	assert.Equal(t, "Kitnet centro", second.Title)
	assert.Equal(t, 0.0, second.Price)
}

func TestParseCargaXML_Invalid(t *testing.T) {
	_, err := ParseCargaXML([]byte("not xml at all <"))
	assert.Error(t, err)
}

func TestParseCargaXML_Empty(t *testing.T) {
	properties, err := ParseCargaXML([]byte(`<carga></carga>`))
	require.NoError(t, err)
	assert.Empty(t, properties)
}
