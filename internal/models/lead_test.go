package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadInput_UnmarshalAliases(t *testing.T) {
	payload := `{
		"nome": "Maria Souza",
		"telefone": "21999990000",
		"mensagem": "Quero vender meu apartamento",
		"imovel_id": "prop-1",
		"contexto": "vender"
	}`

	var in LeadInput
	require.NoError(t, json.Unmarshal([]byte(payload), &in))

	assert.Equal(t, "Maria Souza", in.Name)
	assert.Equal(t, "21999990000", in.Phone)
	assert.Equal(t, "Quero vender meu apartamento", in.Message)
	assert.Equal(t, "prop-1", in.PropertyID)
	assert.Equal(t, "vender", in.Context)
}

func TestLeadInput_CanonicalWinsOverAlias(t *testing.T) {
	payload := `{"name": "Ana", "nome": "Outra", "message": "oi", "mensagem": "outro"}`

	var in LeadInput
	require.NoError(t, json.Unmarshal([]byte(payload), &in))

	assert.Equal(t, "Ana", in.Name)
	assert.Equal(t, "oi", in.Message)
}

func TestLeadInput_CanonicalFields(t *testing.T) {
	payload := `{"name": "João", "email": "joao@example.com", "message": "Tenho interesse"}`

	var in LeadInput
	require.NoError(t, json.Unmarshal([]byte(payload), &in))

	assert.Equal(t, "João", in.Name)
	assert.Equal(t, "joao@example.com", in.Email)
	assert.Equal(t, "Tenho interesse", in.Message)
}

func TestValidLeadStatus(t *testing.T) {
	assert.True(t, ValidLeadStatus(LeadStatusNew))
	assert.True(t, ValidLeadStatus(LeadStatusRead))
	assert.True(t, ValidLeadStatus(LeadStatusArchived))
	assert.False(t, ValidLeadStatus("spam"))
}
