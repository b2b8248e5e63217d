// Package leads classifies inbound contact messages so the dashboard can
// separate owners offering a property from visitors looking for one.
package leads

import (
	"strings"

	"github.com/vitrineimob/vitrine-api/internal/models"
)

// Keyword sets are matched as case-insensitive substrings. Any match
// suffices; the listed order carries no meaning.
var (
	sellerKeywords = []string{
		"vender",
		"venda do meu",
		"meu imóvel",
		"meu imovel",
		"proprietário",
		"proprietario",
		"avaliação",
		"avaliacao",
		"avaliar",
		"anunciar",
		"colocar à venda",
		"colocar a venda",
	}
	buyerKeywords = []string{
		"comprar",
		"compra",
		"alugar",
		"aluguel",
		"interesse",
		"visita",
		"agendar",
		"financiamento",
		"quanto custa",
	}

	contextSellerKeywords = []string{
		"vender",
		"anunciar",
		"avaliar",
		"proprietário",
		"proprietario",
	}
	contextBuyerKeywords = []string{
		"imóvel",
		"imovel",
		"comprar",
		"alugar",
		"interesse",
	}
)

// DetectType classifies a contact message. A non-empty context (the page
// the form was submitted from) short-circuits on match and takes precedence
// over the message body; otherwise the body is checked, seller first.
// Missing message and context fall through to other.
func DetectType(message, context string) models.LeadType {
	if context != "" {
		lowered := strings.ToLower(context)
		if containsAny(lowered, contextSellerKeywords) {
			return models.LeadSeller
		}
		if containsAny(lowered, contextBuyerKeywords) {
			return models.LeadBuyer
		}
	}

	lowered := strings.ToLower(message)
	if containsAny(lowered, sellerKeywords) {
		return models.LeadSeller
	}
	if containsAny(lowered, buyerKeywords) {
		return models.LeadBuyer
	}
	return models.LeadOther
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
