package leads

import (
	"testing"

	"github.com/vitrineimob/vitrine-api/internal/models"
)

func TestDetectType_MessageOnly(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    models.LeadType
	}{
		{"seller verb", "Quero vender meu apartamento", models.LeadSeller},
		{"seller valuation", "Gostaria de uma avaliação do meu imóvel", models.LeadSeller},
		{"buyer rent", "Tenho interesse em alugar", models.LeadBuyer},
		{"buyer visit", "Posso agendar uma visita?", models.LeadBuyer},
		{"buyer financing", "Vocês trabalham com financiamento?", models.LeadBuyer},
		{"generic message", "Olá, gostaria de mais informações", models.LeadOther},
		{"empty message", "", models.LeadOther},
		{"case-insensitive", "QUERO VENDER minha casa", models.LeadSeller},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectType(tt.message, "")
			if got != tt.want {
				t.Errorf("DetectType(%q, \"\") = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestDetectType_ContextTakesPrecedence(t *testing.T) {
	// A seller context wins even when the message body reads like a buyer.
	got := DetectType("Tenho interesse em alugar", "pagina-anunciar-imovel")
	if got != models.LeadSeller {
		t.Errorf("seller context should take precedence, got %q", got)
	}

	// A buyer context wins over a seller-sounding body.
	got = DetectType("Quero vender meu apartamento", "interesse-no-imovel-42")
	if got != models.LeadBuyer {
		t.Errorf("buyer context should take precedence, got %q", got)
	}
}

func TestDetectType_ContextNoMatchFallsThroughToMessage(t *testing.T) {
	got := DetectType("Quero vender meu apartamento", "pagina-inicial")
	if got != models.LeadSeller {
		t.Errorf("unmatched context must fall through to the message, got %q", got)
	}

	got = DetectType("Olá, gostaria de mais informações", "pagina-inicial")
	if got != models.LeadOther {
		t.Errorf("unmatched context and message should be other, got %q", got)
	}
}

func TestDetectType_SellerCheckedBeforeBuyer(t *testing.T) {
	// Message carries both seller and buyer keywords; seller wins.
	got := DetectType("Quero vender minha casa e comprar outra", "")
	if got != models.LeadSeller {
		t.Errorf("seller keywords are checked first, got %q", got)
	}
}
