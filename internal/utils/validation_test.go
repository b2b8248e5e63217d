package utils

import (
	"testing"

	"github.com/vitrineimob/vitrine-api/internal/models"
)

func TestNewValidationResult(t *testing.T) {
	result := NewValidationResult()

	if result == nil {
		t.Fatal("NewValidationResult() returned nil")
	}
	if !result.IsValid {
		t.Error("NewValidationResult() IsValid should be true")
	}
	if len(result.Errors) != 0 {
		t.Errorf("NewValidationResult() should have 0 errors, got %d", len(result.Errors))
	}
}

func TestValidationResult_AddError(t *testing.T) {
	result := NewValidationResult()

	result.AddError("test_field", "test message")

	if result.IsValid {
		t.Error("AddError() should set IsValid to false")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("AddError() should have 1 error, got %d", len(result.Errors))
	}
	if result.Errors[0].Field != "test_field" {
		t.Errorf("AddError() Field = %q, want %q", result.Errors[0].Field, "test_field")
	}
}

func TestValidateProperty(t *testing.T) {
	valid := models.Property{
		Title:     "Casa em Moema",
		Price:     500000,
		Type:      models.TypeCasa,
		Operation: models.OperationVenda,
		Status:    models.StatusAtivo,
	}

	tests := []struct {
		name       string
		mutate     func(*models.Property)
		wantValid  bool
		wantField  string
	}{
		{"valid property", func(p *models.Property) {}, true, ""},
		{"missing title", func(p *models.Property) { p.Title = " " }, false, "title"},
		{"negative price", func(p *models.Property) { p.Price = -1 }, false, "price"},
		{"unknown type", func(p *models.Property) { p.Type = "Castelo" }, false, "type"},
		{"unknown operation", func(p *models.Property) { p.Operation = "Troca" }, false, "operation"},
		{"unknown status", func(p *models.Property) { p.Status = "pausado" }, false, "status"},
		{"negative bedrooms", func(p *models.Property) { p.Bedrooms = -2 }, false, "bedrooms"},
		{"zero price allowed", func(p *models.Property) { p.Price = 0 }, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			result := ValidateProperty(&p)

			if result.IsValid != tt.wantValid {
				t.Fatalf("ValidateProperty() IsValid = %v, want %v (errors: %v)",
					result.IsValid, tt.wantValid, result.Errors)
			}
			if tt.wantField != "" {
				found := false
				for _, e := range result.Errors {
					if e.Field == tt.wantField {
						found = true
					}
				}
				if !found {
					t.Errorf("expected error on field %q, got %v", tt.wantField, result.Errors)
				}
			}
		})
	}
}

func TestValidateLeadInput(t *testing.T) {
	tests := []struct {
		name      string
		input     models.LeadInput
		wantValid bool
	}{
		{
			name:      "valid with email",
			input:     models.LeadInput{Name: "Maria", Email: "maria@example.com", Message: "Olá"},
			wantValid: true,
		},
		{
			name:      "valid with phone only",
			input:     models.LeadInput{Name: "João", Phone: "31999990000", Message: "Oi"},
			wantValid: true,
		},
		{
			name:      "missing name",
			input:     models.LeadInput{Email: "x@y.com", Message: "Oi"},
			wantValid: false,
		},
		{
			name:      "missing message",
			input:     models.LeadInput{Name: "Maria", Email: "x@y.com"},
			wantValid: false,
		},
		{
			name:      "no contact channel",
			input:     models.LeadInput{Name: "Maria", Message: "Oi"},
			wantValid: false,
		},
		{
			name:      "malformed email",
			input:     models.LeadInput{Name: "Maria", Email: "not-an-email", Message: "Oi"},
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateLeadInput(&tt.input)
			if result.IsValid != tt.wantValid {
				t.Errorf("ValidateLeadInput() IsValid = %v, want %v (errors: %v)",
					result.IsValid, tt.wantValid, result.Errors)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Casa em Moema", "casa-em-moema"},
		{"Chácara à venda!", "chacara-a-venda"},
		{"Apartamento 2 quartos — Centro", "apartamento-2-quartos-centro"},
		{"  espaços  ", "espacos"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
