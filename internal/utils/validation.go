package utils

import (
	"strings"

	"github.com/vitrineimob/vitrine-api/internal/models"
)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult represents the result of validation
type ValidationResult struct {
	IsValid bool              `json:"is_valid"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// NewValidationResult creates a new validation result
func NewValidationResult() *ValidationResult {
	return &ValidationResult{
		IsValid: true,
		Errors:  []ValidationError{},
	}
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.IsValid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// ValidateProperty validates a property payload before persistence
func ValidateProperty(p *models.Property) *ValidationResult {
	result := NewValidationResult()

	if strings.TrimSpace(p.Title) == "" {
		result.AddError("title", "Title is required")
	}
	if len(p.Title) > 200 {
		result.AddError("title", "Title must not exceed 200 characters")
	}
	if p.Price < 0 {
		result.AddError("price", "Price must be non-negative")
	}
	if !models.ValidPropertyType(p.Type) {
		result.AddError("type", "Unknown property type")
	}
	if !models.ValidOperation(p.Operation) {
		result.AddError("operation", "Operation must be Venda or Aluguel")
	}
	if p.Status != "" && !models.ValidPropertyStatus(p.Status) {
		result.AddError("status", "Unknown status")
	}
	if p.Bedrooms < 0 {
		result.AddError("bedrooms", "Bedrooms must be non-negative")
	}
	if p.Garage < 0 {
		result.AddError("garage", "Garage count must be non-negative")
	}

	return result
}

// ValidateLeadInput validates a contact-form submission
func ValidateLeadInput(in *models.LeadInput) *ValidationResult {
	result := NewValidationResult()

	if strings.TrimSpace(in.Name) == "" {
		result.AddError("name", "Name is required")
	}
	if strings.TrimSpace(in.Message) == "" {
		result.AddError("message", "Message is required")
	}
	if in.Email == "" && in.Phone == "" {
		result.AddError("email", "Either email or phone is required")
	}
	if in.Email != "" && !strings.Contains(in.Email, "@") {
		result.AddError("email", "Email is invalid")
	}

	return result
}
