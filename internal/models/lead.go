package models

import (
	"encoding/json"
	"time"
)

// LeadType is the classification computed when the lead is created
type LeadType string

const (
	LeadSeller LeadType = "seller"
	LeadBuyer  LeadType = "buyer"
	LeadOther  LeadType = "other"
)

// LeadStatus enumerates the dashboard lifecycle of a lead
type LeadStatus string

const (
	LeadStatusNew      LeadStatus = "new"
	LeadStatusRead     LeadStatus = "read"
	LeadStatusArchived LeadStatus = "archived"
)

func ValidLeadStatus(s LeadStatus) bool {
	return s == LeadStatusNew || s == LeadStatusRead || s == LeadStatusArchived
}

// Lead is an inbound contact-form submission from a site visitor
type Lead struct {
	ID         string     `bson:"_id" json:"id"`
	AgentID    string     `bson:"agent_id" json:"agent_id"`
	PropertyID string     `bson:"property_id,omitempty" json:"property_id,omitempty"`
	Name       string     `bson:"name" json:"name"`
	Email      string     `bson:"email,omitempty" json:"email,omitempty"`
	Phone      string     `bson:"phone,omitempty" json:"phone,omitempty"`
	Message    string     `bson:"message" json:"message"`
	Type       LeadType   `bson:"type" json:"type"`
	Status     LeadStatus `bson:"status" json:"status"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
}

// LeadInput is the contact-form payload. Historic site forms posted either
// English or Portuguese field names; aliases are folded into the canonical
// schema here, at the decode boundary, and nowhere else.
type LeadInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
	PropertyID string `json:"property_id"`
	Context    string `json:"context"`
}

// UnmarshalJSON folds Portuguese alias fields into the canonical ones
func (in *LeadInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name       string `json:"name"`
		Nome       string `json:"nome"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
		Telefone   string `json:"telefone"`
		Message    string `json:"message"`
		Mensagem   string `json:"mensagem"`
		PropertyID string `json:"property_id"`
		ImovelID   string `json:"imovel_id"`
		Context    string `json:"context"`
		Contexto   string `json:"contexto"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	in.Name = firstNonEmpty(raw.Name, raw.Nome)
	in.Email = raw.Email
	in.Phone = firstNonEmpty(raw.Phone, raw.Telefone)
	in.Message = firstNonEmpty(raw.Message, raw.Mensagem)
	in.PropertyID = firstNonEmpty(raw.PropertyID, raw.ImovelID)
	in.Context = firstNonEmpty(raw.Context, raw.Contexto)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
