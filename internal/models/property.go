package models

import (
	"time"
)

// PropertyType enumerates the kinds of real-estate units an agent can list
type PropertyType string

const (
	TypeApartamento PropertyType = "Apartamento"
	TypeCasa        PropertyType = "Casa"
	TypeChacara     PropertyType = "Chácara"
	TypeGalpao      PropertyType = "Galpão"
	TypeSala        PropertyType = "Sala"
	TypeKitnet      PropertyType = "Kitnet"
	TypeTerreno     PropertyType = "Terreno"
	TypeLote        PropertyType = "Lote"
)

// Operation enumerates the transaction kinds
type Operation string

const (
	OperationVenda   Operation = "Venda"
	OperationAluguel Operation = "Aluguel"
)

// PropertyStatus enumerates the listing lifecycle states. Removal is a
// status transition; there is no hard delete.
type PropertyStatus string

const (
	StatusAtivo   PropertyStatus = "ativo"
	StatusVendido PropertyStatus = "vendido"
	StatusAlugado PropertyStatus = "alugado"
)

// PortalFlags holds the per-portal publish switches for a property
type PortalFlags struct {
	Zap         bool `bson:"zap" json:"zap"`
	Imovelweb   bool `bson:"imovelweb" json:"imovelweb"`
	CasaMineira bool `bson:"casamineira" json:"casamineira"`
	ChavesNaMao bool `bson:"chavesnamao" json:"chavesnamao"`
	Tecimob     bool `bson:"tecimob" json:"tecimob"`
}

// Property represents a single real-estate listing owned by an agent
type Property struct {
	ID           string         `bson:"_id" json:"id"`
	AgentID      string         `bson:"agent_id" json:"agent_id"`
	Reference    string         `bson:"reference,omitempty" json:"reference,omitempty"`
	Title        string         `bson:"title" json:"title"`
	Description  string         `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64        `bson:"price" json:"price"`
	Bedrooms     int            `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms    int            `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	Garage       int            `bson:"garage,omitempty" json:"garage,omitempty"`
	BuiltArea    float64        `bson:"built_area,omitempty" json:"built_area,omitempty"`
	TotalArea    float64        `bson:"total_area,omitempty" json:"total_area,omitempty"`
	City         string         `bson:"city,omitempty" json:"city,omitempty"`
	Neighborhood string         `bson:"neighborhood,omitempty" json:"neighborhood,omitempty"`
	Type         PropertyType   `bson:"type" json:"type"`
	Operation    Operation      `bson:"operation" json:"operation"`
	Status       PropertyStatus `bson:"status" json:"status"`
	Images       []string       `bson:"images,omitempty" json:"images,omitempty"`
	Portals      PortalFlags    `bson:"portals" json:"portals"`
	Featured     bool           `bson:"featured,omitempty" json:"featured,omitempty"`
	CreatedAt    time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `bson:"updated_at" json:"updated_at"`
}

// ValidPropertyType reports whether t is one of the closed type enumeration
func ValidPropertyType(t PropertyType) bool {
	switch t {
	case TypeApartamento, TypeCasa, TypeChacara, TypeGalpao,
		TypeSala, TypeKitnet, TypeTerreno, TypeLote:
		return true
	}
	return false
}

// ValidOperation reports whether op is one of the closed operation enumeration
func ValidOperation(op Operation) bool {
	return op == OperationVenda || op == OperationAluguel
}

// ValidPropertyStatus reports whether s is a known lifecycle state
func ValidPropertyStatus(s PropertyStatus) bool {
	return s == StatusAtivo || s == StatusVendido || s == StatusAlugado
}

// PublishedOn reports whether the property is eligible for a portal feed:
// status ativo and the portal's publish flag set.
func (p *Property) PublishedOn(portal string) bool {
	if p.Status != StatusAtivo {
		return false
	}
	switch portal {
	case "zap":
		return p.Portals.Zap
	case "imovelweb":
		return p.Portals.Imovelweb
	case "casamineira":
		return p.Portals.CasaMineira
	case "chavesnamao":
		return p.Portals.ChavesNaMao
	case "tecimob":
		return p.Portals.Tecimob
	}
	return false
}
