package services

import (
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/vitrineimob/vitrine-api/internal/models"
	"go.uber.org/zap"
)

// cargaDocument is the generic listing-exchange format produced by other
// CRM systems; agents upload it to migrate their inventory.
type cargaDocument struct {
	XMLName xml.Name     `xml:"carga"`
	Imoveis []cargaItem  `xml:"imovel"`
}

type cargaItem struct {
	Codigo         string   `xml:"codigo"`
	Titulo         string   `xml:"titulo"`
	Descricao      string   `xml:"descricao"`
	Tipo           string   `xml:"tipo"`
	Operacao       string   `xml:"operacao"`
	Preco          string   `xml:"preco"`
	Quartos        string   `xml:"quartos"`
	Banheiros      string   `xml:"banheiros"`
	Vagas          string   `xml:"vagas"`
	AreaConstruida string   `xml:"areaconstruida"`
	AreaTotal      string   `xml:"areatotal"`
	Cidade         string   `xml:"cidade"`
	Bairro         string   `xml:"bairro"`
	Fotos          []string `xml:"fotos>foto"`
}

// ParseCargaXML decodes an uploaded carga document into property records.
// Numeric fields are parsed leniently: a malformed number is treated as
// absent rather than failing the whole upload.
func ParseCargaXML(data []byte) ([]models.Property, error) {
	var doc cargaDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse carga XML: %w", err)
	}

	properties := make([]models.Property, 0, len(doc.Imoveis))
	for _, item := range doc.Imoveis {
		p := models.Property{
			Reference:    strings.TrimSpace(item.Codigo),
			Title:        strings.TrimSpace(item.Titulo),
			Description:  strings.TrimSpace(item.Descricao),
			Type:         models.PropertyType(strings.TrimSpace(item.Tipo)),
			Operation:    models.Operation(strings.TrimSpace(item.Operacao)),
			Price:        parseFloat(item.Preco),
			Bedrooms:     parseInt(item.Quartos),
			Bathrooms:    parseInt(item.Banheiros),
			Garage:       parseInt(item.Vagas),
			BuiltArea:    parseFloat(item.AreaConstruida),
			TotalArea:    parseFloat(item.AreaTotal),
			City:         strings.TrimSpace(item.Cidade),
			Neighborhood: strings.TrimSpace(item.Bairro),
			Images:       item.Fotos,
			Status:       models.StatusAtivo,
		}
		properties = append(properties, p)
	}
	return properties, nil
}

// ImportXML creates listings from an uploaded carga document. Items that
// fail validation are skipped and counted, not fatal.
func (s *PropertyService) ImportXML(ctx context.Context, agentID string, data []byte) (imported, skipped int, err error) {
	properties, err := ParseCargaXML(data)
	if err != nil {
		return 0, 0, err
	}

	for i := range properties {
		p := &properties[i]
		if p.Title == "" || !models.ValidPropertyType(p.Type) || !models.ValidOperation(p.Operation) {
			skipped++
			continue
		}
		if err := s.Create(ctx, agentID, p); err != nil {
			if err == models.ErrPlanLimitReached {
				return imported, skipped, err
			}
			s.logger.Warn("failed to import property",
				zap.String("reference", p.Reference),
				zap.Error(err))
			skipped++
			continue
		}
		imported++
	}

	s.logger.Info("XML import finished",
		zap.String("agent_id", agentID),
		zap.Int("imported", imported),
		zap.Int("skipped", skipped))
	return imported, skipped, nil
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
