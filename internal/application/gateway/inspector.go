// Package gateway orquesta la lectura, validación y normalización de documentos XML
// intercambiados con el servicio contable.
package gateway

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/jhoicas/xero-gateway/internal/domain"
	"github.com/jhoicas/xero-gateway/internal/domain/entity"
	"github.com/jhoicas/xero-gateway/internal/infrastructure/xero"
	"github.com/jhoicas/xero-gateway/pkg/logger"
	wire "github.com/jhoicas/xero-gateway/pkg/xero"
)

// LineReport resultado de validar una línea del documento.
type LineReport struct {
	Index    int // posición (1..n) dentro del documento
	LineItem *entity.LineItem
	Valid    bool
	Errors   domain.FieldErrors
}

// Report líneas e ítems encontrados en un documento.
type Report struct {
	LineItems []LineReport
	Items     []*entity.Item
}

// InvalidCount cantidad de líneas que no pasan la validación.
func (r *Report) InvalidCount() int {
	n := 0
	for _, l := range r.LineItems {
		if !l.Valid {
			n++
		}
	}
	return n
}

// Valid true si todas las líneas son válidas.
func (r *Report) Valid() bool { return r.InvalidCount() == 0 }

// Inspector decodifica y valida documentos recibidos.
type Inspector struct {
	log      *logger.Logger
	taxTypes wire.TaxTypes
	lineOpts entity.LineItemOptions
}

// NewInspector crea el caso de uso. taxTypes nil usa la tabla por defecto.
func NewInspector(log *logger.Logger, taxTypes wire.TaxTypes, lineOpts entity.LineItemOptions) *Inspector {
	if log == nil {
		log = logger.Nop()
	}
	if taxTypes == nil {
		taxTypes = wire.DefaultTaxTypes
	}
	return &Inspector{log: log, taxTypes: taxTypes, lineOpts: lineOpts}
}

// Inspect lee el XML de r y devuelve el reporte.
func (s *Inspector) Inspect(r io.Reader) (*Report, error) {
	doc, err := xero.ParseDocument(r)
	if err != nil {
		return nil, err
	}
	return s.Decode(doc)
}

// Decode recorre todos los <LineItem> e <Item> del documento, a cualquier profundidad.
// Un número mal formado aborta todo el documento; la validación solo se informa.
func (s *Inspector) Decode(doc *etree.Document) (*Report, error) {
	report := &Report{}

	for i, el := range doc.FindElements("//" + wire.ElemLineItem) {
		li, err := xero.ReadLineItem(el)
		if err != nil {
			s.log.Error().Err(err).Int("line", i+1).Msg("línea ilegible")
			return nil, fmt.Errorf("gateway: línea %d: %w", i+1, err)
		}
		li.Options = s.lineOpts
		valid := li.ValidWith(s.taxTypes)
		if !valid {
			s.log.Warn().
				Int("line", i+1).
				Str("errors", li.Errors.Error()).
				Msg("línea inválida")
		}
		report.LineItems = append(report.LineItems, LineReport{
			Index:    i + 1,
			LineItem: li,
			Valid:    valid,
			Errors:   li.Errors,
		})
	}

	for _, el := range doc.FindElements("//" + wire.ElemItem) {
		report.Items = append(report.Items, xero.ReadItem(el))
	}

	s.log.Info().
		Int("line_items", len(report.LineItems)).
		Int("invalid", report.InvalidCount()).
		Int("items", len(report.Items)).
		Msg("documento inspeccionado")
	return report, nil
}

// Normalize reescribe el reporte como <Response><LineItems/><Items/></Response> en forma canónica.
// Las líneas inválidas también se emiten.
func (s *Inspector) Normalize(report *Report) ([]byte, error) {
	_, root := xero.NewDocument(wire.ElemResponse)
	if len(report.LineItems) > 0 {
		lines := root.CreateElement(wire.ElemLineItems)
		for _, l := range report.LineItems {
			xero.WriteLineItem(lines, l.LineItem)
		}
	}
	if len(report.Items) > 0 {
		items := root.CreateElement(wire.ElemItems)
		for _, it := range report.Items {
			xero.WriteItem(items, it)
		}
	}
	raw, err := xero.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("gateway: serializar: %w", err)
	}
	return xero.Canonicalize(raw)
}
