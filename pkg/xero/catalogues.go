// Package xero contiene catálogos y constantes del formato XML del servicio contable externo.
package xero

import (
	"regexp"
	"sort"
)

// =============================================================================
// Nombres de elementos del wire (el orden de emisión lo define el serializador)
// =============================================================================

const (
	ElemLineItem     = "LineItem"
	ElemLineItemID   = "LineItemID"
	ElemDescription  = "Description"
	ElemQuantity     = "Quantity"
	ElemUnitAmount   = "UnitAmount"
	ElemItemCode     = "ItemCode"
	ElemTaxType      = "TaxType"
	ElemTaxAmount    = "TaxAmount"
	ElemDiscountRate = "DiscountRate"
	ElemLineAmount   = "LineAmount"
	ElemAccountCode  = "AccountCode"
	ElemTracking     = "Tracking"

	ElemTrackingCategory   = "TrackingCategory"
	ElemTrackingCategoryID = "TrackingCategoryID"
	ElemName               = "Name"
	ElemOptions            = "Options"
	ElemOption             = "Option"

	ElemItem         = "Item"
	ElemCode         = "Code"
	ElemSalesDetails = "SalesDetails"
	ElemUnitPrice    = "UnitPrice"

	// Contenedores usados al normalizar documentos recibidos.
	ElemResponse  = "Response"
	ElemLineItems = "LineItems"
	ElemItems     = "Items"
)

// GUIDPattern identificadores del servicio: 8-4-4-4-12 hexadecimal, llaves opcionales.
var GUIDPattern = regexp.MustCompile(`^\{?[A-Fa-f0-9]{8}-[A-Fa-f0-9]{4}-[A-Fa-f0-9]{4}-[A-Fa-f0-9]{4}-[A-Fa-f0-9]{12}\}?$`)

// IsGUID indica si s tiene el formato de identificador del servicio.
func IsGUID(s string) bool {
	return GUIDPattern.MatchString(s)
}

// =============================================================================
// Tipos de impuesto
// =============================================================================

// TaxTypes enumeración código -> descripción. Solo lectura una vez inicializada.
type TaxTypes map[string]string

// Has indica si code pertenece a la enumeración.
func (t TaxTypes) Has(code string) bool {
	_, ok := t[code]
	return ok
}

// Describe devuelve la descripción del código (vacío si no existe).
func (t TaxTypes) Describe(code string) string {
	return t[code]
}

// Codes devuelve los códigos ordenados alfabéticamente (orden estable para mensajes).
func (t TaxTypes) Codes() []string {
	codes := make([]string, 0, len(t))
	for c := range t {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// DefaultTaxTypes tabla por defecto de códigos de impuesto aceptados por el servicio.
var DefaultTaxTypes = TaxTypes{
	"NONE":            "No GST",
	"EXEMPTINPUT":     "VAT on expenses exempt from VAT (UK only)",
	"INPUT":           "GST on expenses",
	"SRINPUT":         "VAT on expenses",
	"ZERORATEDINPUT":  "Expense purchased from overseas (UK only)",
	"RRINPUT":         "Reduced rate VAT on expenses (UK Only)",
	"EXEMPTOUTPUT":    "VAT on sales exempt from VAT (UK only)",
	"ECZROUTPUT":      "EC Zero-rated output",
	"OUTPUT":          "OUTPUT (old rate)",
	"OUTPUT2":         "OUTPUT2",
	"SROUTPUT":        "SROUTPUT",
	"ZERORATEDOUTPUT": "Sales made from overseas (UK only)",
	"RROUTPUT":        "Reduced rate VAT on sales (UK Only)",
	"ZERORATED":       "Zero-rated supplies/sales from overseas (NZ Only)",
	"ECZRINPUT":       "EC Acquisitions",
	"GSTONIMPORTS":    "GST on imports",
	"EXEMPTEXPENSES":  "GST free expenses",
	"EXEMPTCAPITAL":   "GST free capital",
	"CAPEXINPUT":      "GST on capital",
}
