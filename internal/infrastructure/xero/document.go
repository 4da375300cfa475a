package xero

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ParseDocument lee un documento XML recibido del servicio.
// Acepta UTF-8 y los juegos de caracteres latinos que aún aparecen en exportaciones antiguas.
func ParseDocument(r io.Reader) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("xero: leer XML: %w", err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("xero: documento XML sin elemento raíz")
	}
	return doc, nil
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "utf-8", "utf8", "us-ascii":
		return input, nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "iso-8859-15", "iso8859-15", "latin9":
		return transform.NewReader(input, charmap.ISO8859_15.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("xero: juego de caracteres no soportado %q", label)
	}
}

// NewDocument crea un documento vacío con la raíz indicada.
func NewDocument(root string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	return doc, doc.CreateElement(root)
}

// Marshal serializa una copia de el como documento independiente (sin declaración XML).
func Marshal(el *etree.Element) ([]byte, error) {
	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())
	return doc.WriteToBytes()
}

// Canonicalize devuelve la forma canónica (C14N) del XML: atributos ordenados,
// elementos vacíos con etiqueta de cierre explícita, sin declaración.
func Canonicalize(data []byte) ([]byte, error) {
	out, err := c14n.Canonicalize(xml.NewDecoder(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("xero: canonicalizar XML: %w", err)
	}
	return out, nil
}
