package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrUnknownField      = errors.New("campo desconocido")
	ErrMalformedNumber   = errors.New("número mal formado")
	ErrInvalidFieldValue = errors.New("valor de campo inválido")
)

// UnknownFieldError se produce al asignar una clave que el registro no reconoce.
type UnknownFieldError struct {
	Record string // LineItem, Item
	Field  string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("%s: campo desconocido %q", e.Record, e.Field)
}

func (e *UnknownFieldError) Unwrap() error { return ErrUnknownField }

// MalformedNumberError el texto de un campo numérico no es un literal decimal válido.
type MalformedNumberError struct {
	Field string
	Text  string
	Err   error
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("%s: número mal formado %q: %v", e.Field, e.Text, e.Err)
}

// Unwrap permite errors.Is con ErrMalformedNumber y con la causa original.
func (e *MalformedNumberError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedNumber}
	}
	return []error{ErrMalformedNumber, e.Err}
}

// InvalidFieldValueError el valor tiene un tipo que el campo no admite (ej. float64 en importes).
type InvalidFieldValueError struct {
	Field string
	Value any
}

func (e *InvalidFieldValueError) Error() string {
	return fmt.Sprintf("%s: tipo de valor no admitido %T", e.Field, e.Value)
}

func (e *InvalidFieldValueError) Unwrap() error { return ErrInvalidFieldValue }

// FieldError par (campo, mensaje) de una regla de negocio incumplida.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) String() string {
	return e.Field + " " + e.Message
}

// FieldErrors errores de validación en el orden en que se evaluaron las reglas.
type FieldErrors []FieldError

// Has indica si hay al menos un error para field.
func (fe FieldErrors) Has(field string) bool {
	for _, e := range fe {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Get devuelve los mensajes de field.
func (fe FieldErrors) Get(field string) []string {
	var out []string
	for _, e := range fe {
		if e.Field == field {
			out = append(out, e.Message)
		}
	}
	return out
}

func (fe FieldErrors) Error() string {
	parts := make([]string, len(fe))
	for i, e := range fe {
		parts[i] = e.String()
	}
	return strings.Join(parts, "; ")
}
