package entity

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// ID identificador canónico de documento. En el almacén heredado los ids
// pueden venir como string o como número JSON; aquí se normalizan a string
// una sola vez, al deserializar. La comparación posterior es siempre de
// strings.
type ID string

// UnmarshalJSON acepta "7", 7 o null; todo queda normalizado a su forma string.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	// id numérico heredado: se guarda su representación decimal
	if _, err := strconv.ParseFloat(string(b), 64); err != nil {
		return err
	}
	*id = ID(string(b))
	return nil
}

func (id ID) String() string { return string(id) }

// IsZero indica si el documento aún no tiene identificador asignado.
func (id ID) IsZero() bool { return id == "" }

// Number cantidad o monto decimal con deserialización tolerante: acepta
// número JSON, string numérico, null o basura; cualquier valor no numérico
// queda en 0 (semántica de coerción a cero aplicada una sola vez en la
// frontera de deserialización).
type Number struct {
	decimal.Decimal
}

// N construye un Number desde un decimal.
func N(d decimal.Decimal) Number { return Number{Decimal: d} }

// NFromInt construye un Number desde un entero.
func NFromInt(v int64) Number { return Number{Decimal: decimal.NewFromInt(v)} }

// UnmarshalJSON nunca retorna error por valores no numéricos: los coerce a 0.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		n.Decimal = decimal.Zero
		return nil
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		n.Decimal = decimal.Zero
		return nil
	}
	n.Decimal = d
	return nil
}

// MarshalJSON serializa como número JSON sin comillas, igual que el formato
// almacenado por la versión anterior del sistema.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(n.Decimal.String()), nil
}
