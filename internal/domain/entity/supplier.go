package entity

import "time"

// Supplier representa un proveedor (compras).
type Supplier struct {
	ID        ID        `json:"id"`
	Code      string    `json:"code"` // consecutivo SUP-0001, SUP-0002, ...
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	VATNo     string    `json:"vatNo"`
	Address   string    `json:"address"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Supplier) DocID() string       { return string(s.ID) }
func (s *Supplier) Touch(now time.Time) { s.UpdatedAt = now }
