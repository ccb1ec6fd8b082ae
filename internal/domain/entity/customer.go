package entity

import "time"

// Customer representa un cliente (ventas).
type Customer struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	City      string    `json:"city"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Customer) DocID() string       { return string(c.ID) }
func (c *Customer) Touch(now time.Time) { c.UpdatedAt = now }
