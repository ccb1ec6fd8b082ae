package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin  = "admin"
	RoleVentas = "ventas"
)

// User usuario de la aplicación. PasswordHash es bcrypt y solo viaja al
// almacén, nunca en respuestas HTTP (las respuestas usan dto.UserResponse).
type User struct {
	ID           ID        `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) DocID() string       { return string(u.ID) }
func (u *User) Touch(now time.Time) { u.UpdatedAt = now }

// Session sesión activa persistida en la colección tanerp_auth, reflejo del
// snapshot {user, token} que guardaba la versión de navegador.
type Session struct {
	ID        ID        `json:"id"`
	UserID    ID        `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) DocID() string       { return string(s.ID) }
func (s *Session) Touch(now time.Time) {}
