package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Toda validación retorna un valor de error; nunca se usa panic como control de flujo.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrAlreadyPosted      = errors.New("el documento ya fue contabilizado")
	ErrConflict           = errors.New("conflicto con el estado actual del documento")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)
