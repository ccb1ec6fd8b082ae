// Package dto define los contratos de entrada y salida de la capa de
// aplicación y del API HTTP.
package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
