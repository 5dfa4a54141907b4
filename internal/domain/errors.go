package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	// ErrReferencia indica que un insert referenció una entidad inexistente
	// (violación de llave foránea). La operación agregada completa se aborta.
	ErrReferencia = errors.New("referencia a entidad inexistente")
)
