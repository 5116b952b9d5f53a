package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// ErrInvalidInput cubre fallas de validación; ErrNotFound y ErrCompanyInactive
// cubren referencias inválidas. Las fallas de almacenamiento se propagan
// envueltas con %w desde la capa de infraestructura.
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrCompanyInactive = errors.New("empresa desactivada")
)
