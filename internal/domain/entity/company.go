package entity

// Company representa una empresa: partición de negocio aislada que posee sus
// propios productos y movimientos. Nunca se borra físicamente; se desactiva
// (soft delete) para preservar la integridad de los movimientos históricos.
type Company struct {
	ID     int64
	Name   string
	Active bool
}
