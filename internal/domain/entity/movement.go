package entity

// Tipos de movimiento del libro (venta o compra).
const (
	MovementTypeSale     = "sale"
	MovementTypePurchase = "purchase"
)

// TimestampLayout formato de fecha de los movimientos: texto local ordenable,
// precisión de minuto, sin zona horaria.
const TimestampLayout = "2006-01-02 15:04"

// Movement representa un movimiento inmutable del libro: una venta o compra
// que afecta el stock de un producto y los totales financieros de la empresa.
// GrossAmount = Quantity × precio unitario al momento de la inserción; ediciones
// posteriores de precios del producto no lo alteran (se almacena, no se recalcula).
type Movement struct {
	ID          int64
	CompanyID   int64
	Type        string // sale | purchase
	IsFormal    bool   // true = cuenta para el reporte de IVA; false = informal
	Timestamp   string // "YYYY-MM-DD HH:MM"
	ProductID   int64
	Quantity    int64
	GrossAmount int64
	Note        string
}

// IsSale informa si el movimiento es una venta.
func (m Movement) IsSale() bool { return m.Type == MovementTypeSale }

// StockDelta devuelve el delta de stock que aplica el movimiento:
// +Quantity para compras, −Quantity para ventas.
func (m Movement) StockDelta() int64 {
	if m.IsSale() {
		return -m.Quantity
	}
	return m.Quantity
}

// ValidMovementType informa si t es un tipo de movimiento conocido.
func ValidMovementType(t string) bool {
	return t == MovementTypeSale || t == MovementTypePurchase
}
