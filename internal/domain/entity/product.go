package entity

// Product representa un producto del inventario de una empresa.
// Los montos son enteros en la unidad mínima de la moneda (pesos, sin
// decimales). Stock inicia en 0 y solo lo muta el motor de transacciones;
// puede quedar negativo (no hay bloqueo por falta de stock).
type Product struct {
	ID        int64
	CompanyID int64
	Name      string
	Stock     int64
	SalePrice int64 // precio de venta bruto (IVA incluido)
	UnitCost  int64 // costo unitario bruto (IVA incluido)
}

// InventoryValue devuelve el valor del inventario a costo (stock × costo).
func (p Product) InventoryValue() int64 {
	return p.Stock * p.UnitCost
}
