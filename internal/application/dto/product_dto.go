package dto

// CreateProductRequest entrada para crear un producto. El stock inicial es
// siempre 0: solo el motor de transacciones puede moverlo.
type CreateProductRequest struct {
	Name      string `json:"name"`
	SalePrice int64  `json:"sale_price"`
	UnitCost  int64  `json:"unit_cost"`
}

// UpdateProductPricesRequest entrada para actualizar precios de un producto.
// No afecta movimientos pasados.
type UpdateProductPricesRequest struct {
	SalePrice int64 `json:"sale_price"`
	UnitCost  int64 `json:"unit_cost"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             int64  `json:"id"`
	CompanyID      int64  `json:"company_id"`
	Name           string `json:"name"`
	Stock          int64  `json:"stock"`
	SalePrice      int64  `json:"sale_price"`
	UnitCost       int64  `json:"unit_cost"`
	InventoryValue int64  `json:"inventory_value"` // stock × costo unitario
}

// ProductListResponse lista de productos de una empresa.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
