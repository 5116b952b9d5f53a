package postgres

import (
	"context"
	"fmt"
)

// schema de las tres relaciones del sistema. Montos y cantidades son enteros
// (unidad mínima de moneda, sin decimales); los timestamps de movimientos son
// texto local ordenable "YYYY-MM-DD HH:MM".
const schema = `
CREATE TABLE IF NOT EXISTS companies (
	id     BIGSERIAL PRIMARY KEY,
	name   TEXT NOT NULL,
	active BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS products (
	id         BIGSERIAL PRIMARY KEY,
	company_id BIGINT NOT NULL REFERENCES companies(id),
	name       TEXT NOT NULL,
	stock      BIGINT NOT NULL DEFAULT 0,
	sale_price BIGINT NOT NULL,
	unit_cost  BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS movements (
	id           BIGSERIAL PRIMARY KEY,
	company_id   BIGINT NOT NULL REFERENCES companies(id),
	type         TEXT NOT NULL,
	is_formal    BOOLEAN NOT NULL,
	timestamp    TEXT NOT NULL,
	product_id   BIGINT NOT NULL REFERENCES products(id),
	quantity     BIGINT NOT NULL,
	gross_amount BIGINT NOT NULL,
	note         TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_products_company  ON products(company_id);
CREATE INDEX IF NOT EXISTS idx_movements_company ON movements(company_id);
CREATE INDEX IF NOT EXISTS idx_movements_formal  ON movements(company_id, is_formal);
`

// EnsureSchema crea las tablas si no existen y siembra las dos empresas por
// defecto en la primera corrida (base vacía).
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear tablas: %w", err)
	}
	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM companies`).Scan(&count); err != nil {
		return fmt.Errorf("contar empresas: %w", err)
	}
	if count == 0 {
		_, err := q.Exec(ctx, `INSERT INTO companies (name) VALUES ('Empresa A'), ('Empresa B')`)
		if err != nil {
			return fmt.Errorf("sembrar empresas por defecto: %w", err)
		}
	}
	return nil
}
