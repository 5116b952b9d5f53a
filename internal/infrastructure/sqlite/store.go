// Package sqlite implementa los puertos de persistencia sobre SQLite para el
// modo local mono-usuario (un archivo de datos, un escritor). Es el mismo
// contrato de esquema que la implementación PostgreSQL, con dialecto SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// queryer abstrae lo que los repositorios necesitan de database/sql: lo
// satisfacen *sql.DB y *sql.Tx, así el mismo repositorio sirve fuera y dentro
// de una transacción.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const schema = `
CREATE TABLE IF NOT EXISTS companies (
	id     INTEGER PRIMARY KEY AUTOINCREMENT,
	name   TEXT NOT NULL,
	active INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS products (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	company_id INTEGER NOT NULL REFERENCES companies(id),
	name       TEXT NOT NULL,
	stock      INTEGER NOT NULL DEFAULT 0,
	sale_price INTEGER NOT NULL,
	unit_cost  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS movements (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	company_id   INTEGER NOT NULL REFERENCES companies(id),
	type         TEXT NOT NULL,
	is_formal    INTEGER NOT NULL,
	timestamp    TEXT NOT NULL,
	product_id   INTEGER NOT NULL REFERENCES products(id),
	quantity     INTEGER NOT NULL,
	gross_amount INTEGER NOT NULL,
	note         TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_products_company  ON products(company_id);
CREATE INDEX IF NOT EXISTS idx_movements_company ON movements(company_id);
CREATE INDEX IF NOT EXISTS idx_movements_formal  ON movements(company_id, is_formal);
`

// Store conexión SQLite con el esquema migrado.
type Store struct {
	db *sql.DB
}

// Open abre (o crea) la base en path, migra el esquema y siembra las dos
// empresas por defecto en la primera corrida. Usar ":memory:" para una base
// en memoria. WAL mejora lecturas concurrentes y la recuperación tras caídas.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("abrir base de datos: %w", err)
	}
	// Un escritor lógico: serializar el acceso evita SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrar esquema: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	ctx := context.Background()
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return err
	}
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM companies`).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO companies (name) VALUES ('Empresa A'), ('Empresa B')`)
		if err != nil {
			return err
		}
	}
	return nil
}

// DB expone la conexión para construir repositorios.
func (s *Store) DB() *sql.DB { return s.db }

// Close cierra la conexión.
func (s *Store) Close() error { return s.db.Close() }
