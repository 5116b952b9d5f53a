// Package memory implementa los puertos de persistencia en memoria, para
// tests y desarrollo. El TxRunner trabaja sobre una copia del estado y la
// publica solo en Commit, de modo que la atomicidad del motor de
// transacciones se puede ejercitar sin base de datos; los hooks Fail* simulan
// fallas de almacenamiento dentro de la unidad atómica.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jempresa/erp-api/internal/application/ledger"
	"github.com/jempresa/erp-api/internal/domain"
	"github.com/jempresa/erp-api/internal/domain/entity"
	"github.com/jempresa/erp-api/internal/domain/repository"
)

// state datos del store; se clona completo al abrir una transacción.
type state struct {
	companies      map[int64]entity.Company
	products       map[int64]entity.Product
	movements      map[int64]entity.Movement
	nextCompanyID  int64
	nextProductID  int64
	nextMovementID int64
}

func newState() *state {
	return &state{
		companies:      make(map[int64]entity.Company),
		products:       make(map[int64]entity.Product),
		movements:      make(map[int64]entity.Movement),
		nextCompanyID:  1,
		nextProductID:  1,
		nextMovementID: 1,
	}
}

func (st *state) clone() *state {
	c := newState()
	c.nextCompanyID = st.nextCompanyID
	c.nextProductID = st.nextProductID
	c.nextMovementID = st.nextMovementID
	for id, v := range st.companies {
		c.companies[id] = v
	}
	for id, v := range st.products {
		c.products[id] = v
	}
	for id, v := range st.movements {
		c.movements[id] = v
	}
	return c
}

// Store almacén en memoria. Seguro para uso concurrente.
type Store struct {
	mu sync.RWMutex
	st *state

	// Hooks de test: simulan una falla de almacenamiento dentro de la
	// transacción (antes o después del insert del movimiento).
	FailMovementInsert error
	FailStockAdjust    error
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// Seed siembra las dos empresas por defecto, como la primera corrida del
// almacén real.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range []string{"Empresa A", "Empresa B"} {
		id := s.st.nextCompanyID
		s.st.nextCompanyID++
		s.st.companies[id] = entity.Company{ID: id, Name: name, Active: true}
	}
}

// Companies devuelve el repositorio de empresas.
func (s *Store) Companies() repository.CompanyRepository { return &companyRepo{s: s} }

// Products devuelve el repositorio de productos.
func (s *Store) Products() repository.ProductRepository { return &productRepo{s: s} }

// Movements devuelve el repositorio del libro de movimientos.
func (s *Store) Movements() repository.MovementRepository { return &movementRepo{s: s} }

// TxRunner devuelve el runner transaccional del almacén.
func (s *Store) TxRunner() ledger.TxRunner { return &txRunner{s: s} }

// ── TxRunner ─────────────────────────────────────────────────────────────────

type txRunner struct {
	s *Store
}

// Run clona el estado, ejecuta fn sobre la copia y solo si fn termina sin
// error publica la copia como estado nuevo. Un error a mitad de camino
// descarta todo: nunca queda un movimiento sin su ajuste de stock ni al revés.
func (r *txRunner) Run(ctx context.Context, fn func(
	movements repository.MovementRepository,
	products repository.ProductRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	staged := r.s.st.clone()
	err := fn(
		&movementRepo{s: r.s, staged: staged},
		&productRepo{s: r.s, staged: staged},
	)
	if err != nil {
		return err
	}
	r.s.st = staged
	return nil
}

// ── Repositorios ─────────────────────────────────────────────────────────────
// Cada repo opera sobre el estado vivo (con lock) o, si staged != nil, sobre
// la copia de una transacción en curso (el runner ya sostiene el lock).

type companyRepo struct {
	s *Store
}

func (r *companyRepo) Create(_ context.Context, company *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	company.ID = r.s.st.nextCompanyID
	r.s.st.nextCompanyID++
	r.s.st.companies[company.ID] = *company
	return nil
}

func (r *companyRepo) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.st.companies[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *companyRepo) ListActive(_ context.Context) ([]*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.Company
	for _, c := range r.s.st.companies {
		if c.Active {
			c := c
			list = append(list, &c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *companyRepo) Rename(_ context.Context, id int64, name string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.st.companies[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Name = name
	r.s.st.companies[id] = c
	return nil
}

func (r *companyRepo) Deactivate(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.st.companies[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Active = false
	r.s.st.companies[id] = c
	return nil
}

type productRepo struct {
	s      *Store
	staged *state
}

func (r *productRepo) state() *state {
	if r.staged != nil {
		return r.staged
	}
	return r.s.st
}

func (r *productRepo) Create(_ context.Context, product *entity.Product) error {
	if r.staged == nil {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	st := r.state()
	product.ID = st.nextProductID
	st.nextProductID++
	product.Stock = 0
	st.products[product.ID] = *product
	return nil
}

func (r *productRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	if r.staged == nil {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	p, ok := r.state().products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *productRepo) ListByCompany(_ context.Context, companyID int64) ([]*entity.Product, error) {
	if r.staged == nil {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	var list []*entity.Product
	for _, p := range r.state().products {
		if p.CompanyID == companyID {
			p := p
			list = append(list, &p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *productRepo) UpdatePrices(_ context.Context, id, salePrice, unitCost int64) error {
	if r.staged == nil {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	st := r.state()
	p, ok := st.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.SalePrice = salePrice
	p.UnitCost = unitCost
	st.products[id] = p
	return nil
}

func (r *productRepo) AdjustStock(_ context.Context, id, delta int64) error {
	if r.s.FailStockAdjust != nil {
		return r.s.FailStockAdjust
	}
	if r.staged == nil {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	st := r.state()
	p, ok := st.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock += delta
	st.products[id] = p
	return nil
}

type movementRepo struct {
	s      *Store
	staged *state
}

func (r *movementRepo) state() *state {
	if r.staged != nil {
		return r.staged
	}
	return r.s.st
}

func (r *movementRepo) Create(_ context.Context, m *entity.Movement) error {
	if r.s.FailMovementInsert != nil {
		return r.s.FailMovementInsert
	}
	if r.staged == nil {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	st := r.state()
	m.ID = st.nextMovementID
	st.nextMovementID++
	st.movements[m.ID] = *m
	return nil
}

func (r *movementRepo) ListByCompany(_ context.Context, companyID int64) ([]*entity.Movement, error) {
	return r.filter(companyID, false)
}

func (r *movementRepo) ListFormalByCompany(_ context.Context, companyID int64) ([]*entity.Movement, error) {
	return r.filter(companyID, true)
}

func (r *movementRepo) TotalsByType(_ context.Context, companyID int64) (sales, purchases int64, err error) {
	if r.staged == nil {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	for _, m := range r.state().movements {
		if m.CompanyID != companyID {
			continue
		}
		if m.IsSale() {
			sales += m.GrossAmount
		} else {
			purchases += m.GrossAmount
		}
	}
	return sales, purchases, nil
}

func (r *movementRepo) filter(companyID int64, onlyFormal bool) ([]*entity.Movement, error) {
	if r.staged == nil {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	var list []*entity.Movement
	for _, m := range r.state().movements {
		if m.CompanyID != companyID || (onlyFormal && !m.IsFormal) {
			continue
		}
		m := m
		list = append(list, &m)
	}
	// Más recientes primero, como los almacenes reales.
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}
