// Package cli implementa la interfaz de línea de comandos para el modo local
// mono-usuario: los comandos operan directamente sobre el archivo SQLite, sin
// pasar por el servidor HTTP.
package cli

import (
	"fmt"
	"os"

	"github.com/Rhymond/go-money"
	"github.com/google/subcommands"
	"github.com/jempresa/erp-api/internal/application/ledger"
	"github.com/jempresa/erp-api/internal/application/reporting"
	"github.com/jempresa/erp-api/internal/application/usecase"
	"github.com/jempresa/erp-api/internal/infrastructure/sqlite"
)

// Commands lista todos los subcomandos disponibles para registrar en el
// commander.
var Commands = []subcommands.Command{
	&companiesCmd{},
	&addCompanyCmd{},
	&productsCmd{},
	&addProductCmd{},
	&buyCmd{},
	&sellCmd{},
	&movementsCmd{},
	&summaryCmd{},
	&taxReportCmd{},
}

// defaultDBPath resuelve la ruta del archivo de datos: flag -db, si no la
// variable de entorno ERP_DB, si no erp.db en el directorio actual.
func defaultDBPath() string {
	if p := os.Getenv("ERP_DB"); p != "" {
		return p
	}
	return "erp.db"
}

// env agrupa todo lo que un subcomando necesita ya cableado.
type env struct {
	store     *sqlite.Store
	companyUC *usecase.CompanyUseCase
	productUC *usecase.ProductUseCase
	ledgerUC  *ledger.UseCase
	reportUC  *reporting.UseCase
}

// openEnv abre el archivo SQLite y construye los casos de uso. El llamador
// debe cerrar con close().
func openEnv(dbPath string) (*env, func(), error) {
	store, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("abrir base de datos %s: %w", dbPath, err)
	}

	companyRepo := sqlite.NewCompanyRepository(store.DB())
	productRepo := sqlite.NewProductRepository(store.DB())
	movementRepo := sqlite.NewMovementRepository(store.DB())
	txRunner := sqlite.NewTxRunner(store)

	e := &env{
		store:     store,
		companyUC: usecase.NewCompanyUseCase(companyRepo),
		productUC: usecase.NewProductUseCase(productRepo, companyRepo),
		ledgerUC:  ledger.NewUseCase(txRunner, companyRepo, productRepo, movementRepo),
		reportUC:  reporting.NewUseCase(movementRepo),
	}
	return e, func() { _ = store.Close() }, nil
}

// formatAmount presenta un monto entero en la moneda configurada (CLP por
// defecto: sin decimales, con separador de miles).
func formatAmount(amount int64) string {
	cur := os.Getenv("ERP_CURRENCY")
	if cur == "" {
		cur = "CLP"
	}
	return money.New(amount, cur).Display()
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

func usageError(msg string) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", msg)
	return subcommands.ExitUsageError
}
