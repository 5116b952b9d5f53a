package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/jempresa/erp-api/internal/domain/entity"
)

// recordFlags flags comunes a buy y sell.
type recordFlags struct {
	dbPath    string
	companyID int64
	productID int64
	quantity  int64
	informal  bool
	note      string
}

func (r *recordFlags) register(f *flag.FlagSet) {
	f.StringVar(&r.dbPath, "db", defaultDBPath(), "Archivo de datos SQLite.")
	f.Int64Var(&r.companyID, "c", 0, "ID de la empresa.")
	f.Int64Var(&r.productID, "p", 0, "ID del producto.")
	f.Int64Var(&r.quantity, "q", 0, "Cantidad de unidades.")
	f.BoolVar(&r.informal, "informal", false, "Movimiento sin documento tributario (queda fuera del reporte de IVA).")
	f.StringVar(&r.note, "note", "", "Nota libre.")
}

func (r *recordFlags) record(ctx context.Context, movType string) subcommands.ExitStatus {
	if r.companyID <= 0 || r.productID <= 0 {
		return usageError("-c y -p son obligatorios")
	}
	e, closeFn, err := openEnv(r.dbPath)
	if err != nil {
		return fail(err)
	}
	defer closeFn()

	mov, err := e.ledgerUC.RecordFromCatalog(ctx, r.companyID, movType, !r.informal, r.productID, r.quantity, r.note)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Movimiento %d registrado: %s x%d por %s (%s)\n",
		mov.ID, mov.Type, mov.Quantity, formatAmount(mov.GrossAmount), mov.Timestamp)
	return subcommands.ExitSuccess
}

type buyCmd struct{ recordFlags }

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "registra una compra (suma stock)" }
func (*buyCmd) Usage() string {
	return `erp buy -c <empresa> -p <producto> -q <cantidad> [-informal] [-note <texto>] [-db <archivo>]

  Registra una compra al costo unitario vigente del producto. El monto bruto
  queda congelado: cambios de precio posteriores no lo alteran.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *buyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(ctx, entity.MovementTypePurchase)
}

type sellCmd struct{ recordFlags }

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "registra una venta (resta stock)" }
func (*sellCmd) Usage() string {
	return `erp sell -c <empresa> -p <producto> -q <cantidad> [-informal] [-note <texto>] [-db <archivo>]

  Registra una venta al precio vigente del producto. Vender más unidades de
  las que hay en stock está permitido; el stock queda negativo.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *sellCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.record(ctx, entity.MovementTypeSale)
}

type movementsCmd struct {
	dbPath    string
	companyID int64
}

func (*movementsCmd) Name() string     { return "movements" }
func (*movementsCmd) Synopsis() string { return "lista los movimientos de una empresa" }
func (*movementsCmd) Usage() string {
	return `erp movements -c <empresa> [-db <archivo>]

  Lista los movimientos de la empresa, del más reciente al más antiguo.
`
}

func (c *movementsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dbPath, "db", defaultDBPath(), "Archivo de datos SQLite.")
	f.Int64Var(&c.companyID, "c", 0, "ID de la empresa.")
}

func (c *movementsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.companyID <= 0 {
		return usageError("-c es obligatorio")
	}
	e, closeFn, err := openEnv(c.dbPath)
	if err != nil {
		return fail(err)
	}
	defer closeFn()

	list, err := e.ledgerUC.ListMovements(ctx, c.companyID)
	if err != nil {
		return fail(err)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFECHA\tTIPO\tFORMAL\tPRODUCTO\tCANT\tMONTO\tNOTA")
	for _, m := range list {
		formal := "sí"
		if !m.IsFormal {
			formal = "no"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
			m.ID, m.Timestamp, m.Type, formal, m.ProductID, m.Quantity,
			formatAmount(m.GrossAmount), m.Note)
	}
	return flush(w)
}
