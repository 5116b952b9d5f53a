package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type summaryCmd struct {
	dbPath    string
	companyID int64
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "resumen financiero de una empresa" }
func (*summaryCmd) Usage() string {
	return `erp summary -c <empresa> [-db <archivo>]

  Muestra ventas, compras y utilidad. Incluye movimientos formales e
  informales; la utilidad se calcula al momento, nunca se almacena.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dbPath, "db", defaultDBPath(), "Archivo de datos SQLite.")
	f.Int64Var(&c.companyID, "c", 0, "ID de la empresa.")
}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.companyID <= 0 {
		return usageError("-c es obligatorio")
	}
	e, closeFn, err := openEnv(c.dbPath)
	if err != nil {
		return fail(err)
	}
	defer closeFn()

	s, err := e.reportUC.Summary(ctx, c.companyID)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Ventas:   %s\n", formatAmount(s.SalesTotal))
	fmt.Printf("Compras:  %s\n", formatAmount(s.PurchasesTotal))
	fmt.Printf("Utilidad: %s\n", formatAmount(s.Utility()))
	return subcommands.ExitSuccess
}

type taxReportCmd struct {
	dbPath    string
	companyID int64
}

func (*taxReportCmd) Name() string     { return "tax-report" }
func (*taxReportCmd) Synopsis() string { return "reporte simplificado de IVA (19%)" }
func (*taxReportCmd) Usage() string {
	return `erp tax-report -c <empresa> [-db <archivo>]

  Calcula débito y crédito fiscal sobre los movimientos formales. Un saldo
  positivo es impuesto a pagar; negativo, remanente a favor.
`
}

func (c *taxReportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dbPath, "db", defaultDBPath(), "Archivo de datos SQLite.")
	f.Int64Var(&c.companyID, "c", 0, "ID de la empresa.")
}

func (c *taxReportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.companyID <= 0 {
		return usageError("-c es obligatorio")
	}
	e, closeFn, err := openEnv(c.dbPath)
	if err != nil {
		return fail(err)
	}
	defer closeFn()

	r, err := e.reportUC.TaxReport(ctx, c.companyID)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Ventas formales (bruto):  %s\n", formatAmount(r.SalesGross))
	fmt.Printf("Compras formales (bruto): %s\n", formatAmount(r.PurchasesGross))
	fmt.Printf("Débito fiscal:            %s\n", formatAmount(r.TaxDebit))
	fmt.Printf("Crédito fiscal:           %s\n", formatAmount(r.TaxCredit))
	if due := r.TaxDue(); due >= 0 {
		fmt.Printf("IVA a pagar:              %s\n", formatAmount(due))
	} else {
		fmt.Printf("Remanente a favor:        %s\n", formatAmount(-due))
	}
	return subcommands.ExitSuccess
}
