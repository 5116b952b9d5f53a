package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/jempresa/erp-api/internal/application/dto"
)

type companiesCmd struct {
	dbPath string
}

func (*companiesCmd) Name() string     { return "companies" }
func (*companiesCmd) Synopsis() string { return "lista las empresas activas" }
func (*companiesCmd) Usage() string {
	return `erp companies [-db <archivo>]

  Lista las empresas activas. Las desactivadas no aparecen.
`
}

func (c *companiesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dbPath, "db", defaultDBPath(), "Archivo de datos SQLite.")
}

func (c *companiesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, closeFn, err := openEnv(c.dbPath)
	if err != nil {
		return fail(err)
	}
	defer closeFn()

	list, err := e.companyUC.List(ctx)
	if err != nil {
		return fail(err)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE")
	for _, company := range list.Items {
		fmt.Fprintf(w, "%d\t%s\n", company.ID, company.Name)
	}
	return flush(w)
}

type addCompanyCmd struct {
	dbPath string
	name   string
}

func (*addCompanyCmd) Name() string     { return "add-company" }
func (*addCompanyCmd) Synopsis() string { return "crea una empresa" }
func (*addCompanyCmd) Usage() string {
	return `erp add-company -name <nombre> [-db <archivo>]

  Crea una empresa nueva, activa por defecto.
`
}

func (c *addCompanyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dbPath, "db", defaultDBPath(), "Archivo de datos SQLite.")
	f.StringVar(&c.name, "name", "", "Nombre de la empresa.")
}

func (c *addCompanyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return usageError("-name es obligatorio")
	}
	e, closeFn, err := openEnv(c.dbPath)
	if err != nil {
		return fail(err)
	}
	defer closeFn()

	company, err := e.companyUC.Create(ctx, dto.CreateCompanyRequest{Name: c.name})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Empresa creada: %d %s\n", company.ID, company.Name)
	return subcommands.ExitSuccess
}

func flush(w *tabwriter.Writer) subcommands.ExitStatus {
	if err := w.Flush(); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
