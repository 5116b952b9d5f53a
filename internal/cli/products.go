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

type productsCmd struct {
	dbPath    string
	companyID int64
}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "lista los productos de una empresa" }
func (*productsCmd) Usage() string {
	return `erp products -c <empresa> [-db <archivo>]

  Lista el catálogo de la empresa con stock, precios y valor de inventario.
`
}

func (c *productsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dbPath, "db", defaultDBPath(), "Archivo de datos SQLite.")
	f.Int64Var(&c.companyID, "c", 0, "ID de la empresa.")
}

func (c *productsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.companyID <= 0 {
		return usageError("-c es obligatorio")
	}
	e, closeFn, err := openEnv(c.dbPath)
	if err != nil {
		return fail(err)
	}
	defer closeFn()

	list, err := e.productUC.List(ctx, c.companyID)
	if err != nil {
		return fail(err)
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tSTOCK\tPRECIO\tCOSTO\tVALOR INVENTARIO")
	for _, p := range list.Items {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\n",
			p.ID, p.Name, p.Stock,
			formatAmount(p.SalePrice), formatAmount(p.UnitCost), formatAmount(p.InventoryValue))
	}
	return flush(w)
}

type addProductCmd struct {
	dbPath    string
	companyID int64
	name      string
	salePrice int64
	unitCost  int64
}

func (*addProductCmd) Name() string     { return "add-product" }
func (*addProductCmd) Synopsis() string { return "crea un producto en el catálogo" }
func (*addProductCmd) Usage() string {
	return `erp add-product -c <empresa> -name <nombre> [-price <venta>] [-cost <costo>] [-db <archivo>]

  Crea un producto con stock inicial 0. El stock solo cambia registrando
  compras y ventas.
`
}

func (c *addProductCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dbPath, "db", defaultDBPath(), "Archivo de datos SQLite.")
	f.Int64Var(&c.companyID, "c", 0, "ID de la empresa.")
	f.StringVar(&c.name, "name", "", "Nombre del producto.")
	f.Int64Var(&c.salePrice, "price", 0, "Precio de venta unitario (bruto, IVA incluido).")
	f.Int64Var(&c.unitCost, "cost", 0, "Costo unitario de compra (bruto, IVA incluido).")
}

func (c *addProductCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.companyID <= 0 {
		return usageError("-c es obligatorio")
	}
	if c.name == "" {
		return usageError("-name es obligatorio")
	}
	e, closeFn, err := openEnv(c.dbPath)
	if err != nil {
		return fail(err)
	}
	defer closeFn()

	p, err := e.productUC.Create(ctx, c.companyID, dto.CreateProductRequest{
		Name:      c.name,
		SalePrice: c.salePrice,
		UnitCost:  c.unitCost,
	})
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Producto creado: %d %s (precio %s, costo %s)\n",
		p.ID, p.Name, formatAmount(p.SalePrice), formatAmount(p.UnitCost))
	return subcommands.ExitSuccess
}
