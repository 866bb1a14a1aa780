// Package cli expone las consultas de rentabilidad como comandos de terminal.
package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Rentabilidad-api/internal/application/profitability"
	domainprofit "github.com/jhoicas/Rentabilidad-api/internal/domain/profitability"
	"github.com/jhoicas/Rentabilidad-api/internal/infrastructure/dataset"
)

// Formatos de salida.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// CLI interfaz de línea de comandos.
type CLI struct {
	opts    Options
	flags   globalFlags
	rootCmd *cobra.Command
}

// Options configuración del CLI.
type Options struct {
	Output      io.Writer
	DatasetPath string // valor por defecto de --dataset
	Encoding    string // valor por defecto de --encoding
	Policy      domainprofit.Policy
	Log         zerolog.Logger
}

type globalFlags struct {
	currency string
	search   string
	dataset  string
	encoding string
	format   string
}

// NewCLI construye el CLI con sus subcomandos.
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	cli := &CLI{opts: opts}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

// Execute ejecuta el comando indicado en os.Args.
func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs reemplaza os.Args (tests).
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rentabilidad",
		Short:         "Consulta de rentabilidad por orden y producto",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.opts.Output)

	pf := cmd.PersistentFlags()
	pf.StringVar(&cli.flags.currency, "currency", "USD", "Moneda de salida (USD, TL)")
	pf.StringVar(&cli.flags.search, "search", "", "Filtro de texto (sin distinguir mayúsculas)")
	pf.StringVar(&cli.flags.dataset, "dataset", cli.opts.DatasetPath, "Ruta del JSON de órdenes")
	pf.StringVar(&cli.flags.encoding, "encoding", cli.opts.Encoding, "Codificación del archivo (utf-8, iso-8859-1)")
	pf.StringVar(&cli.flags.format, "format", FormatTable, "Formato de salida (table, json)")

	cmd.AddCommand(cli.newOrdersCmd())
	cmd.AddCommand(cli.newProductsCmd())
	cmd.AddCommand(cli.newBalanceCmd())
	return cmd
}

// useCase arma el caso de uso contra el archivo indicado en --dataset.
func (cli *CLI) useCase() *profitability.UseCase {
	repo := dataset.NewFileOrderRepository(cli.flags.dataset, cli.flags.encoding)
	return profitability.NewUseCase(repo, cli.opts.Policy, cli.opts.Log)
}
