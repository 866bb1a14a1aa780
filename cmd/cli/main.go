package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	domainprofit "github.com/jhoicas/Rentabilidad-api/internal/domain/profitability"
	"github.com/jhoicas/Rentabilidad-api/internal/interfaces/cli"
	"github.com/jhoicas/Rentabilidad-api/pkg/config"
	"github.com/jhoicas/Rentabilidad-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cargar configuración: %v\n", err)
		os.Exit(1)
	}

	// Los avisos de decodificación van a stderr para no mezclarse con la salida.
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Output: os.Stderr})
	decimal.MarshalJSONWithoutQuotes = true

	c := cli.NewCLI(cli.Options{
		Output:      os.Stdout,
		DatasetPath: cfg.Dataset.Path,
		Encoding:    cfg.Dataset.Encoding,
		Policy: domainprofit.Policy{
			CustomerShare:      cfg.Profit.CustomerShare,
			CompanyShare:       cfg.Profit.CompanyShare,
			InitialCashBalance: cfg.Profit.InitialCashBalance,
		},
		Log: log,
	})

	if err := c.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
