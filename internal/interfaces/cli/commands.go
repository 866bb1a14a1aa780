package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/application/profitability"
	"github.com/jhoicas/Rentabilidad-api/internal/domain"
)

const commandTimeout = 30 * time.Second

func (cli *CLI) newOrdersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "Rentabilidad por orden",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			rows, err := cli.useCase().OrdersProfitability(ctx, cli.query())
			if err != nil {
				return err
			}
			r, err := cli.reporter()
			if err != nil {
				return err
			}
			return r.Orders(rows, profitability.Totals(rows))
		},
	}
}

func (cli *CLI) newProductsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "Rentabilidad por producto",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			rows, err := cli.useCase().ProductsProfitability(ctx, cli.query())
			if err != nil {
				return err
			}
			r, err := cli.reporter()
			if err != nil {
				return err
			}
			return r.Products(rows)
		},
	}
}

func (cli *CLI) newBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Saldo de caja",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			balance, err := cli.useCase().CashBalance(ctx, cli.flags.currency)
			if err != nil {
				return err
			}
			r, err := cli.reporter()
			if err != nil {
				return err
			}
			return r.Balance(balance)
		},
	}
}

func (cli *CLI) query() dto.ProfitabilityQuery {
	return dto.ProfitabilityQuery{Currency: cli.flags.currency, Search: cli.flags.search}
}

func (cli *CLI) reporter() (*Reporter, error) {
	switch cli.flags.format {
	case FormatTable, FormatJSON:
		return NewReporter(cli.opts.Output, cli.flags.format), nil
	default:
		return nil, fmt.Errorf("formato %q no soportado (table, json): %w", cli.flags.format, domain.ErrInvalidInput)
	}
}
