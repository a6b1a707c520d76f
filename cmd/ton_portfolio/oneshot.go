package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ton_portfolio/internal/app/service"
	"ton_portfolio/internal/domain/entity"
	"ton_portfolio/internal/infrastructure/walletconnect"
	"ton_portfolio/internal/pkg/logger"
)

func newBalancesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "balances <wallet-address>",
		Short: "Print the non-zero token balances of a wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			connector := walletconnect.NewConnector(nil, logger.NewSlogAdapter("walletconnect"))
			session := a.newSession(connector)
			session.Start(ctx)
			defer session.Stop()

			if err := session.WalletAction(ctx, args[0]); err != nil {
				return err
			}
			return writeBalances(cmd.OutOrStdout(), session.View())
		},
	}
}

func newPricesCmd(opts *rootOptions) *cobra.Command {
	var (
		interval string
		rows     int
	)
	cmd := &cobra.Command{
		Use:   "prices <symbol>",
		Short: "Print the latest price history points of a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer a.close()

			if interval == "" {
				interval = a.cfg.TonAPI.Interval
			}
			if rows <= 0 {
				rows = a.cfg.View.PriceHistoryRows
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.TonAPITimeout())
			defer cancel()
			points, err := a.tonapi.PriceHistory(ctx, args[0], interval)
			if err != nil {
				return err
			}
			return writePrices(cmd.OutOrStdout(), service.RenderPriceRows(points, rows))
		},
	}
	cmd.Flags().StringVar(&interval, "interval", "", "price history interval (defaults to tonapi.interval)")
	cmd.Flags().IntVar(&rows, "rows", 0, "number of trailing points to print (defaults to view.priceHistoryRows)")
	return cmd
}

func newChartCmd(opts *rootOptions) *cobra.Command {
	var contract string
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print the price chart series as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer a.close()

			out, err := json.MarshalIndent(a.chart.Chart(contract), "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().StringVar(&contract, "contract", "", "token contract address")
	return cmd
}

func writeBalances(w io.Writer, view entity.ViewState) error {
	if !view.Connected {
		_, err := fmt.Fprintln(w, "Wallet not connected")
		return err
	}
	fmt.Fprintf(w, "Connected: %s\n\n", view.DisplayAddress)
	if len(view.Tokens) == 0 {
		_, err := fmt.Fprintln(w, "No tokens")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tToken\tContract\tBalance")
	for _, t := range view.Tokens {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", t.Index, t.DisplayName, t.ContractAddress, t.Balance)
	}
	return tw.Flush()
}

func writePrices(w io.Writer, rows []entity.PriceRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Date\tClose")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.Date, r.Close)
	}
	return tw.Flush()
}
