package main

import (
	"strconv"

	"github.com/lukehollenback/mbx/exchange"
	"github.com/spf13/cobra"
)

func (a *app) timeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "time",
		Short: "Show the exchange's server time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := a.client.ServerTime(cmd.Context())
			if err != nil {
				return err
			}

			return a.renderer.ServerTime(ts)
		},
	}
}

func (a *app) pricesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prices",
		Short: "Show the latest price of every symbol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prices, err := a.client.Prices(cmd.Context())
			if err != nil {
				return err
			}

			return a.renderer.Prices(prices)
		},
	}
}

func (a *app) tickersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tickers",
		Short: "Show the best bid and ask of every symbol",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tickers, err := a.client.Tickers(cmd.Context())
			if err != nil {
				return err
			}

			return a.renderer.Tickers(tickers)
		},
	}
}

func (a *app) depthCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "depth SYMBOL",
		Short: "Show the order book of a symbol",
		Args:  cobra.ExactArgs(1),
	}

	rawParams := addParamFlag(cmd.Flags())
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "number of levels (5, 10, 20, 50, 100, 500)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		params, err := parseParams(*rawParams)
		if err != nil {
			return err
		}

		if limit > 0 {
			params["limit"] = limit
		}

		depth, err := a.client.Depth(cmd.Context(), args[0], params)
		if err != nil {
			return err
		}

		return a.renderer.Depth(depth)
	}

	return cmd
}

func (a *app) klinesCommand() *cobra.Command {
	var (
		limit int
		start int64
		end   int64
	)

	cmd := &cobra.Command{
		Use:   "klines SYMBOL INTERVAL",
		Short: "Show candlesticks of a symbol (intervals: 1m 3m 5m 15m 30m 1h 2h 4h 6h 8h 12h 1d 3d 1w 1M)",
		Args:  cobra.ExactArgs(2),
	}

	rawParams := addParamFlag(cmd.Flags())
	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "maximum number of klines (max 500)")
	cmd.Flags().Int64Var(&start, "start", 0, "start time in epoch milliseconds")
	cmd.Flags().Int64Var(&end, "end", 0, "end time in epoch milliseconds")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		interval, err := exchange.ParseInterval(args[1])
		if err != nil {
			return err
		}

		params, err := parseParams(*rawParams)
		if err != nil {
			return err
		}

		if limit > 0 {
			params["limit"] = limit
		}

		if start > 0 {
			params["startTime"] = strconv.FormatInt(start, 10)
		}

		if end > 0 {
			params["endTime"] = strconv.FormatInt(end, 10)
		}

		klines, err := a.client.Klines(cmd.Context(), args[0], interval, params)
		if err != nil {
			return err
		}

		return a.renderer.Klines(klines)
	}

	return cmd
}
