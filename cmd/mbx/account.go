package main

import (
	"context"
	"strconv"

	"github.com/lukehollenback/mbx/exchange/binance"
	"github.com/lukehollenback/mbx/logging"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type symbolEndpoint func(*binance.Client, context.Context, string, binance.Params) (*binance.Response, error)

func (a *app) balancesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show the balance of every asset on the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			balances, err := a.client.Balances(cmd.Context())
			if err != nil {
				return err
			}

			return a.renderer.Balances(balances)
		},
	}
}

func (a *app) orderCommand() *cobra.Command {
	var (
		orderType     string
		timeInForce   string
		test          bool
		clientOrderID string
		stopPrice     string
		icebergQty    string
	)

	cmd := &cobra.Command{
		Use:   "order SYMBOL SIDE QUANTITY PRICE",
		Short: "Place a new order",
		Args:  cobra.ExactArgs(4),
	}

	rawParams := addParamFlag(cmd.Flags())
	cmd.Flags().StringVar(&orderType, "type", string(binance.Limit), "order type (LIMIT, MARKET)")
	cmd.Flags().StringVar(&timeInForce, "tif", string(binance.GoodTillCanceled), "time in force (GTC, IOC)")
	cmd.Flags().BoolVar(&test, "test", false, "only validate the order, never send it to the matching engine")
	cmd.Flags().StringVar(&clientOrderID, "client-order-id", "", "unique id for the order")
	cmd.Flags().StringVar(&stopPrice, "stop-price", "", "stop price")
	cmd.Flags().StringVar(&icebergQty, "iceberg-qty", "", "iceberg quantity")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		req := binance.OrderRequest{
			Symbol:           args[0],
			NewClientOrderID: clientOrderID,
			Test:             test,
		}

		var err error

		if req.Side, err = binance.ParseSide(args[1]); err != nil {
			return err
		}

		if req.Type, err = binance.ParseOrderType(orderType); err != nil {
			return err
		}

		if req.TimeInForce, err = binance.ParseTimeInForce(timeInForce); err != nil {
			return err
		}

		if req.Quantity, err = decimal.NewFromString(args[2]); err != nil {
			return errors.Wrapf(err, "invalid quantity %q", args[2])
		}

		if req.Price, err = decimal.NewFromString(args[3]); err != nil {
			return errors.Wrapf(err, "invalid price %q", args[3])
		}

		if req.StopPrice, err = optionalDecimal(stopPrice); err != nil {
			return errors.Wrapf(err, "invalid stop price %q", stopPrice)
		}

		if req.IcebergQty, err = optionalDecimal(icebergQty); err != nil {
			return errors.Wrapf(err, "invalid iceberg quantity %q", icebergQty)
		}

		params, err := parseParams(*rawParams)
		if err != nil {
			return err
		}

		resp, err := a.client.Order(cmd.Context(), req, params)
		if err != nil {
			return err
		}

		return a.renderer.Raw(resp.Body())
	}

	return cmd
}

func (a *app) statusCommand() *cobra.Command {
	return a.orderLookupCommand("status", "Check the status of an order", (*binance.Client).OrderStatus)
}

func (a *app) cancelCommand() *cobra.Command {
	return a.orderLookupCommand("cancel", "Cancel an active order", (*binance.Client).Cancel)
}

//
// orderLookupCommand builds a command acting on a single order identified by --order-id or
// --client-order-id.
//
func (a *app) orderLookupCommand(use string, short string, endpoint symbolEndpoint) *cobra.Command {
	var (
		orderID       int64
		clientOrderID string
	)

	cmd := a.symbolCommand(use, short, endpoint)
	cmd.Flags().Int64Var(&orderID, "order-id", 0, "exchange order id")
	cmd.Flags().StringVar(&clientOrderID, "client-order-id", "", "client order id the order was placed with")

	run := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var err error

		switch {
		case orderID != 0:
			err = cmd.Flags().Set("param", "orderId="+strconv.FormatInt(orderID, 10))
		case clientOrderID != "":
			err = cmd.Flags().Set("param", "origClientOrderId="+clientOrderID)
		default:
			return errors.New("either --order-id or --client-order-id must be set")
		}

		if err != nil {
			return err
		}

		return run(cmd, args)
	}

	return cmd
}

//
// symbolCommand builds a command for a signed endpoint scoped to one symbol whose raw response is
// written out as is.
//
func (a *app) symbolCommand(use string, short string, endpoint symbolEndpoint) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " SYMBOL",
		Short: short,
		Args:  cobra.ExactArgs(1),
	}

	rawParams := addParamFlag(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		params, err := parseParams(*rawParams)
		if err != nil {
			return err
		}

		resp, err := endpoint(a.client, cmd.Context(), args[0], params)
		if err != nil {
			return err
		}

		logging.For(Name).WithField("status", resp.StatusCode()).Debug("Response received.")

		return a.renderer.Raw(resp.Body())
	}

	return cmd
}

func optionalDecimal(s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}

	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}
