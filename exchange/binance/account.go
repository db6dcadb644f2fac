package binance

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

//
// Balance holds the free and locked amounts of a single asset.
//
type Balance struct {
	Free   string `json:"free"`
	Locked string `json:"locked"`
}

//
// Balances retrieves the current balance of every asset on the account, keyed by asset. Unlike the
// other signed endpoints, an error embedded by the exchange is always returned as an error here.
//
func (o *Client) Balances(ctx context.Context) (map[string]Balance, error) {
	resp, err := o.signedRequest(ctx, http.MethodGet, AccountPath, Params{})
	if err != nil {
		return nil, err
	}

	if resp.apiErr != nil {
		return nil, errors.Wrap(resp.apiErr, "error from exchange")
	}

	var payload struct {
		Balances []struct {
			Asset  string `json:"asset"`
			Free   string `json:"free"`
			Locked string `json:"locked"`
		} `json:"balances"`
	}

	if err := resp.Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode account balances")
	}

	balances := make(map[string]Balance, len(payload.Balances))
	for _, d := range payload.Balances {
		balances[d.Asset] = Balance{
			Free:   d.Free,
			Locked: d.Locked,
		}
	}

	return balances, nil
}

//
// Order places a new order. When req.Test is set the order is only validated by the exchange and
// never reaches the matching engine. Extra parameters are forwarded verbatim.
//
func (o *Client) Order(ctx context.Context, req OrderRequest, params Params) (*Response, error) {
	required, err := req.params()
	if err != nil {
		return nil, err
	}

	path := OrderPath
	if req.Test {
		path = OrderTestPath
	}

	return o.raw(o.signedRequest(ctx, http.MethodPost, path, params.Merge(required)))
}

//
// OrderStatus checks the status of an order. Either "orderId" or "origClientOrderId" must be
// provided in the parameters.
//
func (o *Client) OrderStatus(ctx context.Context, symbol string, params Params) (*Response, error) {
	return o.raw(o.signedRequest(ctx, http.MethodGet, OrderPath, params.Merge(Params{"symbol": symbol})))
}

//
// Cancel cancels an active order. Either "orderId" or "origClientOrderId" must be provided in the
// parameters; "newClientOrderId" optionally names the cancellation.
//
func (o *Client) Cancel(ctx context.Context, symbol string, params Params) (*Response, error) {
	return o.raw(o.signedRequest(ctx, http.MethodDelete, OrderPath, params.Merge(Params{"symbol": symbol})))
}

//
// OpenOrders retrieves all open orders on the provided symbol.
//
func (o *Client) OpenOrders(ctx context.Context, symbol string, params Params) (*Response, error) {
	return o.raw(o.signedRequest(ctx, http.MethodGet, OpenOrdersPath, params.Merge(Params{"symbol": symbol})))
}

//
// AllOrders retrieves all orders on the provided symbol, whether active, canceled or filled. If
// "orderId" is set, orders with an ID greater or equal to it are returned; otherwise the most
// recent ones. "limit" defaults to 500 (max 500).
//
func (o *Client) AllOrders(ctx context.Context, symbol string, params Params) (*Response, error) {
	return o.raw(o.signedRequest(ctx, http.MethodGet, AllOrdersPath, params.Merge(Params{"symbol": symbol})))
}

//
// MyTrades retrieves the account's trades on the provided symbol. "fromId" selects the trade ID to
// fetch from; "limit" defaults to 500 (max 500).
//
func (o *Client) MyTrades(ctx context.Context, symbol string, params Params) (*Response, error) {
	return o.raw(o.signedRequest(ctx, http.MethodGet, MyTradesPath, params.Merge(Params{"symbol": symbol})))
}
