package binance

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/lukehollenback/mbx/exchange"
	"github.com/pkg/errors"
)

//
// BookTicker holds the best bid and ask on the order book of a single symbol.
//
type BookTicker struct {
	Bid    string `json:"bid"`
	Ask    string `json:"ask"`
	BidQty string `json:"bidQty"`
	AskQty string `json:"askQty"`
}

//
// Depth holds the order book of a single symbol as price → quantity mappings.
//
type Depth struct {
	Bids map[string]string `json:"bids"`
	Asks map[string]string `json:"asks"`
}

//
// ServerTime retrieves the exchange's current time in epoch milliseconds.
//
func (o *Client) ServerTime(ctx context.Context) (int64, error) {
	resp, err := o.request(ctx, http.MethodGet, ServerTimePath, nil)
	if err != nil {
		return 0, err
	}

	if resp.apiErr != nil {
		return 0, resp.apiErr
	}

	var payload struct {
		ServerTime int64 `json:"serverTime"`
	}

	if err := resp.Decode(&payload); err != nil {
		return 0, errors.Wrap(err, "failed to decode server time")
	}

	return payload.ServerTime, nil
}

//
// Prices retrieves the latest price of every symbol, keyed by symbol.
//
func (o *Client) Prices(ctx context.Context) (map[string]string, error) {
	var payload []struct {
		Symbol string `json:"symbol"`
		Price  string `json:"price"`
	}

	if err := o.reshape(ctx, PricesPath, nil, &payload); err != nil {
		return nil, err
	}

	prices := make(map[string]string, len(payload))
	for _, d := range payload {
		prices[d.Symbol] = d.Price
	}

	return prices, nil
}

//
// Tickers retrieves the best price and quantity on the order book of every symbol, keyed by symbol.
//
func (o *Client) Tickers(ctx context.Context) (map[string]BookTicker, error) {
	var payload []struct {
		Symbol   string `json:"symbol"`
		BidPrice string `json:"bidPrice"`
		AskPrice string `json:"askPrice"`
		BidQty   string `json:"bidQty"`
		AskQty   string `json:"askQty"`
	}

	if err := o.reshape(ctx, BookTickersPath, nil, &payload); err != nil {
		return nil, err
	}

	tickers := make(map[string]BookTicker, len(payload))
	for _, d := range payload {
		tickers[d.Symbol] = BookTicker{
			Bid:    d.BidPrice,
			Ask:    d.AskPrice,
			BidQty: d.BidQty,
			AskQty: d.AskQty,
		}
	}

	return tickers, nil
}

//
// Depth retrieves the order book of the provided symbol. The optional "limit" parameter must be one
// of 5, 10, 20, 50, 100, 500 (default 100).
//
func (o *Client) Depth(ctx context.Context, symbol string, params Params) (*Depth, error) {
	var payload struct {
		Bids [][]json.RawMessage `json:"bids"`
		Asks [][]json.RawMessage `json:"asks"`
	}

	if err := o.reshape(ctx, DepthPath, Params{"symbol": symbol}.Merge(params), &payload); err != nil {
		return nil, err
	}

	bids, err := priceLevels(payload.Bids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode bids")
	}

	asks, err := priceLevels(payload.Asks)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode asks")
	}

	return &Depth{Bids: bids, Asks: asks}, nil
}

//
// Klines retrieves candlesticks of the provided interval for the provided symbol. Klines are
// uniquely identified by their open time. Optional parameters are "limit" (default and max 500),
// "startTime" and "endTime"; without the latter two the most recent klines are returned.
//
func (o *Client) Klines(ctx context.Context, symbol string, interval exchange.Interval, params Params) ([]Kline, error) {
	var payload []json.RawMessage

	required := Params{"symbol": symbol, "interval": interval.String()}

	if err := o.reshape(ctx, KlinesPath, required.Merge(params), &payload); err != nil {
		return nil, err
	}

	klines := make([]Kline, 0, len(payload))
	for i, raw := range payload {
		k, err := unmarshalKline(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode kline %d", i)
		}

		klines = append(klines, k)
	}

	return klines, nil
}

//
// reshape makes an unsigned GET request and decodes its body into the provided value. An embedded
// API error is returned as the error since there is nothing to reshape.
//
func (o *Client) reshape(ctx context.Context, path string, params Params, v interface{}) error {
	resp, err := o.request(ctx, http.MethodGet, path, params)
	if err != nil {
		return err
	}

	if resp.apiErr != nil {
		return resp.apiErr
	}

	if err := resp.Decode(v); err != nil {
		return errors.Wrapf(err, "failed to decode %s response", path)
	}

	return nil
}

//
// priceLevels converts [[price, quantity, ...], ...] levels into a price → quantity mapping.
//
func priceLevels(levels [][]json.RawMessage) (map[string]string, error) {
	book := make(map[string]string, len(levels))

	for _, level := range levels {
		if len(level) < 2 {
			return nil, errors.Errorf("price level has %d fields, expected at least 2", len(level))
		}

		var px, qty string

		if err := json.Unmarshal(level[0], &px); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(level[1], &qty); err != nil {
			return nil, err
		}

		book[px] = qty
	}

	return book, nil
}
