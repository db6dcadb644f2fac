package render

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/logrusorgru/aurora"
	"github.com/lukehollenback/mbx/exchange/binance"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

//
// Renderer writes reshaped exchange results out in a single format. Tables are sorted so that the
// output of two identical calls is identical.
//
type Renderer struct {
	out    io.Writer
	format Format
	color  bool
}

func New(out io.Writer, format Format, color bool) *Renderer {
	return &Renderer{
		out:    out,
		format: format,
		color:  color && format == Table,
	}
}

func (o *Renderer) ServerTime(ts int64) error {
	if o.format == JSON {
		return o.json(map[string]int64{"serverTime": ts})
	}

	at := time.Unix(0, ts*int64(time.Millisecond)).UTC()

	return o.table(table.Row{"Server Time", "UTC"}, []table.Row{{ts, at.Format(time.RFC3339Nano)}})
}

func (o *Renderer) Prices(prices map[string]string) error {
	if o.format == JSON {
		return o.json(prices)
	}

	rows := make([]table.Row, 0, len(prices))
	for _, symbol := range sortedKeys(prices) {
		rows = append(rows, table.Row{symbol, prices[symbol]})
	}

	return o.table(table.Row{"Symbol", "Price"}, rows)
}

func (o *Renderer) Tickers(tickers map[string]binance.BookTicker) error {
	if o.format == JSON {
		return o.json(tickers)
	}

	symbols := make([]string, 0, len(tickers))
	for symbol := range tickers {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	rows := make([]table.Row, 0, len(tickers))
	for _, symbol := range symbols {
		t := tickers[symbol]
		rows = append(rows, table.Row{symbol, o.bid(t.Bid), t.BidQty, o.ask(t.Ask), t.AskQty})
	}

	return o.table(table.Row{"Symbol", "Bid", "Bid Qty", "Ask", "Ask Qty"}, rows)
}

//
// Depth writes the order book as a ladder: asks from the highest price down to the best ask, then
// bids from the best bid down.
//
func (o *Renderer) Depth(depth *binance.Depth) error {
	if o.format == JSON {
		return o.json(depth)
	}

	rows := make([]table.Row, 0, len(depth.Bids)+len(depth.Asks))

	asks := sortedPrices(depth.Asks)
	for i := len(asks) - 1; i >= 0; i-- {
		rows = append(rows, table.Row{"ask", o.ask(asks[i]), depth.Asks[asks[i]]})
	}

	bids := sortedPrices(depth.Bids)
	for i := len(bids) - 1; i >= 0; i-- {
		rows = append(rows, table.Row{"bid", o.bid(bids[i]), depth.Bids[bids[i]]})
	}

	return o.table(table.Row{"Side", "Price", "Quantity"}, rows)
}

func (o *Renderer) Klines(klines []binance.Kline) error {
	if o.format == JSON {
		return o.json(klines)
	}

	rows := make([]table.Row, 0, len(klines))
	for _, k := range klines {
		rows = append(rows, table.Row{
			k.OpenedAt().UTC().Format(time.RFC3339),
			k.Open, k.High, k.Low, k.Close, k.Volume,
			k.ClosedAt().UTC().Format(time.RFC3339),
			k.QuoteVolume, k.NumTrades, change(k),
		})
	}

	return o.table(table.Row{"Open Time", "Open", "High", "Low", "Close", "Volume", "Close Time", "Quote Volume", "Trades", "Change %"}, rows)
}

//
// change renders the close-over-open move of a kline in percent, or nothing if its prices do not
// parse or it opened at zero.
//
func change(k binance.Kline) string {
	open, _, _, close, err := k.OHLC()
	if err != nil || open.IsZero() {
		return ""
	}

	return close.Sub(open).Div(open).Mul(hundred).StringFixed(2)
}

func (o *Renderer) Balances(balances map[string]binance.Balance) error {
	if o.format == JSON {
		return o.json(balances)
	}

	assets := make([]string, 0, len(balances))
	for asset := range balances {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	rows := make([]table.Row, 0, len(balances))
	for _, asset := range assets {
		rows = append(rows, table.Row{asset, balances[asset].Free, balances[asset].Locked})
	}

	return o.table(table.Row{"Asset", "Free", "Locked"}, rows)
}

//
// Raw writes the body of a raw endpoint. Such bodies have no fixed shape, so they are always written
// as indented JSON regardless of the format.
//
func (o *Renderer) Raw(body []byte) error {
	var buf bytes.Buffer

	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return err
	}

	buf.WriteByte('\n')

	_, err := o.out.Write(buf.Bytes())

	return err
}

func (o *Renderer) json(v interface{}) error {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func (o *Renderer) table(header table.Row, rows []table.Row) error {
	t := table.NewWriter()
	t.SetOutputMirror(o.out)
	t.AppendHeader(header)
	t.AppendRows(rows)

	switch o.format {
	case CSV:
		t.RenderCSV()
	default:
		t.SetStyle(table.StyleLight)
		t.Render()
	}

	return nil
}

func (o *Renderer) bid(px string) string {
	if !o.color {
		return px
	}

	return aurora.Green(px).String()
}

func (o *Renderer) ask(px string) string {
	if !o.color {
		return px
	}

	return aurora.Red(px).String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

//
// sortedPrices returns the price keys of a book side in ascending numeric order. Prices that do not
// parse sort after those that do.
//
func sortedPrices(book map[string]string) []string {
	prices := sortedKeys(book)

	parsed := make(map[string]decimal.Decimal, len(prices))
	for _, px := range prices {
		if d, err := decimal.NewFromString(px); err == nil {
			parsed[px] = d
		}
	}

	sort.SliceStable(prices, func(i, j int) bool {
		a, aok := parsed[prices[i]]
		b, bok := parsed[prices[j]]

		switch {
		case aok && bok:
			return a.LessThan(b)
		case aok != bok:
			return aok
		default:
			return prices[i] < prices[j]
		}
	})

	return prices
}
