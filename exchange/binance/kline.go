package binance

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// NOTE ~> The candlestick endpoint returns each kline as a positional array:
//
//  [0]  1499040000000,      // Open time
//  [1]  "0.01634790",       // Open
//  [2]  "0.80000000",       // High
//  [3]  "0.01575800",       // Low
//  [4]  "0.01577100",       // Close
//  [5]  "148976.11427815",  // Volume
//  [6]  1499644799999,      // Close time
//  [7]  "2434.19055334",    // Quote asset volume
//  [8]  308,                // Number of trades
//  ...                      // Taker volumes and an ignored field, unused here.

const (
	OpenTimeIndex    = 0
	OpenIndex        = 1
	HighIndex        = 2
	LowIndex         = 3
	CloseIndex       = 4
	VolumeIndex      = 5
	CloseTimeIndex   = 6
	QuoteVolumeIndex = 7
	NumTradesIndex   = 8

	klineFields = 9
)

//
// Kline is a single candlestick as returned by the klines endpoint. Prices and volumes are kept as
// the exact strings the exchange sent.
//
type Kline struct {
	OpenTime    int64  `json:"openTime"`
	Open        string `json:"open"`
	High        string `json:"high"`
	Low         string `json:"low"`
	Close       string `json:"close"`
	Volume      string `json:"volume"`
	CloseTime   int64  `json:"closeTime"`
	QuoteVolume string `json:"quoteVolume"`
	NumTrades   int64  `json:"numTrades"`
}

//
// unmarshalKline decodes one positional kline array.
//
func unmarshalKline(data []byte) (Kline, error) {
	var raw []json.RawMessage

	if err := json.Unmarshal(data, &raw); err != nil {
		return Kline{}, err
	}

	if len(raw) < klineFields {
		return Kline{}, errors.Errorf("kline has %d fields, expected at least %d", len(raw), klineFields)
	}

	var k Kline

	targets := []struct {
		index int
		name  string
		dst   interface{}
	}{
		{OpenTimeIndex, "open time", &k.OpenTime},
		{OpenIndex, "open", &k.Open},
		{HighIndex, "high", &k.High},
		{LowIndex, "low", &k.Low},
		{CloseIndex, "close", &k.Close},
		{VolumeIndex, "volume", &k.Volume},
		{CloseTimeIndex, "close time", &k.CloseTime},
		{QuoteVolumeIndex, "quote volume", &k.QuoteVolume},
		{NumTradesIndex, "number of trades", &k.NumTrades},
	}

	for _, t := range targets {
		if err := json.Unmarshal(raw[t.index], t.dst); err != nil {
			return Kline{}, errors.Wrapf(err, "failed to decode %s (%s)", t.name, raw[t.index])
		}
	}

	return k, nil
}

func (o Kline) OpenedAt() time.Time {
	return time.Unix(0, o.OpenTime*int64(time.Millisecond))
}

func (o Kline) ClosedAt() time.Time {
	return time.Unix(0, o.CloseTime*int64(time.Millisecond))
}

//
// OHLC parses the open, high, low and close prices of the kline.
//
func (o Kline) OHLC() (open, high, low, close decimal.Decimal, err error) {
	if open, err = decimal.NewFromString(o.Open); err != nil {
		return
	}

	if high, err = decimal.NewFromString(o.High); err != nil {
		return
	}

	if low, err = decimal.NewFromString(o.Low); err != nil {
		return
	}

	close, err = decimal.NewFromString(o.Close)

	return
}
