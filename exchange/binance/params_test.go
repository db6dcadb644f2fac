package binance

import (
	"testing"

	"github.com/lukehollenback/mbx/exchange"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"float", 1.0, "1.00000000"},
		{"small float", 0.1, "0.10000000"},
		{"float32", float32(2.5), "2.50000000"},
		{"int", 5, "5"},
		{"int64", int64(1499827319559), "1499827319559"},
		{"string", "LTCBTC", "LTCBTC"},
		{"decimal", decimal.RequireFromString("0.00123"), "0.00123000"},
		{"bool", true, "true"},
		{"stringer", exchange.FifteenMinute, "15m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}

func TestParamsEncodeSortsByKey(t *testing.T) {
	assert.Equal(t, "a=1&b=2", Params{"b": 2, "a": 1}.Encode())
	assert.Equal(t, "interval=1h&limit=10&symbol=BNBBTC", Params{
		"symbol":   "BNBBTC",
		"limit":    10,
		"interval": exchange.OneHour,
	}.Encode())
}

func TestParamsEncodeEscapes(t *testing.T) {
	assert.Equal(t, "newClientOrderId=my+order%2F1", Params{"newClientOrderId": "my order/1"}.Encode())
}

func TestParamsEncodeEmpty(t *testing.T) {
	assert.Equal(t, "", Params(nil).Encode())
	assert.Equal(t, "", Params{}.Encode())
}

func TestParamsMerge(t *testing.T) {
	base := Params{"symbol": "BNBBTC", "limit": 5}
	merged := base.Merge(Params{"limit": 10, "fromId": 3})

	assert.Equal(t, Params{"symbol": "BNBBTC", "limit": 10, "fromId": 3}, merged)
	assert.Equal(t, 5, base["limit"], "merge must not modify its receiver")

	assert.Equal(t, Params{"symbol": "X"}, Params(nil).Merge(Params{"symbol": "X"}))
}
