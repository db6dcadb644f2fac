package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lukehollenback/mbx/exchange/binance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{Table, CSV, JSON} {
		parsed, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestPricesCSVIsSorted(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, New(&buf, CSV, true).Prices(map[string]string{"ETHBTC": "0.03", "BNBBTC": "0.001"}))

	out := buf.String()
	assert.Contains(t, out, "BNBBTC,0.001")
	assert.Contains(t, out, "ETHBTC,0.03")
	assert.Less(t, strings.Index(out, "BNBBTC"), strings.Index(out, "ETHBTC"))
	assert.NotContains(t, out, "\x1b[", "csv output must never be colored")
}

func TestPricesJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, New(&buf, JSON, false).Prices(map[string]string{"BTCUSD": "100"}))
	assert.JSONEq(t, `{"BTCUSD":"100"}`, buf.String())
}

func TestDepthLadder(t *testing.T) {
	var buf bytes.Buffer

	depth := &binance.Depth{
		Bids: map[string]string{"9.5": "1", "10": "2"},
		Asks: map[string]string{"11": "3", "10.5": "4"},
	}

	require.NoError(t, New(&buf, CSV, false).Depth(depth))

	out := buf.String()
	order := []string{"ask,11,3", "ask,10.5,4", "bid,10,2", "bid,9.5,1"}
	last := -1
	for _, row := range order {
		idx := strings.Index(out, row)
		require.NotEqual(t, -1, idx, "missing row %q in %q", row, out)
		assert.Greater(t, idx, last, "row %q is out of order", row)
		last = idx
	}
}

func TestKlinesTable(t *testing.T) {
	var buf bytes.Buffer

	klines := []binance.Kline{{
		OpenTime: 1499040000000, Open: "1", High: "2", Low: "0.5", Close: "1.5",
		Volume: "10", CloseTime: 1499644799999, QuoteVolume: "15", NumTrades: 3,
	}}

	require.NoError(t, New(&buf, Table, false).Klines(klines))
	assert.Contains(t, buf.String(), "2017-07-03T00:00:00Z")
	assert.Contains(t, buf.String(), "1.5")
}

func TestKlinesChangeColumn(t *testing.T) {
	var buf bytes.Buffer

	klines := []binance.Kline{
		{OpenTime: 1000, Open: "2", High: "3", Low: "1", Close: "3", CloseTime: 2000, NumTrades: 1},
		{OpenTime: 3000, Open: "4", High: "4", Low: "3", Close: "3", CloseTime: 4000, NumTrades: 1},
		{OpenTime: 5000, Open: "bad", High: "1", Low: "1", Close: "1", CloseTime: 6000, NumTrades: 1},
	}

	require.NoError(t, New(&buf, CSV, false).Klines(klines))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[1], ",50.00"), lines[1])
	assert.True(t, strings.HasSuffix(lines[2], ",-25.00"), lines[2])
	assert.True(t, strings.HasSuffix(lines[3], ","), lines[3])
}

func TestBalancesJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, New(&buf, JSON, false).Balances(map[string]binance.Balance{"BTC": {Free: "1", Locked: "0"}}))
	assert.JSONEq(t, `{"BTC":{"free":"1","locked":"0"}}`, buf.String())
}

func TestRaw(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, New(&buf, CSV, false).Raw([]byte(`{"orderId":28}`)))
	assert.Equal(t, "{\n  \"orderId\": 28\n}\n", buf.String())

	assert.Error(t, New(&buf, Table, false).Raw([]byte(`nope`)))
}

func TestServerTimeJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, New(&buf, JSON, false).ServerTime(1499827319559))
	assert.JSONEq(t, `{"serverTime":1499827319559}`, buf.String())
}
