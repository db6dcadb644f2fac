package binance

const (
	Name = "≪binance-client≫"

	APIKeyHeader = "X-MBX-APIKEY"

	ServerTimePath  = "/api/v3/time"
	PricesPath      = "/api/v1/ticker/allPrices"
	BookTickersPath = "/api/v1/ticker/allBookTickers"
	DepthPath       = "/api/v1/depth"
	KlinesPath      = "/api/v1/klines"
	AccountPath     = "/api/v3/account"
	OrderPath       = "/api/v3/order"
	OrderTestPath   = "/api/v3/order/test"
	OpenOrdersPath  = "/api/v3/openOrders"
	AllOrdersPath   = "/api/v3/allOrders"
	MyTradesPath    = "/api/v3/myTrades"
)
