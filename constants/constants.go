package constants

const (
	LogPrefixFmt = "%-18s "

	//
	// NumberPrecision is the number of digits after the decimal point that quantities and prices are
	// rendered with before being placed into a request. Some order types are matched by exact string
	// comparison on the exchange side, so this must never change.
	//
	NumberPrecision = 8

	DefaultEndpoint = "https://api.binance.com"
)
