package exchange

import "fmt"

//
// Interval is an enum that represents various kline/candlestick intervals that can be retrieved
// from an exchange's historical data endpoints.
//
type Interval int

const (
	OneMinute Interval = iota
	ThreeMinute
	FiveMinute
	FifteenMinute
	ThirtyMinute
	OneHour
	TwoHour
	FourHour
	SixHour
	EightHour
	TwelveHour
	OneDay
	ThreeDay
	OneWeek
	OneMonth
)

var intervalNames = [...]string{"1m", "3m", "5m", "15m", "30m", "1h", "2h", "4h", "6h", "8h", "12h", "1d", "3d", "1w", "1M"}

func (o Interval) String() string {
	if o < 0 || int(o) >= len(intervalNames) {
		return fmt.Sprintf("Interval(%d)", int(o))
	}

	return intervalNames[o]
}

//
// ParseInterval converts the exchange's wire representation of an interval (e.g. "15m", "1M") back
// into an Interval. Note that the match is case-sensitive, since "1m" and "1M" differ.
//
func ParseInterval(s string) (Interval, error) {
	for i, name := range intervalNames {
		if name == s {
			return Interval(i), nil
		}
	}

	return 0, fmt.Errorf("unknown kline interval %q", s)
}
