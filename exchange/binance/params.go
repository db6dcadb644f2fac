package binance

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/lukehollenback/mbx/constants"
	"github.com/shopspring/decimal"
)

//
// Params holds the query parameters of a single request. Values are expected to be primitives
// (strings, integers, floats, booleans) or decimals.
//
type Params map[string]interface{}

//
// Merge returns a new Params holding the receiver's entries overlaid by the provided ones. Neither
// input is modified.
//
func (o Params) Merge(other Params) Params {
	merged := make(Params, len(o)+len(other))

	for k, v := range o {
		merged[k] = v
	}

	for k, v := range other {
		merged[k] = v
	}

	return merged
}

//
// Encode URL-encodes the parameters sorted by key. The output of this function is part of the
// signature contract: the exact same bytes are both signed and transmitted.
//
func (o Params) Encode() string {
	values := make(url.Values, len(o))

	for k, v := range o {
		values.Set(k, FormatNumber(v))
	}

	// NOTE ~> url.Values.Encode sorts by key and escapes like a form body (spaces become "+").
	return values.Encode()
}

//
// FormatNumber renders a request value. Floating point values and decimals are rendered with
// exactly eight digits after the decimal point; everything else uses its default string form.
//
func FormatNumber(v interface{}) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', constants.NumberPrecision, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', constants.NumberPrecision, 32)
	case decimal.Decimal:
		return n.StringFixed(constants.NumberPrecision)
	case *decimal.Decimal:
		return n.StringFixed(constants.NumberPrecision)
	case string:
		return n
	case fmt.Stringer:
		return n.String()
	default:
		return fmt.Sprint(n)
	}
}
