package binance

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

type OrderType string

const (
	Limit  OrderType = "LIMIT"
	Market OrderType = "MARKET"
)

type TimeInForce string

const (
	GoodTillCanceled  TimeInForce = "GTC"
	ImmediateOrCancel TimeInForce = "IOC"
)

//
// OrderRequest holds the fields of a new order. Type defaults to LIMIT and TimeInForce to GTC.
//
type OrderRequest struct {
	Symbol      string
	Side        Side
	Type        OrderType
	TimeInForce TimeInForce
	Quantity    decimal.Decimal
	Price       decimal.Decimal

	NewClientOrderID string
	StopPrice        decimal.NullDecimal
	IcebergQty       decimal.NullDecimal

	// Test routes the order to the validation-only endpoint.
	Test bool
}

func ParseSide(s string) (Side, error) {
	switch side := Side(strings.ToUpper(s)); side {
	case Buy, Sell:
		return side, nil
	default:
		return "", errors.Errorf("unknown order side %q (expected BUY or SELL)", s)
	}
}

func ParseOrderType(s string) (OrderType, error) {
	switch t := OrderType(strings.ToUpper(s)); t {
	case Limit, Market:
		return t, nil
	default:
		return "", errors.Errorf("unknown order type %q (expected LIMIT or MARKET)", s)
	}
}

func ParseTimeInForce(s string) (TimeInForce, error) {
	switch tif := TimeInForce(strings.ToUpper(s)); tif {
	case GoodTillCanceled, ImmediateOrCancel:
		return tif, nil
	default:
		return "", errors.Errorf("unknown time in force %q (expected GTC or IOC)", s)
	}
}

//
// params validates the request and converts it into request parameters.
//
func (o OrderRequest) params() (Params, error) {
	if o.Symbol == "" {
		return nil, errors.New("order symbol must be set")
	}

	if _, err := ParseSide(string(o.Side)); err != nil {
		return nil, err
	}

	orderType := o.Type
	if orderType == "" {
		orderType = Limit
	} else if _, err := ParseOrderType(string(orderType)); err != nil {
		return nil, err
	}

	timeInForce := o.TimeInForce
	if timeInForce == "" {
		timeInForce = GoodTillCanceled
	} else if _, err := ParseTimeInForce(string(timeInForce)); err != nil {
		return nil, err
	}

	params := Params{
		"symbol":      o.Symbol,
		"side":        strings.ToUpper(string(o.Side)),
		"type":        strings.ToUpper(string(orderType)),
		"timeInForce": strings.ToUpper(string(timeInForce)),
		"quantity":    o.Quantity,
		"price":       o.Price,
	}

	if o.NewClientOrderID != "" {
		params["newClientOrderId"] = o.NewClientOrderID
	}

	if o.StopPrice.Valid {
		params["stopPrice"] = o.StopPrice.Decimal
	}

	if o.IcebergQty.Valid {
		params["icebergQty"] = o.IcebergQty.Decimal
	}

	return params, nil
}
