package binance

import (
	"encoding/json"
	"fmt"

	"github.com/lukehollenback/mbx/exchange"
)

var _ exchange.APIError = (*APIError)(nil)

//
// APIError implements the exchange.APIError interface for errors returned from Binance API calls.
//
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
}

func (o *APIError) ErrorCode() int {
	return o.Code
}

func (o *APIError) ErrorMessage() string {
	return o.Message
}

func (o *APIError) Error() string {
	return fmt.Sprintf(
		"the Binance endpoint returned an API error (code: %d, message: %s)",
		o.ErrorCode(), o.ErrorMessage(),
	)
}

//
// parseAPIError extracts an APIError from the provided payload, or returns nil if the payload is
// not a JSON object carrying a "msg" field (e.g. it is a successful array response). The presence
// of the field alone marks the payload as an error; the code and message are filled in as far as
// they decode.
//
func parseAPIError(body []byte) *APIError {
	var fields map[string]json.RawMessage

	if err := json.Unmarshal(body, &fields); err != nil {
		return nil
	}

	rawMsg, ok := fields["msg"]
	if !ok {
		return nil
	}

	apiErr := &APIError{}

	if err := json.Unmarshal(rawMsg, &apiErr.Message); err != nil {
		apiErr.Message = string(rawMsg)
	}

	if rawCode, ok := fields["code"]; ok {
		_ = json.Unmarshal(rawCode, &apiErr.Code)
	}

	return apiErr
}
