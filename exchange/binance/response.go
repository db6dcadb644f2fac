package binance

import (
	"encoding/json"
	"net/http"
)

//
// Response wraps a parsed response from the Binance API. The body is kept exactly as it was
// received so that callers of raw endpoints can decode it however they see fit.
//
type Response struct {
	response *http.Response
	body     []byte
	apiErr   *APIError
}

func (o *Response) StatusCode() int {
	return o.response.StatusCode
}

func (o *Response) Body() []byte {
	return o.body
}

//
// APIError returns the error the exchange embedded in the body, or nil if there was none.
//
func (o *Response) APIError() *APIError {
	return o.apiErr
}

//
// Decode unmarshals the body into the provided value.
//
func (o *Response) Decode(v interface{}) error {
	return json.Unmarshal(o.body, v)
}
