package binance

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/lukehollenback/mbx/exchange"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

//
// Client is a binding for the Binance public and signed REST endpoints. A client is immutable once
// constructed and may be shared between goroutines.
//
type Client struct {
	endpoint     string
	apiKey       string
	apiSecret    string
	httpClient   *http.Client
	logger       logrus.FieldLogger
	strictErrors bool
}

type Option func(*Client)

//
// WithCredentials provides the API key (sent as a header) and the API secret (used to sign
// requests). Both are required before any signed endpoint can be called.
//
func WithCredentials(key string, secret string) Option {
	return func(o *Client) {
		o.apiKey = key
		o.apiSecret = secret
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *Client) {
		o.httpClient = httpClient
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *Client) {
		o.logger = logger
	}
}

//
// WithStrictErrors makes the raw endpoints (orders, trades) return the exchange's embedded error
// alongside the response instead of only logging it.
//
func WithStrictErrors() Option {
	return func(o *Client) {
		o.strictErrors = true
	}
}

func NewClient(endpoint string, options ...Option) *Client {
	o := &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{},
		logger:     logrus.WithField("service", Name),
	}

	for _, option := range options {
		option(o)
	}

	return o
}

func (o *Client) Endpoint() string {
	return o.endpoint
}

//
// HasCredentials reports whether both the API key and the API secret were provided.
//
func (o *Client) HasCredentials() bool {
	return o.apiKey != "" && o.apiSecret != ""
}

//
// request makes an unsigned request to the Binance API with the provided parameters as its query
// string.
//
func (o *Client) request(ctx context.Context, method string, path string, params Params) (*Response, error) {
	url := o.endpoint + path
	if query := params.Encode(); query != "" {
		url += "?" + query
	}

	return o.do(ctx, method, path, url, nil)
}

//
// signedRequest makes a signed request to the Binance API. The current server time is fetched
// first and used as the request timestamp so that local clock skew never invalidates a signature.
//
func (o *Client) signedRequest(ctx context.Context, method string, path string, params Params) (*Response, error) {
	if !o.HasCredentials() {
		return nil, exchange.ErrMissingCredentials
	}

	timestamp, err := o.ServerTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to retrieve the server time for a signed request")
	}

	url := o.endpoint + path + "?" + signedQuery(o.apiSecret, params, timestamp)

	header := http.Header{}
	header.Set(APIKeyHeader, o.apiKey)

	return o.do(ctx, method, path, url, header)
}

//
// do makes the actual HTTP call and wraps the parsed response. A body carrying an API error is
// logged and still returned to the caller with a nil error.
//
func (o *Client) do(ctx context.Context, method string, path string, url string, header http.Header) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s %s request", method, path)
	}

	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s request failed", method, path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s %s response body", method, path)
	}

	//
	// Make sure we actually received a JSON payload. Binance reports its own errors as JSON objects
	// even on 4xx statuses, so only a non-JSON body is treated as a transport failure.
	//
	if !json.Valid(body) {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, exchange.NewHTTPError(resp.StatusCode, body)
		}

		return nil, errors.Errorf("%s %s returned a non-JSON response body", method, path)
	}

	wrapped := &Response{
		response: resp,
		body:     body,
		apiErr:   parseAPIError(body),
	}

	if wrapped.apiErr != nil {
		o.logger.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"code":   wrapped.apiErr.Code,
		}).Error(wrapped.apiErr.Message)
	}

	return wrapped, nil
}

//
// raw finishes off a raw endpoint call, surfacing the embedded API error only in strict mode.
//
func (o *Client) raw(resp *Response, err error) (*Response, error) {
	if err != nil {
		return resp, err
	}

	if o.strictErrors && resp.apiErr != nil {
		return resp, resp.apiErr
	}

	return resp, nil
}
