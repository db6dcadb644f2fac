package binance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAPIError(t *testing.T) {
	tests := []struct {
		name string
		body string
		want *APIError
	}{
		{"code and message", `{"code":-1121,"msg":"Invalid symbol."}`, &APIError{Code: -1121, Message: "Invalid symbol."}},
		{"empty message", `{"code":-1,"msg":""}`, &APIError{Code: -1}},
		{"non-integer code", `{"code":"x","msg":"boom"}`, &APIError{Message: "boom"}},
		{"non-string message", `{"code":-2,"msg":42}`, &APIError{Code: -2, Message: "42"}},
		{"null message", `{"msg":null}`, &APIError{}},
		{"success object", `{"serverTime":1}`, nil},
		{"success array", `[{"msg":"not an error"}]`, nil},
		{"null body", `null`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseAPIError([]byte(tt.body))
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
