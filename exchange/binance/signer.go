package binance

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

//
// sign computes the hex-encoded HMAC-SHA256 digest of the provided message keyed by the secret.
//
func sign(secret string, message string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(message))

	return hex.EncodeToString(mac.Sum(nil))
}

//
// signedQuery builds the full query string of a signed request: the sorted, encoded parameters,
// then the timestamp, then the signature over everything before it. Without parameters the query
// starts directly at "timestamp=" rather than with a dangling "&"; the exchange verifies whatever
// string it receives, so both forms sign correctly.
//
func signedQuery(secret string, params Params, timestamp int64) string {
	query := params.Encode()
	if query != "" {
		query += "&"
	}

	query += "timestamp=" + strconv.FormatInt(timestamp, 10)

	return query + "&signature=" + sign(secret, query)
}
