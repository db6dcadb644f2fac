package binance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignKnownVector(t *testing.T) {
	secret := "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"
	query := "symbol=LTCBTC&side=BUY&type=LIMIT&timeInForce=GTC&quantity=1&price=0.1&recvWindow=5000&timestamp=1499827319559"

	assert.Equal(t, "c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71", sign(secret, query))
}

func TestSignedQueryIsDeterministic(t *testing.T) {
	params := Params{"symbol": "BNBBTC", "side": "BUY", "quantity": 1.5, "price": 0.002}

	first := signedQuery("secret", params, 1499827319559)
	second := signedQuery("secret", params, 1499827319559)

	assert.Equal(t, first, second)
}

func TestSignedQueryLayout(t *testing.T) {
	query := signedQuery("secret", Params{"b": 2, "a": 1}, 1000)

	assert.True(t, strings.HasPrefix(query, "a=1&b=2&timestamp=1000&signature="), query)

	message := "a=1&b=2&timestamp=1000"
	assert.Equal(t, message+"&signature="+sign("secret", message), query)
}

func TestSignedQueryWithoutParams(t *testing.T) {
	query := signedQuery("secret", Params{}, 1000)

	assert.Equal(t, "timestamp=1000&signature="+sign("secret", "timestamp=1000"), query)
}

func TestSignedQueryDependsOnSecretAndTimestamp(t *testing.T) {
	params := Params{"symbol": "BNBBTC"}

	assert.NotEqual(t, signedQuery("a", params, 1000), signedQuery("b", params, 1000))
	assert.NotEqual(t, signedQuery("a", params, 1000), signedQuery("a", params, 1001))
}
