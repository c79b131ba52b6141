package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "nonce:0xabc", RedisKey(PfxNonce, "0xabc"))
	assert.Equal(t, "currency", GetPrefix(RedisKey(PfxCurrency, "5", "0xabc")))
	assert.Equal(t, "plain", GetPrefix("plain"))
}
