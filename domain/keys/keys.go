package keys

import "strings"

const (
	PfxHealthCheck = "healthcheck"
	PfxNonce       = "nonce"
	PfxCurrency    = "currency"
	PfxEns         = "ens"
	PfxAsset       = "asset"
)

const delimiter = ":"

// RedisKey joins key components with ':'
func RedisKey(components ...string) string {
	return strings.Join(components, delimiter)
}

// GetPrefix returns the first component of a key, used as metric tag
func GetPrefix(key string) string {
	if i := strings.Index(key, delimiter); i >= 0 {
		return key[:i]
	}
	return key
}
