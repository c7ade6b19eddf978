package keys

import (
	"strings"
)

const (
	// PfxAuctionSnapshot prefixes the latest snapshot of an auction
	PfxAuctionSnapshot = "auctionSnapshot"
	// PfxAccountSnapshot prefixes the latest staking snapshot of an account
	PfxAccountSnapshot = "accountSnapshot"
	PfxHealthCheck     = "healthCheck"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix returns the first two components of a key, used to tag metrics
// without the per entity part.
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	if len(s) > 2 {
		return strings.Join(s[:2], ":")
	} else if len(s) > 1 {
		return s[0]
	}
	return ""
}
