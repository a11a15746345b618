package keys

import (
	"strings"
)

const (
	// PfxCollection is used for prefixing collection cache key
	PfxCollection = "collection"
	// PfxContractConfig is used for prefixing contract config cache key
	PfxContractConfig = "contractConfig"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// CacheKey is used to join the cache key by componets
func CacheKey(components ...string) string {
	return CustomKey(":", components...)
}
