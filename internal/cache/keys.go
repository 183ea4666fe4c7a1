package cache

import (
	"fmt"
	"strings"
)

// Cache key prefixes.
const (
	PrefixCatalog  = "catalog:"
	PrefixPartners = "partners:"
)

// MakeCatalogKey creates a cache key for a page of products.
func MakeCatalogKey(limit int) string {
	return fmt.Sprintf("%s%d", PrefixCatalog, limit)
}

// MakePartnersKey creates a cache key for a partner search. Terms are
// matched case-insensitively by the ERP, so the key is too.
func MakePartnersKey(term string, limit int) string {
	return fmt.Sprintf("%s%s:%d", PrefixPartners, strings.ToLower(term), limit)
}

// InvalidateCatalog removes every cached product page.
func InvalidateCatalog(c *Cache) {
	c.DeletePrefix(PrefixCatalog)
}
