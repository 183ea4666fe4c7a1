package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/device-management-toolkit/storefront/config"
)

func TestCache_Disabled(t *testing.T) {
	t.Parallel()

	c := New(0)
	c.Set(MakeCatalogKey(80), []string{"desk"})

	_, ok := c.Get(MakeCatalogKey(80))
	assert.False(t, ok)
	assert.False(t, c.IsEnabled())
}

func TestCache_SetGetExpire(t *testing.T) {
	t.Parallel()

	c := New(20 * time.Millisecond)
	c.Set(MakeCatalogKey(80), "page")

	v, ok := c.Get(MakeCatalogKey(80))
	assert.True(t, ok)
	assert.Equal(t, "page", v)

	time.Sleep(40 * time.Millisecond)

	_, ok = c.Get(MakeCatalogKey(80))
	assert.False(t, ok)
}

func TestInvalidateCatalog(t *testing.T) {
	t.Parallel()

	c := New(time.Minute)
	c.Set(MakeCatalogKey(10), 1)
	c.Set(MakeCatalogKey(80), 2)
	c.Set(MakePartnersKey("Azure", 10), 3)

	InvalidateCatalog(c)

	_, ok := c.Get(MakeCatalogKey(10))
	assert.False(t, ok)

	_, ok = c.Get(MakeCatalogKey(80))
	assert.False(t, ok)

	_, ok = c.Get(MakePartnersKey("azure", 10))
	assert.True(t, ok)

	c.Clear()

	_, ok = c.Get(MakePartnersKey("azure", 10))
	assert.False(t, ok)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	c := NewFromConfig(&config.Config{Cache: config.Cache{TTL: time.Minute}})
	assert.True(t, c.IsEnabled())
	assert.Equal(t, time.Minute, c.GetTTL())
}
