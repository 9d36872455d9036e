// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package roster

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const keySeparator = "\x00"

// Cache remembers loaded rosters. An entry is keyed by the file's absolute
// path, modification time and size together with the load options, so an
// edited file is read again.
//
// The cache doesn't run a janitor goroutine. Expired entries are dropped
// lazily when new rosters are loaded.
type Cache struct {
	cache *gocache.Cache
}

// NewCache returns a cache whose entries expire after [ttl]. A non-positive
// [ttl] keeps entries until they are invalidated.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &Cache{
		cache: gocache.New(ttl, 0),
	}
}

// Load returns the roster at [path], reading the file only if there isn't a
// fresh entry for it. The returned roster is shared and must not be modified.
// The boolean reports whether the roster came from the cache.
func (c *Cache) Load(path string, opts LoadOptions) (*Roster, bool, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, false, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, false, err
	}

	key := cacheKey(abs, info, opts)
	if r, ok := c.cache.Get(key); ok {
		return r.(*Roster), true, nil
	}

	r, err := Load(abs, opts)
	if err != nil {
		return nil, false, err
	}
	c.cache.DeleteExpired()
	c.cache.SetDefault(key, r)
	return r, false, nil
}

// Invalidate drops every entry of [path].
func (c *Cache) Invalidate(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	prefix := abs + keySeparator
	for key := range c.cache.Items() {
		if strings.HasPrefix(key, prefix) {
			c.cache.Delete(key)
		}
	}
}

func (c *Cache) Len() int {
	return c.cache.ItemCount()
}

func (c *Cache) Flush() {
	c.cache.Flush()
}

func cacheKey(abs string, info os.FileInfo, opts LoadOptions) string {
	return fmt.Sprintf(
		"%s%s%d%s%d%s%+v",
		abs,
		keySeparator,
		info.ModTime().UnixNano(),
		keySeparator,
		info.Size(),
		keySeparator,
		opts,
	)
}
