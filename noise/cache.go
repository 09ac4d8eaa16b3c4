// SPDX-License-Identifier: EPL-2.0

package noise

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes one Library per sample rate for the lifetime of a run.
// Concurrent requests for a rate that is not loaded yet share a single Load;
// failed loads are not remembered so a later request tries again.
type Cache struct {
	loader Loader
	group  singleflight.Group

	mu   sync.Mutex
	libs map[int]*Library
}

func NewCache(loader Loader) *Cache {
	return &Cache{
		loader: loader,
		libs:   make(map[int]*Library),
	}
}

// Get returns the library for rate, loading it on first use.
func (c *Cache) Get(ctx context.Context, rate int) (*Library, error) {
	if lib, ok := c.lookup(rate); ok {
		return lib, nil
	}

	ch := c.group.DoChan(strconv.Itoa(rate), func() (any, error) {
		// A load that finished between lookup and DoChan already stored it.
		if lib, ok := c.lookup(rate); ok {
			return lib, nil
		}

		// Shared by every waiter, so detached from the first caller's cancellation.
		lib, err := c.loader.Load(context.WithoutCancel(ctx), rate)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.libs[rate] = lib
		c.mu.Unlock()
		return lib, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Library), nil
	}
}

// Len is the number of rates currently cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.libs)
}

func (c *Cache) lookup(rate int) (*Library, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	lib, ok := c.libs[rate]
	return lib, ok
}
