/*
 * Copyright 2025 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package bingcore

import (
	"runtime"
	"sync"
	"time"
)

// janitor is a background task that cleans up expired cache items
type janitor struct {
	interval time.Duration
	stop     chan struct{}
}

// run starts the janitor loop
func (j *janitor) run(c *cache) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			c.deleteExpired()
		case <-j.stop:
			return
		}
	}
}

// stopJanitor stops the janitor
func stopJanitor(c *cache) {
	c.janitor.stop <- struct{}{}
}

// cache implements a simple in-memory cache with expiration
type cache struct {
	mu      sync.RWMutex
	items   map[string]*cacheItem
	maxAge  time.Duration
	janitor *janitor
}

type cacheItem struct {
	value      []*Result
	expiration time.Time
}

func newCache(maxAge time.Duration) *cache {
	c := &cache{
		items:  make(map[string]*cacheItem),
		maxAge: maxAge,
		janitor: &janitor{
			interval: maxAge,
			stop:     make(chan struct{}),
		},
	}

	go c.janitor.run(c)
	runtime.SetFinalizer(c, stopJanitor)

	return c
}

func (c *cache) get(key string) ([]*Result, bool) {
	c.mu.RLock()
	item, exists := c.items[key]
	c.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if time.Now().After(item.expiration) {
		c.delete(key)
		return nil, false
	}

	return item.value, true
}

func (c *cache) set(key string, value []*Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = &cacheItem{
		value:      value,
		expiration: time.Now().Add(c.maxAge),
	}
}

func (c *cache) delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

func (c *cache) deleteExpired() {
	now := time.Now()
	expiredKeys := make([]string, 0)

	c.mu.RLock()
	for k, v := range c.items {
		if now.After(v.expiration) {
			expiredKeys = append(expiredKeys, k)
		}
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range expiredKeys {
		delete(c.items, k)
	}
}
