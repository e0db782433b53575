// Package cache provides a small generic LRU cache.
//
// It backs the opt-in parsed-font cache of the text package: fonts are keyed
// by locator and the least recently used entry is dropped once the capacity
// is reached.
//
//	c := cache.New[string, int](8)
//	c.Add("key", 42)
//	value, ok := c.Get("key")
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
