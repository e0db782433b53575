package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestCacheGetAdd(t *testing.T) {
	c := New[string, int](2)
	if _, ok := c.Get("a"); ok {
		t.Fatal("Get on empty cache should miss")
	}
	c.Add("a", 1)
	c.Add("b", 2)
	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v; want 1, true", v, ok)
	}
	c.Add("a", 10)
	if v, _ := c.Get("a"); v != 10 {
		t.Errorf("Get(a) after update = %d, want 10", v)
	}
	if n := c.Stats().Len; n != 2 {
		t.Errorf("Stats().Len = %d, want 2", n)
	}
}

func TestCacheEviction(t *testing.T) {
	c := New[string, int](2)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Get("a") // b is now the oldest
	if !c.Add("c", 3) {
		t.Error("Add over capacity should report an eviction")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s should still be cached", k)
		}
	}
}

func TestCacheStats(t *testing.T) {
	c := New[string, int](0)
	c.Add("x", 1)
	c.Get("x")
	c.Get("y")
	s := c.Stats()
	want := Stats{Len: 1, Capacity: 1, Hits: 1, Misses: 1}
	if s != want {
		t.Errorf("Stats() = %+v, want %+v", s, want)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := strconv.Itoa((g + i) % 32)
				c.Add(key, i)
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()
	if n := c.Stats().Len; n > 16 {
		t.Errorf("Stats().Len = %d exceeds capacity", n)
	}
}
