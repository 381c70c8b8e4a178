package cache

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := New[string](0)
	c.Set("org.mpris.MediaPlayer2.vlc", "VLC media player")

	val, ok := c.Get("org.mpris.MediaPlayer2.vlc")
	if !ok {
		t.Fatal("entry should exist")
	}
	if val != "VLC media player" {
		t.Fatalf("expected 'VLC media player', got '%s'", val)
	}
}

func TestCacheGetMissing(t *testing.T) {
	c := New[string](0)

	_, ok := c.Get("org.mpris.MediaPlayer2.missing")
	if ok {
		t.Fatal("missing key should not exist")
	}
}

func TestCacheTTL(t *testing.T) {
	c := New[string](100 * time.Millisecond)
	c.Set("key1", "value1")

	// Should exist immediately
	_, ok := c.Get("key1")
	if !ok {
		t.Fatal("key1 should exist immediately after set")
	}

	// Wait for expiration
	time.Sleep(150 * time.Millisecond)

	_, ok = c.Get("key1")
	if ok {
		t.Fatal("key1 should be expired after TTL")
	}
}

func TestCacheZeroTTL(t *testing.T) {
	c := New[string](0) // TTL=0 means never expire
	c.Set("key1", "value1")

	time.Sleep(100 * time.Millisecond)

	val, ok := c.Get("key1")
	if !ok {
		t.Fatal("key1 should never expire with TTL=0")
	}
	if val != "value1" {
		t.Fatalf("expected 'value1', got '%s'", val)
	}
}

func TestCacheDelete(t *testing.T) {
	c := New[string](0)
	c.Set("key1", "value1")

	c.Delete("key1")

	_, ok := c.Get("key1")
	if ok {
		t.Fatal("key1 should be deleted")
	}
}

func TestCacheClear(t *testing.T) {
	c := New[string](0)
	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Set("key3", "value3")

	c.Clear()

	if c.Len() != 0 {
		t.Fatalf("expected empty cache, got %d entries", c.Len())
	}
}

func TestCacheLen(t *testing.T) {
	c := New[int](0)
	if c.Len() != 0 {
		t.Fatalf("new cache should be empty, got %d", c.Len())
	}

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 3) // overwrite, not a new entry

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
}

func TestCacheThreadSafety(t *testing.T) {
	c := New[int](0)
	done := make(chan bool, 10)

	// 5 goroutines writing
	for i := 0; i < 5; i++ {
		go func(id int) {
			for j := 0; j < 100; j++ {
				c.Set("key", id*100+j)
			}
			done <- true
		}(i)
	}

	// 5 goroutines reading
	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				c.Get("key")
			}
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	_, _ = c.Get("key")
}
