package cache

import (
	"testing"
	"time"
)

func TestFactory_New_Memory(t *testing.T) {
	c, err := New("memory", ProviderConfig{Size: 100, TTL: time.Hour})
	if err != nil {
		t.Fatalf("New memory: %v", err)
	}
	defer c.Close()

	c.Set("https://api.tvmaze.com/shows/1/episodes", []byte("[]"))
	val, ok := c.Get("https://api.tvmaze.com/shows/1/episodes")
	if !ok || string(val) != "[]" {
		t.Fatal("Memory cache should work after creation via factory")
	}
}

func TestFactory_New_EmptyNameIsNone(t *testing.T) {
	c, err := New("", ProviderConfig{})
	if err != nil {
		t.Fatalf("New with empty name: %v", err)
	}
	defer c.Close()

	c.Set("k", []byte("v"))
	if _, ok := c.Get("k"); ok {
		t.Fatal("Expected the none provider to never return a hit")
	}
	if c.Len() != 0 {
		t.Fatalf("Expected Len 0, got %d", c.Len())
	}
}

func TestFactory_New_UnknownProvider(t *testing.T) {
	_, err := New("nonexistent", ProviderConfig{})
	if err == nil {
		t.Fatal("Expected error for unknown provider")
	}
}

func TestFactory_RegisteredProviders(t *testing.T) {
	names := RegisteredProviders()

	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	for _, want := range []string{"memory", "none", "redis"} {
		if !found[want] {
			t.Errorf("Expected %q provider to be registered, got %v", want, names)
		}
	}

	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("Providers not sorted: %v", names)
			break
		}
	}
}

func TestFactory_Register_Duplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic when registering a duplicate provider")
		}
	}()
	Register("memory", newMemoryCache)
}

func TestFactory_New_Redis_InvalidAddress(t *testing.T) {
	_, err := New("redis", ProviderConfig{
		TTL:          time.Hour,
		RedisAddress: "localhost:59999", // unlikely to have Redis here
	})
	if err == nil {
		t.Fatal("Expected error when connecting to invalid Redis address")
	}
}
