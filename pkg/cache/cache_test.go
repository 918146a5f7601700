package cache

import (
	"context"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	ctx := context.Background()

	if _, ok, _ := c.Get(ctx, "missing"); ok {
		t.Error("Get() on empty cache should miss")
	}

	if err := c.Set(ctx, "k", []byte("artifact bytes"), 0); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	data, ok, err := c.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v; want hit", ok, err)
	}
	if string(data) != "artifact bytes" {
		t.Errorf("Get() = %q, want %q", data, "artifact bytes")
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("Get() after Delete() should miss")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), -time.Second); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("expired entry should be a miss")
	}
}

func TestFileCacheDeleteMissing(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	if err := c.Delete(context.Background(), "never-set"); err != nil {
		t.Errorf("Delete() on absent key = %v, want nil", err)
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("NullCache must never store anything")
	}
}

func TestArtifactKey(t *testing.T) {
	type opts struct{ Scale float64 }

	a := ArtifactKey("abc", "png", opts{Scale: 50})
	b := ArtifactKey("abc", "png", opts{Scale: 50})
	if a != b {
		t.Error("identical inputs must produce identical keys")
	}

	if ArtifactKey("abc", "svg", opts{Scale: 50}) == a {
		t.Error("format must be part of the key")
	}
	if ArtifactKey("def", "png", opts{Scale: 50}) == a {
		t.Error("content hash must be part of the key")
	}
	if ArtifactKey("abc", "png", opts{Scale: 25}) == a {
		t.Error("options must be part of the key")
	}
}
