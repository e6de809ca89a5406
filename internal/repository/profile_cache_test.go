package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tush00nka/phonebook_messenger/internal/model"
	"tush00nka/phonebook_messenger/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (repository.ProfileCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return repository.NewProfileCache(rdb, time.Minute), mr
}

func TestProfileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	if _, err := cache.Get(ctx, "+1"); !errors.Is(err, repository.ErrCacheMiss) {
		t.Fatalf("Get(empty) error = %v, want ErrCacheMiss", err)
	}

	name := "Alice"
	profile := model.PublicProfile{ID: 7, Phone: "+1", Name: &name}
	if err := cache.Set(ctx, profile, 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if ttl := mr.TTL("profile:phone:+1"); ttl != time.Minute {
		t.Errorf("TTL = %v, want 1m", ttl)
	}

	got, err := cache.Get(ctx, "+1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != 7 || got.Name == nil || *got.Name != "Alice" {
		t.Errorf("Get() = %+v", got)
	}

	if err := cache.Invalidate(ctx, "+1", "+2"); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}
	if _, err := cache.Get(ctx, "+1"); !errors.Is(err, repository.ErrCacheMiss) {
		t.Errorf("Get(after invalidate) error = %v, want ErrCacheMiss", err)
	}
}

func TestProfileCacheExpires(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	if err := cache.Set(ctx, model.PublicProfile{ID: 1, Phone: "+1"}, 0); err != nil {
		t.Fatal(err)
	}
	mr.FastForward(2 * time.Minute)

	if _, err := cache.Get(ctx, "+1"); !errors.Is(err, repository.ErrCacheMiss) {
		t.Errorf("Get(expired) error = %v, want ErrCacheMiss", err)
	}
}

func TestProfileCacheRejectsStaleWrite(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	version, err := cache.Version(ctx, "+1")
	if err != nil {
		t.Fatal(err)
	}
	if err := cache.Invalidate(ctx, "+1"); err != nil {
		t.Fatal(err)
	}

	if err := cache.Set(ctx, model.PublicProfile{ID: 1, Phone: "+1"}, version); !errors.Is(err, repository.ErrStaleProfile) {
		t.Fatalf("Set(old version) error = %v, want ErrStaleProfile", err)
	}
	if _, err := cache.Get(ctx, "+1"); !errors.Is(err, repository.ErrCacheMiss) {
		t.Errorf("Get() after stale write error = %v, want ErrCacheMiss", err)
	}

	current, err := cache.Version(ctx, "+1")
	if err != nil {
		t.Fatal(err)
	}
	if current != version+1 {
		t.Errorf("Version() = %d, want %d", current, version+1)
	}
	if err := cache.Set(ctx, model.PublicProfile{ID: 1, Phone: "+1"}, current); err != nil {
		t.Errorf("Set(current version) error = %v", err)
	}
}
