package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/fintracker/insights/internal/domain/entity"
)

func newTestCache(t *testing.T) *RedisResultCache {
	t.Helper()

	server, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisResultCache(client, time.Hour)
}

func TestRedisResultCacheCategory(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	if _, ok, err := cache.GetCategory(ctx, "Starbucks coffee"); err != nil || ok {
		t.Fatalf("GetCategory on empty cache = (ok=%v, err=%v), want miss", ok, err)
	}

	if err := cache.SetCategory(ctx, "Starbucks coffee", entity.CategoryFood); err != nil {
		t.Fatalf("SetCategory failed: %v", err)
	}

	category, ok, err := cache.GetCategory(ctx, "Starbucks coffee")
	if err != nil {
		t.Fatalf("GetCategory failed: %v", err)
	}
	if !ok || category != entity.CategoryFood {
		t.Errorf("GetCategory = (%q, %v), want (food, true)", category, ok)
	}
}

func TestRedisResultCacheKeyNormalization(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	if err := cache.SetCategory(ctx, "STARBUCKS Coffee", entity.CategoryFood); err != nil {
		t.Fatalf("SetCategory failed: %v", err)
	}

	// Lookups differing only in case and surrounding whitespace hit the
	// same entry.
	category, ok, err := cache.GetCategory(ctx, "  starbucks coffee ")
	if err != nil {
		t.Fatalf("GetCategory failed: %v", err)
	}
	if !ok || category != entity.CategoryFood {
		t.Errorf("GetCategory = (%q, %v), want (food, true)", category, ok)
	}
}

func TestRedisResultCacheMerchant(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	if _, ok, err := cache.GetMerchant(ctx, "AMZN Marketplace"); err != nil || ok {
		t.Fatalf("GetMerchant on empty cache = (ok=%v, err=%v), want miss", ok, err)
	}

	stored := &entity.MerchantInfo{
		Name:     "Amazon",
		Category: entity.CategoryShopping,
		Icon:     "🛍️",
	}
	if err := cache.SetMerchant(ctx, "AMZN Marketplace", stored); err != nil {
		t.Fatalf("SetMerchant failed: %v", err)
	}

	got, ok, err := cache.GetMerchant(ctx, "AMZN Marketplace")
	if err != nil {
		t.Fatalf("GetMerchant failed: %v", err)
	}
	if !ok {
		t.Fatal("GetMerchant = miss, want hit")
	}
	if got.Name != stored.Name || got.Category != stored.Category || got.Icon != stored.Icon {
		t.Errorf("GetMerchant = %+v, want %+v", got, stored)
	}
}

func TestRedisResultCacheSeparatesKeySpaces(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	if err := cache.SetCategory(ctx, "netflix", entity.CategoryEntertainment); err != nil {
		t.Fatalf("SetCategory failed: %v", err)
	}

	if _, ok, err := cache.GetMerchant(ctx, "netflix"); err != nil || ok {
		t.Errorf("GetMerchant = (ok=%v, err=%v), want miss for a category-only entry", ok, err)
	}
}
