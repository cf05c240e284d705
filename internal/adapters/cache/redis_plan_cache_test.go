package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testCache(t *testing.T) (*RedisPlanCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisPlanCache(client), srv
}

func TestPlanCacheMissThenHit(t *testing.T) {
	c, _ := testCache(t)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "plan:abc")
	if err != nil {
		t.Fatalf("get on empty cache: %v", err)
	}
	if ok {
		t.Fatal("expected miss on empty cache")
	}

	payload := []byte(`{"route":["India","Thailand","India"]}`)
	if err := c.Put(ctx, "plan:abc", payload, time.Minute); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := c.Get(ctx, "plan:abc")
	if err != nil {
		t.Fatalf("get after put: %v", err)
	}
	if !ok {
		t.Fatal("expected hit after put")
	}
	if string(got) != string(payload) {
		t.Fatalf("payload = %q, want %q", got, payload)
	}
}

func TestPlanCacheExpiry(t *testing.T) {
	c, srv := testCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "plan:ttl", []byte("x"), time.Second); err != nil {
		t.Fatalf("put: %v", err)
	}

	srv.FastForward(2 * time.Second)

	_, ok, err := c.Get(ctx, "plan:ttl")
	if err != nil {
		t.Fatalf("get after expiry: %v", err)
	}
	if ok {
		t.Fatal("expected miss after TTL elapsed")
	}
}
