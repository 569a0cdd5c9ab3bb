package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestHelper(t *testing.T, prefix string) (*CacheHelper, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCacheHelper(client, prefix), mr
}

func TestCacheHelper_SetGet(t *testing.T) {
	helper, _ := newTestHelper(t, "opportunity:")
	ctx := context.Background()

	type payload struct {
		Title string `json:"title"`
		Score int    `json:"score"`
	}

	if err := helper.Set(ctx, "id:1", payload{Title: "Backend Intern", Score: 67}, time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var got payload
	if err := helper.Get(ctx, "id:1", &got); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "Backend Intern" || got.Score != 67 {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestCacheHelper_GetMissReturnsNotFound(t *testing.T) {
	helper, _ := newTestHelper(t, "recommendation:")

	var dest map[string]string
	if err := helper.Get(context.Background(), "missing", &dest); err != ErrCacheNotFound {
		t.Errorf("expected ErrCacheNotFound, got %v", err)
	}
}

func TestCacheHelper_Expiry(t *testing.T) {
	helper, mr := newTestHelper(t, "fast:")
	ctx := context.Background()

	if err := helper.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	var dest string
	if err := helper.Get(ctx, "k", &dest); err != ErrCacheNotFound {
		t.Errorf("expected expiry to evict key, got %v", err)
	}
}

func TestCacheHelper_InvalidatePattern(t *testing.T) {
	helper, _ := newTestHelper(t, "recommendation:")
	ctx := context.Background()

	for _, key := range []string{"projects:u1", "skills:u1", "projects:u2"} {
		if err := helper.Set(ctx, key, "x", time.Minute); err != nil {
			t.Fatalf("Set(%s) failed: %v", key, err)
		}
	}

	if err := helper.InvalidatePattern(ctx, "*:u1"); err != nil {
		t.Fatalf("InvalidatePattern failed: %v", err)
	}

	var dest string
	if err := helper.Get(ctx, "projects:u1", &dest); err != ErrCacheNotFound {
		t.Errorf("u1 keys should be gone, got %v", err)
	}
	if err := helper.Get(ctx, "projects:u2", &dest); err != nil {
		t.Errorf("u2 keys should survive, got %v", err)
	}
}

func TestCacheHelper_NilClientDegradesGracefully(t *testing.T) {
	helper := NewCacheHelper(nil, "opportunity:")
	ctx := context.Background()

	if err := helper.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Errorf("Set with nil client should be a no-op, got %v", err)
	}

	var dest string
	if err := helper.Get(ctx, "k", &dest); err != ErrCacheNotAvailable {
		t.Errorf("expected ErrCacheNotAvailable, got %v", err)
	}

	if err := helper.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete with nil client should be a no-op, got %v", err)
	}
}

func TestCacheManager_NilClient(t *testing.T) {
	cm := NewCacheManager(nil)

	if err := cm.HealthCheck(context.Background()); err != ErrCacheNotAvailable {
		t.Errorf("expected ErrCacheNotAvailable, got %v", err)
	}
}
