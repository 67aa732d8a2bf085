package cache

import (
	"context"
	"testing"
	"time"

	dom "todoapi/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T, ttl time.Duration) (*TodoCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewTodoCache(rdb, ttl), mr
}

func TestGetListMiss(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	list, err := c.GetList(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetList: %v", err)
	}
	if list != nil {
		t.Errorf("GetList on empty cache: got %+v, want nil", list)
	}
}

func TestSetAndGetList(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	want := []dom.Todo{
		{ID: 1, OwnerID: 1, Task: "buy milk"},
		{ID: 2, OwnerID: 1, Task: "buy bread", Done: true},
	}
	if err := c.SetList(ctx, 1, want); err != nil {
		t.Fatalf("SetList: %v", err)
	}

	got, err := c.GetList(ctx, 1)
	if err != nil {
		t.Fatalf("GetList: %v", err)
	}
	if len(got) != 2 || got[0].Task != "buy milk" || got[1].Task != "buy bread" || !got[1].Done {
		t.Errorf("GetList: got %+v, want %+v", got, want)
	}

	// Keys are per owner; another owner still misses.
	other, err := c.GetList(ctx, 2)
	if err != nil {
		t.Fatalf("GetList other owner: %v", err)
	}
	if other != nil {
		t.Errorf("GetList other owner: got %+v, want nil", other)
	}
}

func TestInvalidateList(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	if err := c.SetList(ctx, 1, []dom.Todo{{ID: 1, OwnerID: 1, Task: "buy milk"}}); err != nil {
		t.Fatalf("SetList owner 1: %v", err)
	}
	if err := c.SetList(ctx, 2, []dom.Todo{{ID: 2, OwnerID: 2, Task: "theirs"}}); err != nil {
		t.Fatalf("SetList owner 2: %v", err)
	}

	if err := c.InvalidateList(ctx, 1); err != nil {
		t.Fatalf("InvalidateList: %v", err)
	}
	if list, _ := c.GetList(ctx, 1); list != nil {
		t.Errorf("GetList after invalidate: got %+v, want nil", list)
	}
	// Invalidation only touches that owner's key.
	if list, _ := c.GetList(ctx, 2); len(list) != 1 {
		t.Errorf("GetList owner 2 after invalidating owner 1: got %+v", list)
	}
}

func TestListExpires(t *testing.T) {
	c, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	if err := c.SetList(ctx, 1, []dom.Todo{{ID: 1, Task: "buy milk"}}); err != nil {
		t.Fatalf("SetList: %v", err)
	}
	mr.FastForward(time.Minute + time.Second)

	if list, _ := c.GetList(ctx, 1); list != nil {
		t.Errorf("GetList after TTL: got %+v, want nil", list)
	}
}
