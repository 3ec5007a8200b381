package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestSelectionStore(t *testing.T) (SelectionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisSelectionStore(client, time.Hour), mr
}

func TestRedisSelectionStore_GetMissing(t *testing.T) {
	store, _ := newTestSelectionStore(t)

	sel, err := store.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel != nil {
		t.Errorf("expected nil selection, got %+v", sel)
	}
}

func TestRedisSelectionStore_PutGet(t *testing.T) {
	store, mr := newTestSelectionStore(t)
	ctx := context.Background()

	want := Selection{PriorityID: PriorityNoTime, Color: "#cc343e", TextColor: "#e8e9e9"}
	if err := store.Put(ctx, "tok-1", want); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, "tok-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || *got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}

	if ttl := mr.TTL(selectionKeyPrefix + "tok-1"); ttl != time.Hour {
		t.Errorf("expected 1h TTL, got %v", ttl)
	}
}

func TestRedisSelectionStore_Expires(t *testing.T) {
	store, mr := newTestSelectionStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "tok-2", DefaultSelection()); err != nil {
		t.Fatalf("put: %v", err)
	}
	mr.FastForward(2 * time.Hour)

	got, err := store.Get(ctx, "tok-2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("expected expired selection to be gone, got %+v", got)
	}
}

func TestRedisSelectionStore_SessionsAreIsolated(t *testing.T) {
	store, _ := newTestSelectionStore(t)
	ctx := context.Background()

	a := Select(Priority{ID: PriorityCertain, Color: "#008450"})
	b := Select(Priority{ID: PriorityUncertain, Color: "#efb700"})
	if err := store.Put(ctx, "a", a); err != nil {
		t.Fatalf("put a: %v", err)
	}
	if err := store.Put(ctx, "b", b); err != nil {
		t.Fatalf("put b: %v", err)
	}

	got, _ := store.Get(ctx, "a")
	if got == nil || got.PriorityID != PriorityCertain {
		t.Errorf("session a: expected certain, got %+v", got)
	}
}

func TestRedisSelectionStore_CorruptValue(t *testing.T) {
	store, mr := newTestSelectionStore(t)
	if err := mr.Set(selectionKeyPrefix+"bad", "{not json"); err != nil {
		t.Fatalf("seeding: %v", err)
	}
	if _, err := store.Get(context.Background(), "bad"); err == nil {
		t.Error("expected decode error for corrupt value")
	}
}
