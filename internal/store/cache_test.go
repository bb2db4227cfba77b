package store_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"certgen/api-gateway/internal/store"
	"certgen/api-gateway/models"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, rdb
}

// pausingStore holds the first GetTemplate call between the inner fetch and
// its return until resume is closed.
type pausingStore struct {
	store.Store
	once    sync.Once
	fetched chan struct{}
	resume  chan struct{}
}

func (p *pausingStore) GetTemplate(ctx context.Context, id string) (models.Template, error) {
	t, err := p.Store.GetTemplate(ctx, id)
	p.once.Do(func() {
		close(p.fetched)
		<-p.resume
	})
	return t, err
}

func TestCachedStoreFallsBackWhenRedisIsDown(t *testing.T) {
	inner := newGormStore(t)
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	st := store.NewCachedStore(inner, rdb, time.Minute, quietLogger())
	ctx := context.Background()
	tmpl := sampleTemplate("Cached")

	if _, err := st.CreateTemplate(ctx, tmpl); err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := st.GetTemplate(ctx, tmpl.ID)
	if err != nil {
		t.Fatalf("get with redis down: %v", err)
	}
	assertSameTemplate(t, got, tmpl)

	if err := st.DeleteTemplate(ctx, tmpl.ID); err != nil {
		t.Fatalf("delete with redis down: %v", err)
	}
	if _, err := st.GetTemplate(ctx, tmpl.ID); !errors.Is(err, store.ErrRecordNotFound) {
		t.Errorf("get after delete: got %v, want ErrRecordNotFound", err)
	}
	if err := st.Ping(ctx); err != nil {
		t.Errorf("ping with redis down: got %v, want nil", err)
	}
}

func TestCachedStoreServesFromCache(t *testing.T) {
	mr, rdb := newMiniredis(t)
	inner := newGormStore(t)
	st := store.NewCachedStore(inner, rdb, time.Minute, quietLogger())
	ctx := context.Background()
	tmpl := sampleTemplate("Cached")
	key := "template:" + tmpl.ID

	if _, err := st.CreateTemplate(ctx, tmpl); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := st.GetTemplate(ctx, tmpl.ID); err != nil {
		t.Fatalf("get: %v", err)
	}
	if !mr.Exists(key) {
		t.Fatal("cache entry missing after get")
	}
	if ttl := mr.TTL(key); ttl <= 0 || ttl > time.Minute {
		t.Errorf("cache ttl: got %v", ttl)
	}

	// Remove the row behind the cache's back; the cached copy must still serve.
	if err := inner.DeleteTemplate(ctx, tmpl.ID); err != nil {
		t.Fatalf("inner delete: %v", err)
	}
	got, err := st.GetTemplate(ctx, tmpl.ID)
	if err != nil {
		t.Fatalf("cached get: %v", err)
	}
	assertSameTemplate(t, got, tmpl)

	if err := st.Ping(ctx); err != nil {
		t.Errorf("ping: %v", err)
	}
}

func TestCachedStoreDeleteHidesTemplate(t *testing.T) {
	mr, rdb := newMiniredis(t)
	inner := newGormStore(t)
	st := store.NewCachedStore(inner, rdb, time.Minute, quietLogger())
	ctx := context.Background()
	tmpl := sampleTemplate("Cached")

	if _, err := st.CreateTemplate(ctx, tmpl); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := st.GetTemplate(ctx, tmpl.ID); err != nil {
		t.Fatalf("get: %v", err)
	}
	if err := st.DeleteTemplate(ctx, tmpl.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.GetTemplate(ctx, tmpl.ID); !errors.Is(err, store.ErrRecordNotFound) {
		t.Errorf("get after delete: got %v, want ErrRecordNotFound", err)
	}
	if err := st.DeleteTemplate(ctx, tmpl.ID); !errors.Is(err, store.ErrRecordNotFound) {
		t.Errorf("second delete: got %v, want ErrRecordNotFound", err)
	}

	mr.FastForward(2 * time.Minute)
	if _, err := st.GetTemplate(ctx, tmpl.ID); !errors.Is(err, store.ErrRecordNotFound) {
		t.Errorf("get after marker expiry: got %v, want ErrRecordNotFound", err)
	}
}

func TestCachedStoreReadRacingDelete(t *testing.T) {
	_, rdb := newMiniredis(t)
	inner := &pausingStore{
		Store:   newGormStore(t),
		fetched: make(chan struct{}),
		resume:  make(chan struct{}),
	}
	st := store.NewCachedStore(inner, rdb, time.Minute, quietLogger())
	ctx := context.Background()
	tmpl := sampleTemplate("Racy")

	if _, err := st.CreateTemplate(ctx, tmpl); err != nil {
		t.Fatalf("create: %v", err)
	}

	readDone := make(chan error, 1)
	go func() {
		_, err := st.GetTemplate(ctx, tmpl.ID)
		readDone <- err
	}()

	<-inner.fetched
	if err := st.DeleteTemplate(ctx, tmpl.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	close(inner.resume)
	if err := <-readDone; err != nil {
		t.Fatalf("racing read: %v", err)
	}

	if got, err := st.GetTemplate(ctx, tmpl.ID); !errors.Is(err, store.ErrRecordNotFound) {
		t.Errorf("get after delete: got %s err=%v, want ErrRecordNotFound", got.ID, err)
	}
}

func TestCachedStoreDropsUndecodableEntry(t *testing.T) {
	mr, rdb := newMiniredis(t)
	inner := newGormStore(t)
	st := store.NewCachedStore(inner, rdb, time.Minute, quietLogger())
	ctx := context.Background()
	tmpl := sampleTemplate("Cached")
	key := "template:" + tmpl.ID

	if _, err := st.CreateTemplate(ctx, tmpl); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := mr.Set(key, "{not json"); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	got, err := st.GetTemplate(ctx, tmpl.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	assertSameTemplate(t, got, tmpl)

	// The bad entry is replaced on the next read.
	if _, err := st.GetTemplate(ctx, tmpl.ID); err != nil {
		t.Fatalf("second get: %v", err)
	}
	if v, _ := mr.Get(key); v == "{not json" {
		t.Error("undecodable entry was not replaced")
	}
}
