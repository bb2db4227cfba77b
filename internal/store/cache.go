package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"certgen/api-gateway/models"
)

// deletedMarker is stored under a template key once the template is deleted.
// It is never valid JSON for a template.
const deletedMarker = "deleted"

// CachedStore keeps single-template reads in Redis. Templates are immutable,
// so the only invalidation needed is on delete. Redis faults are logged and
// the call falls through to the wrapped store.
//
// A delete overwrites the key with deletedMarker and reads only populate with
// SETNX, so a read that raced the delete cannot write the template back.
type CachedStore struct {
	Store
	rdb    redis.UniversalClient
	ttl    time.Duration
	logger *logrus.Logger
}

// NewCachedStore wraps inner with a Redis read-through cache.
func NewCachedStore(inner Store, rdb redis.UniversalClient, ttl time.Duration, logger *logrus.Logger) *CachedStore {
	return &CachedStore{Store: inner, rdb: rdb, ttl: ttl, logger: logger}
}

func templateKey(id string) string {
	return "template:" + id
}

func (s *CachedStore) GetTemplate(ctx context.Context, id string) (models.Template, error) {
	key := templateKey(id)

	cached, err := s.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if string(cached) == deletedMarker {
			return models.Template{}, ErrRecordNotFound
		}
		var t models.Template
		jsonErr := json.Unmarshal(cached, &t)
		if jsonErr == nil {
			return t, nil
		}
		s.logger.WithField("key", key).Warnf("Discarding undecodable cache entry: %v", jsonErr)
		if err := s.rdb.Del(ctx, key).Err(); err != nil {
			s.logger.WithField("key", key).Warnf("Template cache eviction failed: %v", err)
		}
	case !errors.Is(err, redis.Nil):
		s.logger.WithField("key", key).Warnf("Template cache read failed: %v", err)
	}

	t, err := s.Store.GetTemplate(ctx, id)
	if err != nil {
		return models.Template{}, err
	}

	if payload, err := json.Marshal(t); err == nil {
		if err := s.rdb.SetNX(ctx, key, payload, s.ttl).Err(); err != nil {
			s.logger.WithField("key", key).Warnf("Template cache write failed: %v", err)
		}
	}
	return t, nil
}

func (s *CachedStore) DeleteTemplate(ctx context.Context, id string) error {
	if err := s.Store.DeleteTemplate(ctx, id); err != nil {
		return err
	}
	key := templateKey(id)
	if err := s.rdb.Set(ctx, key, deletedMarker, s.ttl).Err(); err != nil {
		s.logger.WithField("key", key).Warnf("Template cache eviction failed: %v", err)
	}
	return nil
}

// Ping reports the wrapped store's health. An unreachable Redis only degrades
// caching, so it is logged rather than returned.
func (s *CachedStore) Ping(ctx context.Context) error {
	if err := s.Store.Ping(ctx); err != nil {
		return err
	}
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		s.logger.Warnf("Template cache unreachable: %v", err)
	}
	return nil
}

// Close closes the Redis client and then the wrapped store.
func (s *CachedStore) Close() error {
	return errors.Join(s.rdb.Close(), s.Store.Close())
}
