package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tush00nka/phonebook_messenger/internal/model"

	"github.com/redis/go-redis/v9"
)

// ProfileCache хранит результаты поиска пользователя по телефону.
// Every Invalidate bumps the phone's version; Set only writes when the
// version read before loading the profile is still current.
type ProfileCache interface {
	Get(ctx context.Context, phone string) (*model.PublicProfile, error)
	Version(ctx context.Context, phone string) (int64, error)
	Set(ctx context.Context, profile model.PublicProfile, version int64) error
	Invalidate(ctx context.Context, phones ...string) error
}

var (
	// ErrCacheMiss is returned by Get when nothing is cached for the phone.
	ErrCacheMiss = errors.New("cache miss")
	// ErrStaleProfile is returned by Set when the phone was invalidated
	// after its version was read.
	ErrStaleProfile = errors.New("profile changed while loading")
)

type profileCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewProfileCache(rdb *redis.Client, ttl time.Duration) ProfileCache {
	return &profileCache{rdb: rdb, ttl: ttl}
}

func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return rdb, nil
}

func (c *profileCache) key(phone string) string {
	return fmt.Sprintf("profile:phone:%s", phone)
}

func (c *profileCache) versionKey(phone string) string {
	return fmt.Sprintf("profile:version:%s", phone)
}

func (c *profileCache) Version(ctx context.Context, phone string) (int64, error) {
	version, err := c.rdb.Get(ctx, c.versionKey(phone)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("failed to get profile version: %w", err)
	}
	return version, nil
}

func (c *profileCache) Get(ctx context.Context, phone string) (*model.PublicProfile, error) {
	data, err := c.rdb.Get(ctx, c.key(phone)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get profile from redis: %w", err)
	}

	var profile model.PublicProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

func (c *profileCache) Set(ctx context.Context, profile model.PublicProfile, version int64) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	versionKey := c.versionKey(profile.Phone)
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return ErrStaleProfile
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, c.key(profile.Phone), data, c.ttl)
			return nil
		})
		return err
	}, versionKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrStaleProfile), errors.Is(err, redis.TxFailedErr):
		return ErrStaleProfile
	default:
		return fmt.Errorf("failed to save profile to redis: %w", err)
	}
}

func (c *profileCache) Invalidate(ctx context.Context, phones ...string) error {
	if len(phones) == 0 {
		return nil
	}

	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, phone := range phones {
			pipe.Incr(ctx, c.versionKey(phone))
			pipe.Del(ctx, c.key(phone))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate profiles: %w", err)
	}

	return nil
}

// NopProfileCache is used when redis is not configured.
type NopProfileCache struct{}

func (NopProfileCache) Get(context.Context, string) (*model.PublicProfile, error) {
	return nil, ErrCacheMiss
}

func (NopProfileCache) Version(context.Context, string) (int64, error) { return 0, nil }

func (NopProfileCache) Set(context.Context, model.PublicProfile, int64) error { return nil }

func (NopProfileCache) Invalidate(context.Context, ...string) error { return nil }
