package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/studyspot/seat-booking/internal/model"
	"github.com/studyspot/seat-booking/internal/repository"
)

// settingTTL bounds how stale a cached setting value may be.
const settingTTL = 5 * time.Minute

// maintenanceTimeout caps the maintenance-mode lookup so a slow
// database cannot stall the public site; on timeout the site is
// treated as open.
const maintenanceTimeout = 5 * time.Second

type cachedSetting struct {
	value   string
	expires time.Time
}

// SettingsService reads and writes the key/value settings table
// with a two-level cache: a shared Redis entry when a client is
// configured, fronted by an in-process map. Writes invalidate both
// levels.
type SettingsService struct {
	store SettingStore
	rdb   *redis.Client // nil disables the shared layer

	mu    sync.Mutex
	local map[string]cachedSetting
	now   func() time.Time
}

// NewSettingsService constructs a SettingsService. rdb may be nil.
func NewSettingsService(store SettingStore, rdb *redis.Client) *SettingsService {
	if store == nil {
		panic("nil store passed to NewSettingsService")
	}
	return &SettingsService{
		store: store,
		rdb:   rdb,
		local: make(map[string]cachedSetting),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func settingCacheKey(key string) string { return "setting:" + key }

// Get returns a setting value, serving from cache when fresh.
// repository.ErrSettingNotFound surfaces unchanged for keys never
// written.
func (s *SettingsService) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	if c, ok := s.local[key]; ok && s.now().Before(c.expires) {
		s.mu.Unlock()
		return c.value, nil
	}
	s.mu.Unlock()

	if s.rdb != nil {
		if v, err := s.rdb.Get(ctx, settingCacheKey(key)).Result(); err == nil {
			s.remember(key, v)
			return v, nil
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("settings: redis read for %q failed: %v", key, err)
		}
	}

	v, err := s.store.Get(ctx, key)
	if err != nil {
		return "", err
	}
	s.remember(key, v)
	if s.rdb != nil {
		if err := s.rdb.Set(ctx, settingCacheKey(key), v, settingTTL).Err(); err != nil {
			log.Printf("settings: redis write for %q failed: %v", key, err)
		}
	}
	return v, nil
}

// Set writes a setting and drops it from both cache levels.
func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("%w: setting key is required", ErrValidation)
	}
	if err := s.store.Upsert(ctx, key, value); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.local, key)
	s.mu.Unlock()
	if s.rdb != nil {
		if err := s.rdb.Del(ctx, settingCacheKey(key)).Err(); err != nil {
			log.Printf("settings: redis invalidate for %q failed: %v", key, err)
		}
	}
	return nil
}

// MaintenanceMode reports whether the public site is closed. Any
// lookup failure, including an unset key or a timeout, reads as
// open so settings trouble never locks customers out.
func (s *SettingsService) MaintenanceMode(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, maintenanceTimeout)
	defer cancel()
	v, err := s.Get(ctx, model.SettingMaintenanceMode)
	if err != nil {
		if !errors.Is(err, repository.ErrSettingNotFound) {
			log.Printf("settings: maintenance lookup failed, assuming open: %v", err)
		}
		return false
	}
	return v == "true"
}

func (s *SettingsService) remember(key, value string) {
	s.mu.Lock()
	s.local[key] = cachedSetting{value: value, expires: s.now().Add(settingTTL)}
	s.mu.Unlock()
}
