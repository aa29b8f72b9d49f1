package idempotency

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// FailoverStore prefers the primary (Redis) store and falls back to the
// in-memory store when the primary errors, retrying the primary after a
// cool-down. Degrading to memory narrows replay protection to one process,
// which beats refusing settlements outright.
type FailoverStore struct {
	primary   Store
	fallback  Store
	logger    *zerolog.Logger
	isDown    atomic.Bool
	downSince atomic.Int64
}

func NewFailoverStore(primary, fallback Store, logger *zerolog.Logger) *FailoverStore {
	return &FailoverStore{primary: primary, fallback: fallback, logger: logger}
}

func (f *FailoverStore) Begin(ctx context.Context, key string) (bool, error) {
	if !f.isDown.Load() {
		ok, err := f.primary.Begin(ctx, key)
		if err == nil {
			return ok, nil
		}
		f.logger.Error().Err(err).Msg("primary idempotency store failed, falling back to memory")
		f.isDown.Store(true)
		f.downSince.Store(time.Now().UnixNano())
	} else if time.Since(time.Unix(0, f.downSince.Load())) > time.Minute {
		if ok, err := f.primary.Begin(ctx, key); err == nil {
			f.isDown.Store(false)
			return ok, nil
		}
		f.downSince.Store(time.Now().UnixNano())
	}

	return f.fallback.Begin(ctx, key)
}

func (f *FailoverStore) Release(ctx context.Context, key string) error {
	if !f.isDown.Load() {
		if err := f.primary.Release(ctx, key); err == nil {
			return nil
		}
	}
	return f.fallback.Release(ctx, key)
}
