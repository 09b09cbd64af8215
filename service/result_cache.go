package service

import (
	"context"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"fincalc/repository"
)

// resultCache memoizes simulator output keyed by a hash of the input.
// Failures are logged and fall through to a fresh computation.
type resultCache struct {
	repo repository.CacheRepository
	log  zerolog.Logger
}

func newResultCache(repo repository.CacheRepository, log zerolog.Logger) *resultCache {
	return &resultCache{repo: repo, log: log}
}

func cacheKey(kind string, input any) (string, error) {
	raw, err := msgpack.Marshal(input)
	if err != nil {
		return "", err
	}
	return "fincalc:" + kind + ":" + strconv.FormatUint(xxhash.Sum64(raw), 16), nil
}

// cached returns the stored result for input or computes and stores it.
// Validation must happen before this call so errors are never cached.
func cached[In, Out any](
	ctx context.Context,
	c *resultCache,
	kind string,
	input In,
	compute func(In) (Out, error),
) (Out, error) {
	if c == nil || c.repo == nil {
		return compute(input)
	}

	key, err := cacheKey(kind, input)
	if err != nil {
		c.log.Warn().Err(err).Str("kind", kind).Msg("Failed to build cache key")
		return compute(input)
	}

	if raw, ok := c.repo.Get(ctx, key); ok {
		var out Out
		err := msgpack.Unmarshal([]byte(raw), &out)
		if err == nil {
			c.log.Debug().Str("kind", kind).Str("key", key).Msg("Cache hit")
			return out, nil
		}
		c.log.Warn().Err(err).Str("key", key).Msg("Discarding undecodable cache entry")
	}

	out, err := compute(input)
	if err != nil {
		return out, err
	}

	raw, err := msgpack.Marshal(out)
	if err != nil {
		c.log.Warn().Err(err).Str("kind", kind).Msg("Failed to encode result for cache")
		return out, nil
	}
	if err := c.repo.Set(ctx, key, string(raw)); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("Failed to cache result")
	}
	return out, nil
}
