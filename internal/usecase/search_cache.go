package usecase

import (
	"context"
	"time"
)

// RankingCache is satisfied by the Redis cache; a nil RankingCache disables
// caching.
type RankingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}
