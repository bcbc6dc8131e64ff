package board

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/kajtavla/kajtavla/pkg/redis_client"
	"github.com/rs/zerolog/log"
)

// Cache shares rendered board documents between displays hitting the same
// refresh interval, so one computation serves them all.
type Cache struct {
	boardStore *cache.Cache[string]
	ttl        time.Duration
}

func NewCache(ttl time.Duration) *Cache {
	redisStore := redisstore.NewRedis(redis_client.Client, store.WithExpiration(ttl))

	return &Cache{
		boardStore: cache.New[string](redisStore),
		ttl:        ttl,
	}
}

// Key identifies one board computation: timetable version plus the minute
// it was generated for. Minute resolution matches the refresh interval.
func Key(version string, now time.Time) string {
	return fmt.Sprintf("board/%s/%s", version, now.Format("2006-01-02T15:04"))
}

func (boardCache *Cache) Get(ctx context.Context, key string) (*BoardDocument, bool) {
	value, err := boardCache.boardStore.Get(ctx, key)
	if err != nil {
		return nil, false
	}

	var document BoardDocument
	if err := json.Unmarshal([]byte(value), &document); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("Failed to decode cached board")
		return nil, false
	}

	return &document, true
}

func (boardCache *Cache) Put(ctx context.Context, key string, document *BoardDocument) {
	encoded, err := json.Marshal(document)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to encode board for caching")
		return
	}

	if err := boardCache.boardStore.Set(ctx, key, string(encoded), store.WithExpiration(boardCache.ttl)); err != nil {
		log.Debug().Err(err).Str("key", key).Msg("Failed to cache board")
	}
}
