package leaderboard

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const redisKey = "casino:leaderboard"

// RedisStore keeps the ranking in a sorted set so it survives restarts and
// is shared across instances.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{rdb: redis.NewClient(&redis.Options{Addr: addr})}
}

func (s *RedisStore) Record(ctx context.Context, playerID string, profit int64) error {
	return s.rdb.ZIncrBy(ctx, redisKey, float64(profit), playerID).Err()
}

func (s *RedisStore) Top(ctx context.Context, n int) ([]Entry, error) {
	members, err := s.rdb.ZRevRangeWithScores(ctx, redisKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(members))
	for _, m := range members {
		id, _ := m.Member.(string)
		entries = append(entries, Entry{PlayerID: id, Profit: int64(m.Score)})
	}
	return entries, nil
}
