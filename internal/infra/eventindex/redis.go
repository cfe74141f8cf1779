package eventindex

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/4imn/Sadeqi-backend/internal/domain"
)

// DefaultPrayerKey is the sorted set holding all prayer events for all
// scopes for the current and following day.
const DefaultPrayerKey = "prayer:times:sorted"

// Redis implements domain.EventIndex on a Redis sorted set: member =
// scope:day:label, score = unix seconds. ZREM's removed-count return
// makes Remove atomic-and-exclusive, so two overlapping pollers cannot
// both win the same entry.
type Redis struct {
	client *redis.Client
	key    string
}

func NewRedis(client *redis.Client, key string) *Redis {
	if key == "" {
		key = DefaultPrayerKey
	}
	return &Redis{
		client: client,
		key:    key,
	}
}

func (r *Redis) Upsert(ctx context.Context, e domain.Event) error {
	member := e.Key().Member()
	return r.client.ZAdd(ctx, r.key, redis.Z{
		Score:  float64(e.Time.Unix()),
		Member: member,
	}).Err()
}

func (r *Redis) Range(ctx context.Context, from, to time.Time) ([]domain.Event, error) {
	zs, err := r.client.ZRangeByScoreWithScores(ctx, r.key, &redis.ZRangeBy{
		Min: strconv.FormatInt(from.Unix(), 10),
		Max: strconv.FormatInt(to.Unix(), 10),
	}).Result()
	if err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(zs))
	for _, z := range zs {
		member, ok := z.Member.(string)
		if !ok {
			continue
		}
		key, err := domain.ParseMember(member)
		if err != nil {
			// A malformed member cannot fire; skip it, eviction will
			// reclaim it.
			continue
		}
		events = append(events, domain.Event{
			Scope: key.Scope,
			Day:   key.Day,
			Label: key.Label,
			Time:  time.Unix(int64(z.Score), 0).UTC(),
		})
	}
	return events, nil
}

func (r *Redis) Remove(ctx context.Context, key domain.EventKey) (bool, error) {
	removed, err := r.client.ZRem(ctx, r.key, key.Member()).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}

func (r *Redis) EvictBefore(ctx context.Context, t time.Time) (int, error) {
	// Exclusive max: entries with score == t stay.
	evicted, err := r.client.ZRemRangeByScore(ctx, r.key, "-inf", "("+strconv.FormatInt(t.Unix(), 10)).Result()
	if err != nil {
		return 0, err
	}
	return int(evicted), nil
}
