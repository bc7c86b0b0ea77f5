package twincount

import (
	"context"

	"github.com/addisoncox/twincount/internal"
	"github.com/go-redis/redis/v9"
)

const RUN_RESULT_PREFIX = "twc:run:"

var ctx = context.Background()

// RedisReporter pushes run results onto a Redis list, newest first.
type RedisReporter struct {
	Client *redis.Client
	key    string
}

func NewRedisReporter(addr string, password string, db int, name string) *RedisReporter {
	return &RedisReporter{
		Client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		key: RUN_RESULT_PREFIX + name,
	}
}

func (r *RedisReporter) Key() string {
	return r.key
}

func (r *RedisReporter) Ping() error {
	return r.Client.Ping(ctx).Err()
}

func (r *RedisReporter) Report(result RunResult) error {
	return r.Client.LPush(ctx, r.key, result).Err()
}

// Results returns every stored result, newest first.
func (r *RedisReporter) Results() ([]RunResult, error) {
	items, err := r.Client.LRange(ctx, r.key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return internal.DecodeAll[RunResult](items)
}

func (r *RedisReporter) Len() (uint64, error) {
	return r.Client.LLen(ctx, r.key).Uint64()
}

func (r *RedisReporter) Reset() error {
	return r.Client.Del(ctx, r.key).Err()
}

func (r *RedisReporter) Close() error {
	return r.Client.Close()
}
