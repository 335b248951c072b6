package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"onutec/internal/registration/models"
	"onutec/pkg/platform/circuit"
)

const (
	defaultPrefix = "onutec:availability"
	generationKey = "gen"
)

// Redis shares the availability cache between replicas. Keys embed a
// generation counter; Invalidate bumps it so every replica misses at once
// and old entries expire on their own.
//
// Consecutive Redis failures open a breaker. While it is open reads are
// misses even when Redis answers, since an invalidation may have been lost;
// when it closes the generation is bumped before entries are trusted again.
type Redis struct {
	client  redis.Cmdable
	ttl     time.Duration
	prefix  string
	logger  *slog.Logger
	breaker *circuit.Breaker
}

// RedisOption configures a Redis cache.
type RedisOption func(*Redis)

// WithPrefix namespaces keys.
func WithPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

// WithLogger reports Redis failures. They are otherwise treated as misses.
func WithLogger(logger *slog.Logger) RedisOption {
	return func(r *Redis) {
		r.logger = logger
	}
}

// WithBreaker replaces the default breaker.
func WithBreaker(b *circuit.Breaker) RedisOption {
	return func(r *Redis) {
		r.breaker = b
	}
}

// NewRedis builds a Redis-backed cache whose entries live for ttl.
func NewRedis(client redis.Cmdable, ttl time.Duration, opts ...RedisOption) *Redis {
	r := &Redis{
		client:  client,
		ttl:     ttl,
		prefix:  defaultPrefix,
		logger:  slog.Default(),
		breaker: circuit.New("availability-cache"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Redis) GetCommittees(ctx context.Context, period models.Period) ([]models.AvailableCommittee, bool) {
	var out []models.AvailableCommittee
	ok := r.get(ctx, committeesKey(period), &out)
	return out, ok
}

func (r *Redis) SetCommittees(ctx context.Context, period models.Period, list []models.AvailableCommittee) {
	r.set(ctx, committeesKey(period), list)
}

func (r *Redis) GetSlots(ctx context.Context, committeeID uuid.UUID) ([]models.Slot, bool) {
	var out []models.Slot
	ok := r.get(ctx, slotsKey(committeeID), &out)
	return out, ok
}

func (r *Redis) SetSlots(ctx context.Context, committeeID uuid.UUID, list []models.Slot) {
	r.set(ctx, slotsKey(committeeID), list)
}

// Invalidate bumps the generation so all current entries stop matching.
func (r *Redis) Invalidate(ctx context.Context) {
	err := r.bump(ctx)
	r.record(ctx, err)
	if err != nil {
		r.logger.WarnContext(ctx, "availability cache invalidation failed", "error", err)
	}
}

func (r *Redis) bump(ctx context.Context) error {
	return r.client.Incr(ctx, r.prefix+":"+generationKey).Err()
}

// record feeds the breaker and reports whether Redis results can be used.
func (r *Redis) record(ctx context.Context, err error) bool {
	if err != nil {
		if _, change := r.breaker.RecordFailure(); change.Opened {
			r.logger.WarnContext(ctx, "availability cache degraded, serving from store", "error", err)
		}
		return false
	}
	usePrimary, change := r.breaker.RecordSuccess()
	if change.Closed {
		if err := r.bump(ctx); err != nil {
			r.breaker.RecordFailure()
			return false
		}
		r.logger.InfoContext(ctx, "availability cache recovered")
	}
	return usePrimary
}

func (r *Redis) key(ctx context.Context, name string) (string, error) {
	gen, err := r.client.Get(ctx, r.prefix+":"+generationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	return r.prefix + ":" + strconv.FormatInt(gen, 10) + ":" + name, nil
}

func (r *Redis) get(ctx context.Context, name string, dst any) bool {
	key, err := r.key(ctx, name)
	if !r.record(ctx, err) {
		return false
	}
	raw, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if !r.record(ctx, err) {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		r.logger.WarnContext(ctx, "availability cache entry corrupt", "key", key, "error", err)
		return false
	}
	return true
}

func (r *Redis) set(ctx context.Context, name string, v any) {
	key, err := r.key(ctx, name)
	if !r.record(ctx, err) {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	r.record(ctx, r.client.Set(ctx, key, raw, r.ttl).Err())
}
