package exam

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gokatarajesh/exam-assembler/internal/selection"
)

const defaultCacheTTL = 10 * time.Minute

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Cache stores engine results in Redis. Results are deterministic for a given
// request, inventory and engine configuration, so all three form the key.
type Cache struct {
	client redisKV
	ttl    time.Duration
	scope  string
}

var _ ResultCache = (*Cache)(nil)

// NewCache builds a cache; scope should change whenever engine options change.
func NewCache(client redisKV, ttl time.Duration, scope string) *Cache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Cache{client: client, ttl: ttl, scope: digest(scope)[:12]}
}

func (c *Cache) key(req selection.Request, fingerprint string) string {
	return strings.Join([]string{
		"selection",
		c.scope,
		fingerprint,
		strconv.Itoa(req.TargetMarks),
		selection.NormalizeTag(req.Filter.Tag),
	}, ":")
}

func (c *Cache) Get(ctx context.Context, req selection.Request, fingerprint string) (*selection.Result, error) {
	data, err := c.client.Get(ctx, c.key(req, fingerprint)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var res selection.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("decode cached result: %w", err)
	}
	return &res, nil
}

func (c *Cache) Set(ctx context.Context, req selection.Request, fingerprint string, res selection.Result) error {
	data, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(req, fingerprint), data, c.ttl).Err()
}

// Fingerprint hashes the fields of an inventory that affect selection.
func Fingerprint(inventory []selection.Question) string {
	sorted := slices.Clone(inventory)
	slices.SortStableFunc(sorted, func(a, b selection.Question) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	var b strings.Builder
	for _, q := range sorted {
		fmt.Fprintf(&b, "%d|%d|%s|%s|%s\n", q.ID, q.Marks, q.Difficulty, q.Status, strings.Join(q.Tags, ","))
	}
	return digest(b.String())
}

func digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
