package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"foodvoice/history-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	PopularityAllTimeKey = "popularity:alltime"
	dailyRetention       = 7 * 24 * time.Hour
)

const schema = `
CREATE TABLE IF NOT EXISTS order_history (
	id           TEXT PRIMARY KEY,
	uid          TEXT NOT NULL,
	restaurant   TEXT NOT NULL DEFAULT '',
	food_item    TEXT NOT NULL,
	status       TEXT NOT NULL,
	deep_link    TEXT NOT NULL DEFAULT '',
	tracking_url TEXT NOT NULL DEFAULT '',
	quick_order  BOOLEAN NOT NULL DEFAULT FALSE,
	ordered_at   TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS order_history_uid_ordered_at_idx ON order_history (uid, ordered_at DESC);
`

func PopularityDailyKey(day time.Time) string {
	return fmt.Sprintf("popularity:daily:%s", day.UTC().Format("2006-01-02"))
}

// Store keeps the order log in postgres and restaurant popularity in redis
// sorted sets.
type Store struct {
	db  *sql.DB
	rdb *redis.Client
	now func() time.Time
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		now: time.Now,
	}
}

func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create order_history: %w", err)
	}
	return nil
}

// SaveOrder inserts the event and reports whether it was new.
func (s *Store) SaveOrder(ctx context.Context, event domain.OrderEvent) (bool, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO order_history
			(id, uid, restaurant, food_item, status, deep_link, tracking_url, quick_order, ordered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING
	`, event.ID, event.UID, event.Restaurant, event.FoodItem, event.Status,
		event.DeepLink, event.TrackingURL, event.QuickOrder, event.Timestamp.UTC())
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *Store) UpdatePopularity(ctx context.Context, restaurant string, at time.Time) error {
	if at.IsZero() {
		at = s.now()
	}
	dailyKey := PopularityDailyKey(at)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZIncrBy(ctx, dailyKey, 1, restaurant)
		pipe.Expire(ctx, dailyKey, dailyRetention)
		pipe.ZIncrBy(ctx, PopularityAllTimeKey, 1, restaurant)
		return nil
	})
	return err
}

func (s *Store) ListUserOrders(ctx context.Context, uid string, limit int) ([]domain.OrderRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, uid, restaurant, food_item, status, deep_link, tracking_url, quick_order, ordered_at
		FROM order_history
		WHERE uid = $1
		ORDER BY ordered_at DESC
		LIMIT $2
	`, uid, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.OrderRecord{}
	for rows.Next() {
		var o domain.OrderRecord
		if err := rows.Scan(&o.ID, &o.UID, &o.Restaurant, &o.FoodItem, &o.Status,
			&o.DeepLink, &o.TrackingURL, &o.QuickOrder, &o.OrderedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *Store) TopRestaurants(ctx context.Context, period domain.Period, limit int) ([]domain.RestaurantPopularity, error) {
	key := PopularityAllTimeKey
	if period == domain.PeriodToday {
		key = PopularityDailyKey(s.now())
	}

	results, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	ranking := make([]domain.RestaurantPopularity, 0, len(results))
	for _, z := range results {
		name, ok := z.Member.(string)
		if !ok {
			continue
		}
		ranking = append(ranking, domain.RestaurantPopularity{Restaurant: name, Orders: z.Score})
	}
	return ranking, nil
}
