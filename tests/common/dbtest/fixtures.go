//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const TestPassword = "password123"

var (
	testHashOnce     sync.Once
	testPasswordHash string
)

// hashed once per process, every fixture user shares the same password
func hashTestPassword(t *testing.T) string {
	t.Helper()
	testHashOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
		require.NoError(t, err)
		testPasswordHash = string(hash)
	})
	return testPasswordHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, name, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, "Test "+role, email, hashTestPassword(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestCategory(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	categoryID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO menu_categories (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING",
		categoryID, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM menu_categories WHERE name = $1", name).Scan(&categoryID)
	}

	return categoryID
}

func CreateTestMenuItem(t *testing.T, db DBLike, categoryID uuid.UUID, name string, priceCents int64) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO menu_items (id, category_id, name, price_cents, prep_time_min) VALUES ($1, $2, $3, $4, 10)",
		itemID, categoryID, name, priceCents)
	require.NoError(t, err)

	return itemID
}

func CreateTestSlot(t *testing.T, db DBLike, date time.Time, startTime, endTime string, maxOrders int32) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO time_slots (id, slot_date, start_time, end_time, max_orders) VALUES ($1, $2, $3, $4, $5)",
		slotID, date.Format("2006-01-02"), startTime, endTime, maxOrders)
	require.NoError(t, err)

	return slotID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO menu_categories (id, name, display_order) VALUES
		    (gen_random_uuid(), 'Mains', 1),
		    (gen_random_uuid(), 'Drinks', 2)
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
