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

	"marina-ops/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plaintext every fixture user logs in with.
const TestPassword = "password123"

var (
	testHashOnce sync.Once
	testHash     string
)

func testPasswordHash(t *testing.T) string {
	t.Helper()

	testHashOnce.Do(func() {
		h, err := password.HashPassword(TestPassword)
		require.NoError(t, err)
		testHash = h
	})
	return testHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO profiles (id, email, password_hash, full_name, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash(t), "Test "+role, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM profiles WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestBerth(t *testing.T, db DBLike, code string, createdBy uuid.UUID) uuid.UUID {
	t.Helper()

	berthID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		`INSERT INTO berths (id, code, lat, lng, length_m, width_m, depth_m, max_vessel_length_m, max_vessel_width_m, water, electricity, status, created_by)
		 VALUES ($1, $2, 43.2951, 5.3739, 12, 4.5, 3, 11, 4, true, true, 'active', $3)
		 ON CONFLICT (code) DO NOTHING`,
		berthID, code, createdBy)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM berths WHERE code = $1", code).Scan(&berthID)
	}

	return berthID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables so each test starts from an empty marina.
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

	return nil
}
