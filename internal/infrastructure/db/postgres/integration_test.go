//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/baechuer/board-service/internal/config"
	"github.com/baechuer/board-service/internal/domain"
	"github.com/baechuer/board-service/internal/infrastructure/db/migrations"
)

// Runs against a real Postgres: go test -tags=integration ./internal/infrastructure/db/postgres/
func TestIntegration_Repos(t *testing.T) {
	ctx := context.Background()

	pg, err := tcpostgres.Run(ctx, "postgres:17",
		tcpostgres.WithDatabase("boards"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pg.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, migrations.Up(dsn))
	// second run is a no-op
	require.NoError(t, migrations.Up(dsn))

	db, err := config.NewDB(dsn, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	users := NewUserRepo(db)
	boards := NewBoardRepo(db)

	t.Run("users", func(t *testing.T) {
		created, err := users.Create(ctx, domain.User{
			Email: "leo@example.com", PasswordHash: "$2a$hash", DisplayName: "Leo",
		})
		require.NoError(t, err)
		assert.Positive(t, created.ID)
		assert.Equal(t, domain.RoleUser, created.Role)
		assert.False(t, created.CreatedAt.IsZero())

		_, err = users.Create(ctx, domain.User{
			Email: "leo@example.com", PasswordHash: "$2a$other", DisplayName: "Leo2",
		})
		assert.True(t, domain.Is(err, domain.CodeEmailAlreadyExists), "got %v", err)

		exists, err := users.ExistsByEmail(ctx, "leo@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		got, err := users.GetByEmail(ctx, "leo@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)

		_, err = users.GetByEmail(ctx, "ghost@example.com")
		assert.True(t, domain.Is(err, domain.CodeUserNotFound))
	})

	t.Run("boards", func(t *testing.T) {
		require.NoError(t, SeedBoards(ctx, boards))
		require.NoError(t, SeedBoards(ctx, boards))

		_, err := boards.Insert(ctx, domain.Board{Name: "50% off_deals", Description: "sales"})
		require.NoError(t, err)

		items, total, err := boards.List(ctx, "", 20, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, items, 3)
		assert.Less(t, items[0].ID, items[1].ID)

		items, total, err = boards.List(ctx, "NOT", 20, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "Notice", items[0].Name)

		_, total, err = boards.List(ctx, "%", 20, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total, "wildcards in the keyword match literally")

		items, total, err = boards.List(ctx, "", 1, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, items, 1)
		assert.Equal(t, "Free", items[0].Name)
	})
}
