package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"catalog/internal/domain/entity"
	"catalog/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type capturedStatement struct {
	sql  string
	vars []any
}

// newDryRunDB builds statements without a server and records each one.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]capturedStatement) {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=catalog dbname=catalog sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	var statements []capturedStatement
	capture := func(tx *gorm.DB) {
		statements = append(statements, capturedStatement{
			sql:  tx.Statement.SQL.String(),
			vars: append([]any(nil), tx.Statement.Vars...),
		})
	}

	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_query", capture))
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture_create", capture))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:capture_update", capture))

	return db, &statements
}

func lastStatement(t *testing.T, statements *[]capturedStatement) capturedStatement {
	t.Helper()
	require.NotEmpty(t, *statements)

	return (*statements)[len(*statements)-1]
}

func TestCredentialRepository_FindByUsernameStatement(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewCredentialRepository(db)

	_, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)

	stmt := lastStatement(t, statements)
	assert.Contains(t, stmt.sql, `FROM "credentials"`)
	assert.Contains(t, stmt.sql, `"username" = $1`)
	assert.Equal(t, "alice", stmt.vars[0])
}

func TestCredentialRepository_ExistsByUsernameStatement(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewCredentialRepository(db)

	exists, err := repo.ExistsByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.False(t, exists)

	stmt := lastStatement(t, statements)
	assert.Contains(t, stmt.sql, "count(*)")
	assert.Contains(t, stmt.sql, `"username" = $1`)
}

func TestSkuRepository_SearchStatement(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewSkuRepository(db)

	skus, err := repo.Search(context.Background(), "TEE_")
	require.NoError(t, err)
	assert.Empty(t, skus)

	stmt := lastStatement(t, statements)
	assert.Contains(t, stmt.sql, `LOWER(`)
	assert.Contains(t, stmt.sql, `"product_name") LIKE $1`)
	assert.Contains(t, stmt.sql, `"sku_code") LIKE $2`)
	assert.Contains(t, stmt.sql, `"category") LIKE $3`)
	assert.Equal(t, 2, strings.Count(stmt.sql, " OR "))
	assert.Contains(t, stmt.sql, "ORDER BY")
	assert.Equal(t, []any{`%tee\_%`, `%tee\_%`, `%tee\_%`}, stmt.vars)
}

func TestSkuRepository_ListCategoriesStatement(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewSkuRepository(db)

	_, err := repo.ListCategories(context.Background())
	require.NoError(t, err)

	stmt := lastStatement(t, statements)
	assert.Contains(t, stmt.sql, "SELECT DISTINCT")
	assert.Contains(t, stmt.sql, "ORDER BY")
	assert.Contains(t, stmt.sql, `"category"`)
}

func TestSkuRepository_UpdateStatement(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewSkuRepository(db)

	// Nothing is affected in a dry run, so the row counts as missing.
	err := repo.Update(context.Background(), &entity.Sku{ID: 7, SkuCode: "TS-001", Name: "Classic Tee", Quantity: 0, Price: 19.99})
	assert.ErrorIs(t, err, repository.ErrSkuNotFound)

	stmt := lastStatement(t, statements)
	assert.True(t, strings.HasPrefix(stmt.sql, `UPDATE "skus" SET`), stmt.sql)
	assert.Contains(t, stmt.sql, `"product_name"=`)
	assert.Contains(t, stmt.sql, `"quantity"=`)
	assert.NotContains(t, stmt.sql, `"created_at"=`)
	assert.Contains(t, stmt.sql, `"id" = $`)
}

func TestSkuEventRepository_RecordStatement(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewSkuEventRepository(db)

	inserted, err := repo.Record(context.Background(), &entity.SkuEventRecord{
		EventID:    "evt-1",
		Type:       "sku.created",
		SkuID:      7,
		SkuCode:    "TS-001",
		OccurredAt: time.Now(),
	})
	require.NoError(t, err)
	assert.False(t, inserted)

	stmt := lastStatement(t, statements)
	assert.Contains(t, stmt.sql, `INSERT INTO "sku_events"`)
	assert.Contains(t, stmt.sql, `ON CONFLICT ("event_id") DO NOTHING`)
}

func TestSkuEventRepository_FindBySkuIDStatement(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewSkuEventRepository(db)

	records, err := repo.FindBySkuID(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, records)

	stmt := lastStatement(t, statements)
	assert.Contains(t, stmt.sql, `"sku_id" = $1`)
	require.Contains(t, stmt.sql, "ORDER BY")

	orderBy := stmt.sql[strings.Index(stmt.sql, "ORDER BY"):]
	assert.Less(t, strings.Index(orderBy, "occurred_at"), strings.Index(orderBy, "event_id"))
	assert.Equal(t, int64(7), stmt.vars[0])
}
