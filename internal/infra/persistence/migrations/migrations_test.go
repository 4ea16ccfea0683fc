package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContainsOrderedMigrations(t *testing.T) {
	entries, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"00001_create_credentials.sql",
		"00002_create_skus.sql",
		"00003_create_sku_events.sql",
	}, entries)
}

func TestFS_CredentialsHaveUniqueUsername(t *testing.T) {
	content, err := fs.ReadFile(FS, "00001_create_credentials.sql")
	require.NoError(t, err)

	assert.Contains(t, string(content), "CREATE UNIQUE INDEX IF NOT EXISTS idx_credentials_username")
}

func TestUp_RunsFromEmbeddedRoot(t *testing.T) {
	orig := gooseUp
	defer func() { gooseUp = orig }()

	var gotDir string
	gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
		gotDir = dir

		return nil
	}

	require.NoError(t, Up(context.Background(), nil))
	assert.Equal(t, ".", gotDir)
}

func TestUp_WrapsFailure(t *testing.T) {
	orig := gooseUp
	defer func() { gooseUp = orig }()

	gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
		return errors.New("boom")
	}

	err := Up(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to apply migrations")
}
