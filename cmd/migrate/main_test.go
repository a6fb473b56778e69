package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMigrationPart(t *testing.T) {
	content := `
-- +migrate Up
CREATE TABLE accounts (accountid text PRIMARY KEY);
CREATE SEQUENCE orderid_seq;

-- +migrate Down
DROP TABLE accounts;
`
	t.Run("Extract Up", func(t *testing.T) {
		up := extractMigrationPart(content, "Up")
		assert.Contains(t, up, "CREATE TABLE accounts")
		assert.Contains(t, up, "CREATE SEQUENCE orderid_seq")
		assert.NotContains(t, up, "DROP TABLE accounts")
		assert.NotContains(t, up, "-- +migrate Up")
	})

	t.Run("Extract Down", func(t *testing.T) {
		down := extractMigrationPart(content, "Down")
		assert.Contains(t, down, "DROP TABLE accounts")
		assert.NotContains(t, down, "CREATE TABLE accounts")
	})
}

func TestRunMigrationsUp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tmpDir := t.TempDir()
	fileName := "0001_init.sql"
	filePath := filepath.Join(tmpDir, fileName)

	content := "-- +migrate Up\nCREATE TABLE test (id int);"
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))

	files := []string{filePath}

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs(fileName).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("CREATE TABLE test").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs(fileName).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, runMigrationsUp(db, files))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsUpSkipsApplied(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tmpDir := t.TempDir()
	fileName := "0001_init.sql"
	filePath := filepath.Join(tmpDir, fileName)
	require.NoError(t, os.WriteFile(filePath, []byte("-- +migrate Up\nCREATE TABLE test (id int);"), 0644))

	mock.ExpectQuery("SELECT EXISTS.*schema_migrations").
		WithArgs(fileName).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	require.NoError(t, runMigrationsUp(db, []string{filePath}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrationsDown(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	tmpDir := t.TempDir()
	fileName := "0001_init.sql"
	filePath := filepath.Join(tmpDir, fileName)
	require.NoError(t, os.WriteFile(filePath, []byte("-- +migrate Up\nCREATE TABLE test (id int);\n-- +migrate Down\nDROP TABLE test;"), 0644))

	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow(fileName))
	mock.ExpectExec("DROP TABLE test").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM schema_migrations").
		WithArgs(fileName).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, runMigrationsDown(db, []string{filePath}))
	require.NoError(t, mock.ExpectationsWereMet())
}
