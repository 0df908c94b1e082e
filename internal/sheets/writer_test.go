package sheets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_CreatesDirectoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "clientes.xlsx")
	w := NewWriter(logger.NewNopLogger())

	tbl, _ := Upsert(NewTable(partySchema), partySchema, Row{"nombre": "Ana"})
	require.NoError(t, w.Write(path, tbl, partySchema))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assertNoTempFiles(t, filepath.Dir(path))
}

func TestWriter_FailedRenameKeepsPreviousFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clientes.xlsx")

	good := NewWriter(logger.NewNopLogger())
	before, _ := Upsert(NewTable(partySchema), partySchema, Row{"nombre": "Ana"})
	require.NoError(t, good.Write(path, before, partySchema))
	original, err := os.ReadFile(path)
	require.NoError(t, err)

	calls := 0
	broken := NewWriter(logger.NewNopLogger(),
		WithRename(func(string, string) error {
			calls++
			return errors.New("file is locked")
		}),
		WithRetry(2, time.Millisecond),
	)

	after, _ := Upsert(before, partySchema, Row{"nombre": "Luis"})
	err = broken.Write(path, after, partySchema)

	require.Error(t, err)
	assert.True(t, ierr.IsStorage(err))
	assert.Equal(t, 3, calls)

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, current)
	assertNoTempFiles(t, dir)
}

func TestWriter_RenameRecoversOnRetry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vehiculos.xlsx")

	calls := 0
	w := NewWriter(logger.NewNopLogger(),
		WithRename(func(oldpath, newpath string) error {
			calls++
			if calls == 1 {
				return errors.New("sharing violation")
			}
			return os.Rename(oldpath, newpath)
		}),
		WithRetry(3, time.Millisecond),
	)

	require.NoError(t, w.Write(path, NewTable(stockSchema), stockSchema))
	assert.Equal(t, 2, calls)
	assert.FileExists(t, path)
}

func TestWriter_WriteBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facturas.xlsx")
	w := NewWriter(logger.NewNopLogger())

	require.NoError(t, w.WriteBytes(path, []byte("payload")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp-", "leftover temporary file")
	}
}
