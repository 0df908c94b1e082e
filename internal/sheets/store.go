package sheets

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/dealerbook/dealerbook/internal/cache"
	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/logger"
	"github.com/h2non/filetype"
)

// Store loads and saves record sets. Loads are served from the cache while
// the file on disk is unchanged. There is no locking: two writers racing on
// the same file both succeed and the last rename wins.
type Store struct {
	writer *Writer
	cache  cache.Cache
	logger *logger.Logger
}

type cachedTable struct {
	signature string
	table     *Table
}

// NewStore returns a Store writing through w
func NewStore(w *Writer, c cache.Cache, log *logger.Logger) *Store {
	return &Store{
		writer: w,
		cache:  c,
		logger: log,
	}
}

// Load reads the record set at path in canonical form. A missing file is an
// empty record set. A file that cannot be read or parsed is logged and also
// treated as empty so a damaged sheet never blocks the application. The only
// error returned is a cancelled context.
func (s *Store) Load(ctx context.Context, path string, schema Schema) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return NewTable(schema), nil
	}
	if err != nil {
		s.logger.Warnw("spreadsheet could not be accessed, treating as empty", "path", path, "error", err)
		return NewTable(schema), nil
	}
	if info.IsDir() {
		s.logger.Warnw("spreadsheet path is a directory, treating as empty", "path", path)
		return NewTable(schema), nil
	}

	key := cache.GenerateKey(cache.PrefixRecordSet, path)
	signature := fmt.Sprintf("%d:%d", info.ModTime().UnixNano(), info.Size())
	if v, ok := s.cache.Get(ctx, key); ok {
		if entry, ok := v.(cachedTable); ok && entry.signature == signature {
			return entry.table.Clone(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warnw("spreadsheet could not be read, treating as empty", "path", path, "error", err)
		return NewTable(schema), nil
	}

	if !filetype.IsArchive(data) && !filetype.IsDocument(data) {
		s.logger.Warnw("spreadsheet is not an xlsx document, treating as empty", "path", path, "size", len(data))
		return NewTable(schema), nil
	}

	raw, err := Decode(bytes.NewReader(data), schema)
	if err != nil {
		s.logger.Warnw("spreadsheet could not be parsed, treating as empty", "path", path, "error", err)
		return NewTable(schema), nil
	}

	t := Normalize(raw, schema)
	s.cache.Set(ctx, key, cachedTable{signature: signature, table: t.Clone()}, 0)
	return t, nil
}

// Save normalizes t and atomically replaces the file at path with it
func (s *Store) Save(ctx context.Context, path string, t *Table, schema Schema) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if t == nil {
		return ierr.NewError("table is required").
			WithHint("Nothing to save").
			Mark(ierr.ErrValidation)
	}

	out := Normalize(t, schema)
	if err := s.writer.Write(path, out, schema); err != nil {
		return err
	}
	s.Invalidate(ctx, path)
	s.logger.Infow("record set saved", "path", path, "sheet", schema.Sheet, "rows", out.Len())
	return nil
}

// Provision creates an empty record set at path when no file exists. The
// result reports whether a file was created.
func (s *Store) Provision(ctx context.Context, path string, schema Schema) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, storageError(err, "Could not access the spreadsheet", path)
	}

	if err := s.writer.Write(path, NewTable(schema), schema); err != nil {
		return false, err
	}
	s.logger.Infow("created empty record set", "path", path, "sheet", schema.Sheet)
	return true, nil
}

// ReplaceFile atomically replaces the file at path with raw bytes, used when
// restoring a backup.
func (s *Store) ReplaceFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.writer.WriteBytes(path, data); err != nil {
		return err
	}
	s.Invalidate(ctx, path)
	return nil
}

// Invalidate drops any cached copy of the file at path
func (s *Store) Invalidate(ctx context.Context, path string) {
	s.cache.Delete(ctx, cache.GenerateKey(cache.PrefixRecordSet, path))
}
