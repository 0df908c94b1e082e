package sheets

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/logger"
)

const (
	defaultRenameRetries  = 3
	defaultRetryInterval  = 100 * time.Millisecond
	tempPatternSuffix     = ".tmp-*"
	defaultDirPermissions = 0o755
)

// Writer replaces spreadsheet files atomically. Content goes to a temporary
// file next to the target, is flushed to disk and then renamed over the
// target, so a reader sees either the old file or the new one.
type Writer struct {
	logger        *logger.Logger
	rename        func(oldpath, newpath string) error
	retryInterval time.Duration
	retries       uint64
}

// WriterOption customises a Writer
type WriterOption func(*Writer)

// WithRename replaces the function used to move the temporary file into
// place.
func WithRename(fn func(oldpath, newpath string) error) WriterOption {
	return func(w *Writer) { w.rename = fn }
}

// WithRetry sets how often and how far apart the final rename is retried.
// Renames fail transiently while another program holds the target open.
func WithRetry(retries uint64, interval time.Duration) WriterOption {
	return func(w *Writer) {
		w.retries = retries
		w.retryInterval = interval
	}
}

// NewWriter returns a Writer using os.Rename
func NewWriter(log *logger.Logger, opts ...WriterOption) *Writer {
	w := &Writer{
		logger:        log,
		rename:        os.Rename,
		retryInterval: defaultRetryInterval,
		retries:       defaultRenameRetries,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write encodes t and replaces the file at path with it
func (w *Writer) Write(path string, t *Table, schema Schema) error {
	f, err := Encode(t, schema)
	if err != nil {
		return err
	}
	defer f.Close()

	return w.replace(path, func(tmp *os.File) error {
		_, err := f.WriteTo(tmp)
		return err
	})
}

// WriteBytes replaces the file at path with data
func (w *Writer) WriteBytes(path string, data []byte) error {
	return w.replace(path, func(tmp *os.File) error {
		_, err := tmp.Write(data)
		return err
	})
}

func (w *Writer) replace(path string, fill func(*os.File) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, defaultDirPermissions); err != nil {
		return storageError(err, "Could not create the data directory", path)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+tempPatternSuffix)
	if err != nil {
		return storageError(err, "Could not create a temporary file", path)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		if rmErr := os.Remove(tmpName); rmErr != nil && !os.IsNotExist(rmErr) {
			w.logger.Warnw("failed to remove temporary file", "path", tmpName, "error", rmErr)
		}
	}

	if err := fill(tmp); err != nil {
		tmp.Close()
		cleanup()
		return storageError(err, "Could not write the spreadsheet", path)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return storageError(err, "Could not flush the spreadsheet to disk", path)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return storageError(err, "Could not close the temporary file", path)
	}

	attempt := 0
	op := func() error {
		attempt++
		err := w.rename(tmpName, path)
		if err != nil {
			w.logger.Warnw("rename failed, retrying", "path", path, "attempt", attempt, "error", err)
		}
		return err
	}
	policy := backoff.WithMaxRetries(backoff.NewConstantBackOff(w.retryInterval), w.retries)
	if err := backoff.Retry(op, policy); err != nil {
		cleanup()
		return storageError(err, "Could not replace the spreadsheet, it may be open in another program", path)
	}

	w.logger.Debugw("spreadsheet written", "path", path)
	return nil
}

func storageError(err error, hint, path string) error {
	return ierr.WithError(err).
		WithHint(hint).
		WithPath(path).
		Mark(ierr.ErrStorage)
}
