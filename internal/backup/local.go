package backup

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	ierr "github.com/dealerbook/dealerbook/internal/errors"
)

// LocalTarget keeps snapshots as directories below a root directory
type LocalTarget struct {
	root string
}

func NewLocalTarget(root string) *LocalTarget {
	return &LocalTarget{root: root}
}

func (t *LocalTarget) Put(ctx context.Context, snapshotID, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := t.path(snapshotID, name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ierr.WithError(err).
			WithHint("Could not create the backup directory").
			Mark(ierr.ErrStorage)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ierr.WithError(err).
			WithHint("Could not write the backup file").
			WithReportableDetails(map[string]any{"file": name}).
			Mark(ierr.ErrStorage)
	}
	return nil
}

func (t *LocalTarget) Get(ctx context.Context, snapshotID, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := t.path(snapshotID, name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ierr.WithError(err).
			WithHint("The backup file does not exist").
			WithReportableDetails(map[string]any{"id": snapshotID, "file": name}).
			Mark(ierr.ErrNotFound)
	}
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Could not read the backup file").
			Mark(ierr.ErrStorage)
	}
	return data, nil
}

func (t *LocalTarget) Files(ctx context.Context, snapshotID string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateSnapshotID(snapshotID); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(filepath.Join(t.root, snapshotID))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Could not list the backup").
			Mark(ierr.ErrStorage)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (t *LocalTarget) path(snapshotID, name string) (string, error) {
	if err := ValidateSnapshotID(snapshotID); err != nil {
		return "", err
	}
	if err := ValidateSnapshotID(name); err != nil {
		return "", err
	}
	return filepath.Join(t.root, snapshotID, name), nil
}
