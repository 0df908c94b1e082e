package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dealerbook/dealerbook/internal/api/dto"
	"github.com/dealerbook/dealerbook/internal/backup"
	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/interfaces"
	"github.com/dealerbook/dealerbook/internal/types"
	"github.com/h2non/filetype"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"
)

const backupFileExt = ".xlsx"

type BackupService = interfaces.BackupService

type backupService struct {
	ServiceParams
	now func() time.Time
}

func NewBackupService(params ServiceParams) BackupService {
	return &backupService{
		ServiceParams: params,
		now:           time.Now,
	}
}

// Snapshot copies every existing record set file to the backup target under
// a new snapshot id.
func (s *backupService) Snapshot(ctx context.Context) (*dto.BackupResponse, error) {
	if err := s.requireTarget(); err != nil {
		return nil, err
	}

	createdAt := s.now().UTC()
	id := backup.NewSnapshotID(createdAt)

	paths := make(map[types.EntityKind]string, len(types.EntityKinds))
	for _, kind := range types.EntityKinds {
		repo, err := s.Records.Get(kind)
		if err != nil {
			return nil, err
		}
		paths[kind] = repo.Path()
	}

	p := pool.NewWithResults[string]().WithErrors().WithContext(ctx)
	for kind, path := range paths {
		p.Go(func(ctx context.Context) (string, error) {
			return s.snapshotFile(ctx, id, kind, path)
		})
	}

	uploaded, err := p.Wait()
	if err != nil {
		return nil, err
	}

	// Files are listed in record set order whatever order uploads finished in
	files := lo.Filter(lo.Map(types.EntityKinds, func(kind types.EntityKind, _ int) string {
		return backupFileName(kind)
	}), func(name string, _ int) bool {
		return lo.Contains(uploaded, name)
	})

	s.Logger.Infow("backup created", "backup_id", id, "files", files)
	return &dto.BackupResponse{
		ID:        id,
		CreatedAt: createdAt,
		Files:     files,
	}, nil
}

// Restore replaces the record set files with the ones stored under id.
// Files that do not belong to a known record set are ignored.
func (s *backupService) Restore(ctx context.Context, id string) (*dto.RestoreBackupResponse, error) {
	if err := s.requireTarget(); err != nil {
		return nil, err
	}
	if err := backup.ValidateSnapshotID(id); err != nil {
		return nil, err
	}

	names, err := s.BackupTarget.Files(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ierr.NewError("backup not found").
			WithHintf("Backup %s does not exist", id).
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}

	// Read and check every file before replacing any of them
	payloads := make(map[types.EntityKind][]byte, len(names))
	for _, name := range names {
		kind, ok := kindFromBackupFile(name)
		if !ok {
			s.Logger.Warnw("ignoring unknown backup file", "backup_id", id, "file", name)
			continue
		}

		data, err := s.BackupTarget.Get(ctx, id, name)
		if err != nil {
			return nil, err
		}
		if !filetype.IsArchive(data) && !filetype.IsDocument(data) {
			return nil, ierr.NewError("backup file is not a workbook").
				WithHintf("Backup %s is damaged", id).
				WithReportableDetails(map[string]any{"id": id, "file": name}).
				Mark(ierr.ErrValidation)
		}
		payloads[kind] = data
	}

	restored := make([]string, 0, len(payloads))
	for _, kind := range types.EntityKinds {
		data, ok := payloads[kind]
		if !ok {
			continue
		}
		repo, err := s.Records.Get(kind)
		if err != nil {
			return nil, err
		}
		if err := s.Store.ReplaceFile(ctx, repo.Path(), data); err != nil {
			return nil, err
		}
		restored = append(restored, backupFileName(kind))
	}

	s.Logger.Infow("backup restored", "backup_id", id, "files", restored)
	return &dto.RestoreBackupResponse{
		ID:       id,
		Restored: restored,
	}, nil
}

// snapshotFile uploads one record set file and returns its backup name, or
// an empty name when the file does not exist yet
func (s *backupService) snapshotFile(ctx context.Context, id string, kind types.EntityKind, path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.Logger.Debugw("skipping missing record set", "kind", kind, "path", path)
		return "", nil
	}
	if err != nil {
		return "", ierr.WithError(err).
			WithHintf("Could not read %s for backup", filepath.Base(path)).
			WithReportableDetails(map[string]any{"path": path}).
			Mark(ierr.ErrStorage)
	}

	name := backupFileName(kind)
	if err := s.BackupTarget.Put(ctx, id, name, data); err != nil {
		return "", err
	}
	return name, nil
}

func (s *backupService) requireTarget() error {
	if s.BackupTarget == nil {
		return ierr.NewError("backups are disabled").
			WithHint("Enable backups in the configuration first").
			Mark(ierr.ErrInvalidOperation)
	}
	return nil
}

func backupFileName(kind types.EntityKind) string {
	return kind.String() + backupFileExt
}

func kindFromBackupFile(name string) (types.EntityKind, bool) {
	if !strings.HasSuffix(name, backupFileExt) {
		return "", false
	}
	kind := types.EntityKind(strings.TrimSuffix(name, backupFileExt))
	return kind, lo.Contains(types.EntityKinds, kind)
}
