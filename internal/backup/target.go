package backup

import (
	"context"
	"regexp"
	"time"

	"github.com/dealerbook/dealerbook/internal/config"
	ierr "github.com/dealerbook/dealerbook/internal/errors"
	"github.com/dealerbook/dealerbook/internal/logger"
	"github.com/dealerbook/dealerbook/internal/types"
)

// Target stores snapshots of the record set files. A snapshot is a named
// group of files.
type Target interface {
	Put(ctx context.Context, snapshotID, name string, data []byte) error
	Get(ctx context.Context, snapshotID, name string) ([]byte, error)
	// Files lists the file names stored under a snapshot
	Files(ctx context.Context, snapshotID string) ([]string, error)
}

const snapshotIDLayout = "20060102T150405.000000000Z"

var snapshotIDPattern = regexp.MustCompile(`^[0-9A-Za-z][0-9A-Za-z._-]*$`)

// NewSnapshotID returns a sortable identifier for a snapshot taken at t
func NewSnapshotID(t time.Time) string {
	return t.UTC().Format(snapshotIDLayout)
}

// ValidateSnapshotID rejects identifiers that could escape the backup root
func ValidateSnapshotID(id string) error {
	if !snapshotIDPattern.MatchString(id) || id == "." || id == ".." {
		return ierr.NewError("invalid backup id").
			WithHint("Backup id may only contain letters, digits, dots, dashes and underscores").
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// NewTarget builds the backup target selected by configuration. It returns
// nil when backups are disabled.
func NewTarget(cfg *config.Configuration, log *logger.Logger) (Target, error) {
	if !cfg.Backup.Enabled {
		return nil, nil
	}

	switch cfg.Backup.Provider {
	case types.BackupProviderS3:
		awsCfg, err := config.LoadAwsConfig(context.Background(), cfg.Backup.Region)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("failed to load aws config").
				Mark(ierr.ErrHTTPClient)
		}
		log.Infow("using s3 backup target", "bucket", cfg.Backup.Bucket, "prefix", cfg.Backup.Prefix, "endpoint", cfg.Backup.Endpoint)
		return NewS3Target(config.NewS3Client(awsCfg, cfg.Backup.Endpoint), cfg.Backup.Bucket, cfg.Backup.Prefix), nil
	default:
		dir := cfg.Backup.Dir
		if dir == "" {
			dir = config.ResolvePaths(cfg).Dir + "_backups"
		}
		log.Infow("using local backup target", "dir", dir)
		return NewLocalTarget(dir), nil
	}
}
