package testutil

import (
	"path/filepath"

	"github.com/dealerbook/dealerbook/internal/config"
	"github.com/dealerbook/dealerbook/internal/types"
)

// NewTestConfig returns the default configuration with storage rooted at dir
// and backups written below it.
func NewTestConfig(dir string) *config.Configuration {
	cfg := config.GetDefaultConfig()
	cfg.Storage.Dir = dir
	cfg.Logging.Level = types.LogLevelDebug
	cfg.Backup.Enabled = true
	cfg.Backup.Provider = types.BackupProviderLocal
	cfg.Backup.Dir = filepath.Join(dir, "backups")
	return cfg
}
