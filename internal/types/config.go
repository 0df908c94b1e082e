package types

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// BackupProvider selects where entity file snapshots are copied to
type BackupProvider string

const (
	BackupProviderLocal BackupProvider = "local"
	BackupProviderS3    BackupProvider = "s3"
)
