package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// ConfigFilePermissions is the permission for fontset's own files (rw-------)
	ConfigFilePermissions = 0o600
	// SettingsFilePermissions is used when an app settings file has to be created (rw-r--r--)
	SettingsFilePermissions = 0o644
)

// History constants
const (
	// DefaultHistoryLimit is the default number of history records to display
	DefaultHistoryLimit = 20
)
