package commands

// CLI-specific constants
const (
	// TimestampFormat is used when a relative time is not wanted.
	TimestampFormat = "2006-01-02 15:04:05"
)

// Error messages
const (
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrDoctorChecksFailed       = "one or more checks failed"
	ErrHistoryStoreUnavailable  = "history store unavailable"
	ErrKeyRequired              = "key is required"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgNoHistoryRecorded        = "No history recorded yet."
	MsgHistoryCleared           = "History cleared."
)
