package driven

// ConfigStore is the host's custom key/value configuration store.
// Keys use dot notation (e.g. "ReloadLUF.LastUsedFiles"); implementations
// handle persistence (TOML file, SQLite, memory).
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// Set stores a configuration value, replacing any prior value.
	// The value is persisted immediately.
	Set(key string, value any) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(key string) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns where the configuration is stored.
	Path() string
}
