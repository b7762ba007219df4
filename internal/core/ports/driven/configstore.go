package driven

// ConfigStore provides access to server configuration.
// Keys are dotted paths such as "server.port" or "catalog.source".
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string value, or "" if missing or not a string.
	GetString(key string) string

	// GetInt retrieves an integer value, or 0 if missing or not an integer.
	GetInt(key string) int

	// GetFloat retrieves a number value. Integers are widened.
	// Returns 0 if missing or not a number.
	GetFloat(key string) float64

	// GetBool retrieves a boolean value, or false if missing.
	GetBool(key string) bool

	// GetStringSlice retrieves a string list, or nil if missing.
	GetStringSlice(key string) []string

	// Keys returns every key present, sorted.
	Keys() []string

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
