package types

// OpenMode represents the effective open mode of a connection config.
// It is defined as a string so it can be emitted directly as the `mode`
// query parameter of a canonical URL.
type OpenMode string

const (
	OpenModeMemory          OpenMode = "memory"
	OpenModeReadWriteCreate OpenMode = "rwc"
	OpenModeReadOnly        OpenMode = "ro"
	OpenModeReadWrite       OpenMode = "rw"
)

// String returns the string representation of the open mode
func (m OpenMode) String() string {
	return string(m)
}

// Pragma is a deferred PRAGMA override to be applied by whatever opens
// the database. The name carries no `pragma_` prefix.
type Pragma struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Config holds the decoded SQLite connection options.
// It is pure data: nothing in this package opens a database or touches
// the filesystem.
type Config struct {
	// Filename is the database file path, or a synthetic identifier for
	// an anonymous in-memory database.
	Filename string `json:"filename"`

	// InMemory is true when no on-disk file backs the database.
	InMemory bool `json:"inMemory"`

	// SharedCache is true when connections to the same identifier within
	// the process share one page cache.
	SharedCache bool `json:"sharedCache"`

	// CreateIfMissing is true when a missing database file is not an error.
	CreateIfMissing bool `json:"createIfMissing"`

	// ReadOnly is true when writes must be rejected.
	ReadOnly bool `json:"readOnly"`

	// Immutable is true when the backing content is assumed to never change.
	Immutable bool `json:"immutable"`

	// VFS is the name of an alternate VFS backend, empty for the default.
	VFS string `json:"vfs,omitempty"`

	// Pragmas are replayed at open time in insertion order; duplicates
	// are kept.
	Pragmas []Pragma `json:"pragmas,omitempty"`
}

// NewConfig returns the default configuration: on-disk, shared cache
// enabled, everything else off.
func NewConfig() Config {
	return Config{SharedCache: true}
}

// Mode computes the effective open mode. Exactly one mode applies:
// memory wins over rwc, rwc over ro, and rw is the fallback.
func (c Config) Mode() OpenMode {
	switch {
	case c.InMemory:
		return OpenModeMemory
	case c.CreateIfMissing:
		return OpenModeReadWriteCreate
	case c.ReadOnly:
		return OpenModeReadOnly
	default:
		return OpenModeReadWrite
	}
}

// WithPragma returns a copy of the config with one more pragma override
// appended. The receiver is not modified and the two configs never share
// the pragma slice.
func (c Config) WithPragma(name, value string) Config {
	pragmas := make([]Pragma, len(c.Pragmas), len(c.Pragmas)+1)
	copy(pragmas, c.Pragmas)
	c.Pragmas = append(pragmas, Pragma{Name: name, Value: value})
	return c
}
