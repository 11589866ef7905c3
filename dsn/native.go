package dsn

import (
	"net/url"
	"strings"

	"github.com/rediwo/redi-sqlite/types"
)

// NativeDSN renders the config as a `file:` DSN in the dialect
// understood by the mattn/go-sqlite3 driver: the standard SQLite URI
// parameters, followed by each pragma override as a leading-underscore
// parameter. Unlike the canonical URL, pragma overrides are included
// here because the driver is the collaborator that replays them.
func NativeDSN(config types.Config) string {
	var b strings.Builder
	// Synthetic in-memory identifiers already carry the file: prefix.
	if !strings.HasPrefix(config.Filename, "file:") {
		b.WriteString("file:")
	}
	b.WriteString(pathEscape(config.Filename))

	b.WriteString("?mode=")
	b.WriteString(config.Mode().String())

	if config.SharedCache {
		b.WriteString("&cache=shared")
	} else {
		b.WriteString("&cache=private")
	}

	if config.Immutable {
		b.WriteString("&immutable=1")
	}

	if config.VFS != "" {
		b.WriteString("&vfs=")
		b.WriteString(url.QueryEscape(config.VFS))
	}

	for _, pragma := range config.Pragmas {
		b.WriteString("&_")
		b.WriteString(pragma.Name)
		b.WriteString("=")
		b.WriteString(url.QueryEscape(pragma.Value))
	}

	return b.String()
}
