package dsn

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/rediwo/redi-sqlite/types"
)

// https://www.sqlite.org/uri.html

// memorySentinel is the literal path denoting an anonymous in-memory
// database with no on-disk file.
const memorySentinel = ":memory:"

// Parse decodes a connection descriptor into a Config
// Supported formats:
//   - sqlite:///path/to/database.db
//   - sqlite://database.db?mode=rwc&cache=private
//   - sqlite::memory:
//   - path/to/database.db (bare path, no scheme)
//
// The descriptor is split at the first `?` only; a later `?` inside a
// parameter value is left alone.
func Parse(descriptor string) (types.Config, error) {
	body, ok := strings.CutPrefix(descriptor, "sqlite://")
	if !ok {
		body, _ = strings.CutPrefix(descriptor, "sqlite:")
	}

	database, params, _ := strings.Cut(body, "?")

	return FromDatabaseAndParams(database, params)
}

// FromDatabaseAndParams builds a Config from an already-split descriptor:
// the database part before the first `?` and the raw query part after it.
// An empty params string means no query parameters.
func FromDatabaseAndParams(database, params string) (types.Config, error) {
	config := types.NewConfig()

	if database == memorySentinel {
		config.InMemory = true
		config.SharedCache = true
		// A fresh name per parse, so two anonymous databases never share
		// a page cache by accident.
		config.Filename = nextInMemoryName()
	} else {
		// % decode to allow for `?` or `#` in the filename
		decoded, err := url.PathUnescape(database)
		if err != nil {
			return types.Config{}, types.ConfigErrorf("invalid percent-encoding in database path %q: %v", database, err)
		}
		if !utf8.ValidString(decoded) {
			return types.Config{}, types.ConfigErrorf("database path %q is not valid UTF-8 after decoding", database)
		}
		config.Filename = decoded
	}

	for _, pair := range strings.Split(params, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if err := applyParam(&config, unescapeForm(key), unescapeForm(value)); err != nil {
			return types.Config{}, err
		}
	}

	return config, nil
}

// unescapeForm decodes one form-encoded token (`+` becomes a space).
// Decoding is lenient: a malformed escape keeps the token as-is instead
// of failing the whole parse. Only the database path is decoded strictly.
func unescapeForm(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
