package dsn

import (
	"sort"
	"strings"

	"github.com/rediwo/redi-sqlite/types"
)

// pragmaPrefix marks a query parameter as a pragma override. It is
// stripped exactly once from the front of the key; a pragma whose own
// name contains the marker (pragma_pragma_list) must survive intact.
const pragmaPrefix = "pragma_"

// allowedPragmas is the fixed set of pragma names accepted as
// `pragma_<name>` query parameters, keyed by the bare name. Unknown
// pragmas are rejected at parse time so typos surface before the
// database is ever opened; pragma values are not validated here.
// References https://www.sqlite.org/pragma.html
var allowedPragmas = map[string]struct{}{
	"analysis_limit":            {},
	"application_id":            {},
	"auto_vacuum":               {},
	"automatic_index":           {},
	"busy_timeout":              {},
	"cache_size":                {},
	"cache_spill":               {},
	"case_sensitive_like":       {},
	"cell_size_check":           {},
	"checkpoint_fullfsync":      {},
	"collation_list":            {},
	"compile_options":           {},
	"count_changes":             {},
	"data_store_directory":      {},
	"data_version":              {},
	"database_list":             {},
	"default_cache_size":        {},
	"defer_foreign_keys":        {},
	"empty_result_callbacks":    {},
	"encoding":                  {},
	"foreign_key_check":         {},
	"foreign_key_list":          {},
	"foreign_keys":              {},
	"freelist_count":            {},
	"full_column_names":         {},
	"fullfsync":                 {},
	"function_list":             {},
	"hard_heap_limit":           {},
	"ignore_check_constraints":  {},
	"incremental_vacuum":        {},
	"index_info":                {},
	"index_list":                {},
	"index_xinfo":               {},
	"integrity_check":           {},
	"journal_mode":              {},
	"journal_size_limit":        {},
	"legacy_alter_table":        {},
	"legacy_file_format":        {},
	"locking_mode":              {},
	"max_page_count":            {},
	"mmap_size":                 {},
	"module_list":               {},
	"optimize":                  {},
	"page_count":                {},
	"page_size":                 {},
	"parser_trace":              {},
	"pragma_list":               {},
	"query_only":                {},
	"quick_check":               {},
	"read_uncommitted":          {},
	"recursive_triggers":        {},
	"reverse_unordered_selects": {},
	"schema_version":            {},
	"secure_delete":             {},
	"short_column_names":        {},
	"shrink_memory":             {},
	"soft_heap_limit":           {},
	"stats":                     {},
	"synchronous":               {},
	"table_info":                {},
	"table_list":                {},
	"table_xinfo":               {},
	"temp_store":                {},
	"temp_store_directory":      {},
	"threads":                   {},
	"trusted_schema":            {},
	"user_version":              {},
	"vdbe_addoptrace":           {},
	"vdbe_debug":                {},
	"vdbe_listing":              {},
	"vdbe_trace":                {},
	"wal_autocheckpoint":        {},
	"wal_checkpoint":            {},
	"writable_schema":           {},
}

// AllowedPragmas returns the bare pragma names accepted as query
// parameters, sorted for stable display.
func AllowedPragmas() []string {
	names := make([]string, 0, len(allowedPragmas))
	for name := range allowedPragmas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// applyParam interprets one query parameter and mutates the config.
// Parameters are applied in descriptor order; a repeated key simply
// overwrites the field, so the last occurrence wins.
func applyParam(config *types.Config, key, value string) error {
	switch key {
	// mode determines whether the database is opened read-only,
	// read-write, read-write-and-created-if-missing, or purely in
	// memory with no disk backing.
	case "mode":
		switch value {
		case "ro":
			config.ReadOnly = true

		// default
		case "rw":

		case "rwc":
			config.CreateIfMissing = true

		case "memory":
			config.InMemory = true
			config.SharedCache = true

		default:
			return types.ConfigErrorf("unknown value %q for `mode`", value)
		}

	// cache selects private or shared page cache across connections to
	// the same database within the process. A shared cache is essential
	// for persisting data across connections to an in-memory database.
	case "cache":
		switch value {
		case "private":
			config.SharedCache = false

		case "shared":
			config.SharedCache = true

		default:
			return types.ConfigErrorf("unknown value %q for `cache`", value)
		}

	case "immutable":
		switch value {
		case "true", "1":
			config.Immutable = true

		case "false", "0":
			config.Immutable = false

		default:
			return types.ConfigErrorf("unknown value %q for `immutable`", value)
		}

	case "vfs":
		config.VFS = value

	default:
		if name, ok := strings.CutPrefix(key, pragmaPrefix); ok {
			if _, allowed := allowedPragmas[name]; allowed {
				*config = config.WithPragma(name, value)
				return nil
			}
		}
		return types.ConfigErrorf("unknown query parameter %q while parsing connection URL", key)
	}

	return nil
}
