package dsn

import (
	"fmt"
	"sync/atomic"
)

// inMemorySeq numbers anonymous in-memory databases for the lifetime of
// the process. Callers only rely on distinctness, not on the sequence
// values themselves.
var inMemorySeq atomic.Uint64

// nextInMemoryName mints a unique identifier for an anonymous in-memory
// database. Safe for concurrent use; names start at 0 and are never
// reused.
func nextInMemoryName() string {
	return fmt.Sprintf("file:sqlx-in-memory-%d", inMemorySeq.Add(1)-1)
}
