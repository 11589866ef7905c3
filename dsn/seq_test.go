package dsn

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextInMemoryNameFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^file:sqlx-in-memory-\d+$`)
	assert.Regexp(t, pattern, nextInMemoryName())
}

func TestNextInMemoryNameConcurrentUniqueness(t *testing.T) {
	const workers = 8
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[string]bool, workers*perWorker)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				name := nextInMemoryName()
				mu.Lock()
				seen[name] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
