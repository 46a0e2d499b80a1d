package utils

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderUIDFormat(t *testing.T) {
	uid := NewOrderUID()
	require.True(t, strings.HasPrefix(uid, "O"))

	_, err := strconv.ParseInt(uid[1:], 10, 64)
	assert.NoError(t, err)
}

func TestNewOrderUIDUniqueUnderConcurrency(t *testing.T) {
	const workers = 20
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[string]bool, workers*perWorker)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, perWorker)
			for j := 0; j < perWorker; j++ {
				local = append(local, NewOrderUID())
			}
			mu.Lock()
			for _, uid := range local {
				seen[uid] = true
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
