package utils

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandomString(t *testing.T) {
	s := GenerateRandomString(6)
	assert.Len(t, s, 6)
	for _, r := range s {
		assert.True(t, strings.ContainsRune(charset, r), "unexpected rune %q", r)
	}
}

func TestGenerateRandomStringConcurrent(t *testing.T) {
	const workers = 8
	const perWorker = 500

	results := make([][]string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				results[i] = append(results[i], GenerateRandomString(6))
			}
		}(i)
	}
	wg.Wait()

	for _, batch := range results {
		assert.Len(t, batch, perWorker)
		for _, s := range batch {
			assert.Len(t, s, 6)
		}
	}
}
