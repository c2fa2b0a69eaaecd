package cache

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"registry/config"

	"github.com/stretchr/testify/assert"
)

func TestChallengeStore_SaveAndConsume(t *testing.T) {
	store := NewChallengeStore(&config.Config{})

	store.Save("addr", "sign me", time.Minute)

	message, ok := store.Consume("addr")
	assert.True(t, ok)
	assert.Equal(t, "sign me", message)

	_, ok = store.Consume("addr")
	assert.False(t, ok, "challenge must be single use")
}

func TestChallengeStore_ReplacesPreviousChallenge(t *testing.T) {
	store := NewChallengeStore(nil)

	store.Save("addr", "first", time.Minute)
	store.Save("addr", "second", time.Minute)

	message, ok := store.Consume("addr")
	assert.True(t, ok)
	assert.Equal(t, "second", message)
}

func TestChallengeStore_Expired(t *testing.T) {
	store := NewChallengeStore(&config.Config{Auth: &config.AuthConfig{ChallengeTTL: time.Millisecond}})

	store.Save("addr", "sign me", time.Millisecond)
	time.Sleep(10 * time.Millisecond)

	_, ok := store.Consume("addr")
	assert.False(t, ok)
}

func TestChallengeStore_ConcurrentConsume(t *testing.T) {
	store := NewChallengeStore(nil)
	store.Save("addr", "sign me", time.Minute)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := store.Consume("addr"); ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}
