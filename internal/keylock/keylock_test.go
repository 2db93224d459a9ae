package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	k := New()
	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock("42")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, counter)
}

func TestKeyedMutex_ReleasesEntries(t *testing.T) {
	k := New()
	unlock := k.Lock("42")
	unlock()
	k.mu.Lock()
	defer k.mu.Unlock()
	assert.Empty(t, k.locks, "released keys must not accumulate")
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	k := New()
	unlockA := k.Lock("a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := k.Lock("b")
		unlockB()
		close(done)
	}()
	<-done
}
