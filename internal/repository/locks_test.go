package repository

import (
	"sync"
	"testing"
)

func TestLockRegistrySameIDSameMutex(t *testing.T) {
	reg := NewLockRegistry()
	if reg.Get("S00001") != reg.Get("S00001") {
		t.Error("two Gets for one id returned different mutexes")
	}
	if reg.Get("S00001") == reg.Get("S00002") {
		t.Error("different ids share a mutex")
	}
}

// Racing first references for the same id must converge on one mutex,
// otherwise two callers could hold "the" show lock at the same time.
func TestLockRegistryConcurrentFirstReference(t *testing.T) {
	reg := NewLockRegistry()

	const n = 32
	locks := make([]*sync.Mutex, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			locks[i] = reg.Get("S00007")
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if locks[i] != locks[0] {
			t.Fatalf("goroutine %d got a different mutex", i)
		}
	}
}
