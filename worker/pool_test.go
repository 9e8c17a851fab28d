package worker

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolRunsTasks(t *testing.T) {
	pool := NewPool(2, 8, nil)

	var ran int64
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		pool.Dispatch(func() {
			atomic.AddInt64(&ran, 1)
			wg.Done()
		})
	}
	wg.Wait()
	pool.Close()

	assert.Equal(t, int64(8), atomic.LoadInt64(&ran))
}

func TestPoolDropsWhenFull(t *testing.T) {
	var dropped int64
	pool := NewPool(1, 1, func() { atomic.AddInt64(&dropped, 1) })

	block := make(chan struct{})
	started := make(chan struct{})
	pool.Dispatch(func() {
		close(started)
		<-block
	})
	<-started

	// Worker is busy; one task fits the queue, the rest are dropped.
	pool.Dispatch(func() {})
	pool.Dispatch(func() {})
	pool.Dispatch(func() {})

	assert.Equal(t, int64(2), atomic.LoadInt64(&dropped))

	close(block)
	pool.Close()
}

func TestSyncRunsInline(t *testing.T) {
	var order []int
	d := Sync{}
	d.Dispatch(func() { order = append(order, 1) })
	d.Dispatch(func() { order = append(order, 2) })

	assert.Equal(t, []int{1, 2}, order)
}
