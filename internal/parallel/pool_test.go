package parallel_test

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/regiongrow/internal/parallel"
)

func TestStart_RunsEveryJob(t *testing.T) {
	for _, n := range []int{1, 2, 8} {
		pool := parallel.Start(n)
		assert.Equal(t, n, pool.Workers())

		var sum atomic.Int64
		for i := 1; i <= 100; i++ {
			i := i
			pool.Do(func() { sum.Add(int64(i)) })
		}
		pool.Wait(true)
		assert.Equal(t, int64(5050), sum.Load(), "workers=%d", n)
	}
}

func TestStart_SingleWorkerIsInline(t *testing.T) {
	pool := parallel.Start(1)
	ran := false
	pool.Do(func() { ran = true })
	assert.True(t, ran, "job runs before Do returns")
	pool.Wait(true)
}

func TestStart_DefaultWorkers(t *testing.T) {
	pool := parallel.Start(0)
	assert.Equal(t, runtime.GOMAXPROCS(0), pool.Workers())
	pool.Wait(true)
}

func TestCancel_Idempotent(t *testing.T) {
	pool := parallel.Start(4)
	pool.Cancel()
	assert.NotPanics(t, func() { pool.Wait(true) })
}

func TestWait_KeepsWorkersRunning(t *testing.T) {
	pool := parallel.Start(2)

	var n atomic.Int64
	pool.Do(func() { n.Add(1) })

	returned := make(chan struct{})
	go func() {
		pool.Wait(false)
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait(false) did not return after the scheduled job finished")
	}
	assert.Equal(t, int64(1), n.Load())

	for i := 0; i < 10; i++ {
		pool.Do(func() { n.Add(1) })
	}
	pool.Wait(true)
	assert.Equal(t, int64(11), n.Load())
}
