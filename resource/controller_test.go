package resource

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Memory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})

	assert.True(t, c.TryAcquireMemory(60))
	assert.Equal(t, int64(60), c.MemoryUsage())

	// would exceed the cap
	assert.False(t, c.TryAcquireMemory(50))
	assert.Equal(t, int64(60), c.MemoryUsage())

	c.ReleaseMemory(60)
	assert.Equal(t, int64(0), c.MemoryUsage())
	assert.True(t, c.TryAcquireMemory(100))
}

func TestController_UnlimitedMemory(t *testing.T) {
	c := NewController(Config{})

	assert.True(t, c.TryAcquireMemory(1<<40))
	assert.Equal(t, int64(1<<40), c.MemoryUsage())

	c.ReleaseMemory(1 << 39)
	assert.Equal(t, int64(1<<39), c.MemoryUsage())
}

func TestController_Fetch(t *testing.T) {
	c := NewController(Config{MaxConcurrentFetches: 2})
	assert.Equal(t, int64(2), c.Config().MaxConcurrentFetches)

	ctx := context.Background()
	require.NoError(t, c.AcquireFetch(ctx))
	require.NoError(t, c.AcquireFetch(ctx))

	ctx2, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireFetch(ctx2), context.DeadlineExceeded)

	c.ReleaseFetch()
	ctx3, cancel3 := context.WithTimeout(ctx, time.Second)
	defer cancel3()
	assert.NoError(t, c.AcquireFetch(ctx3))
}

func TestController_DefaultFetches(t *testing.T) {
	c := NewController(Config{})
	assert.Equal(t, int64(DefaultMaxConcurrentFetches), c.Config().MaxConcurrentFetches)
}

func TestController_Nil(t *testing.T) {
	var c *Controller

	assert.True(t, c.TryAcquireMemory(1))
	c.ReleaseMemory(1)
	assert.Equal(t, int64(0), c.MemoryUsage())
	require.NoError(t, c.AcquireFetch(context.Background()))
	c.ReleaseFetch()
	require.NoError(t, c.AcquireIO(context.Background(), 1<<30))
	assert.Equal(t, Config{}, c.Config())
}

func TestRateLimitedReader(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1 << 20})

	data := bytes.Repeat([]byte("x"), 3<<19)
	r := NewRateLimitedReader(context.Background(), bytes.NewReader(data), c)

	start := time.Now()
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, len(data), len(got))
	assert.Equal(t, int64(len(data)), c.BytesRead())

	// the 1 MiB burst is free, the remaining 512 KiB cost about 500ms
	assert.Greater(t, time.Since(start), 300*time.Millisecond)
}

func TestRateLimitedReader_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRateLimitedReader(ctx, strings.NewReader("abc"), nil)
	_, err := r.Read(make([]byte, 3))
	assert.ErrorIs(t, err, context.Canceled)
}
