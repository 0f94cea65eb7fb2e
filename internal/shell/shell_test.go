package shell_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"codeberg.org/mutker/cpuctl/internal/errors"
	"codeberg.org/mutker/cpuctl/internal/logger"
	"codeberg.org/mutker/cpuctl/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPool(t *testing.T) *shell.Pool {
	t.Helper()
	pool := shell.NewPool(shell.Config{Binary: "sh", Queue: 4}, logger.New("shell"))
	t.Cleanup(func() { _ = pool.Close() })
	return pool
}

func TestRunCollectsOutput(t *testing.T) {
	sh, err := newPool(t).Get(false)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lines, exitCode, err := shell.Run(ctx, sh, `echo first; echo -n "second"`)
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, []string{"first", "second"}, lines)
}

func TestRunNonZeroExit(t *testing.T) {
	sh, err := newPool(t).Get(false)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lines, exitCode, err := shell.Run(ctx, sh, "echo partial; exit 3")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, shell.ErrNonZeroExit))
	assert.Equal(t, 3, exitCode)
	assert.Equal(t, []string{"partial"}, lines)
}

func TestCommandsRunInQueueOrder(t *testing.T) {
	sh, err := newPool(t).Get(false)
	require.NoError(t, err)

	var (
		mu    sync.Mutex
		order []int
		wg    sync.WaitGroup
	)
	for i := 1; i <= 3; i++ {
		wg.Add(1)
		require.NoError(t, sh.Add(&shell.Command{
			ID:     i,
			Script: "true",
			OnCompleted: func(id int, _ int) {
				mu.Lock()
				order = append(order, id)
				mu.Unlock()
				wg.Done()
			},
		}))
	}
	wg.Wait()

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestClosedShellRejectsCommands(t *testing.T) {
	pool := newPool(t)
	sh, err := pool.Get(false)
	require.NoError(t, err)

	require.NoError(t, sh.Close())
	assert.True(t, sh.IsClosed())

	err = sh.Add(&shell.Command{Script: "true"})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, shell.ErrClosed))

	_, _, err = shell.Run(context.Background(), sh, "true")
	assert.True(t, errors.HasCode(err, shell.ErrClosed))

	next, err := pool.Get(false)
	require.NoError(t, err)
	assert.NotSame(t, sh, next, "Expected a fresh shell after close")
	assert.False(t, next.IsClosed())
}

func TestPoolReusesOpenShell(t *testing.T) {
	pool := newPool(t)

	first, err := pool.Get(false)
	require.NoError(t, err)
	second, err := pool.Get(false)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestEmptyScriptRejected(t *testing.T) {
	sh, err := newPool(t).Get(false)
	require.NoError(t, err)

	err = sh.Add(&shell.Command{})
	assert.True(t, errors.HasCode(err, shell.ErrInvalidCommand))
}

func TestMissingBinaryCompletesWithMinusOne(t *testing.T) {
	pool := shell.NewPool(shell.Config{Binary: "/nonexistent/sh"}, logger.New("shell"))
	defer pool.Close()

	sh, err := pool.Get(false)
	require.NoError(t, err)

	_, exitCode, err := shell.Run(context.Background(), sh, "true")
	require.Error(t, err)
	assert.Equal(t, -1, exitCode)
}

func TestRunHonoursContext(t *testing.T) {
	sh, err := newPool(t).Get(false)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, _, err = shell.Run(ctx, sh, "sleep 1")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, shell.ErrTimeout))
}
