package shell

import (
	"context"
	"sync"

	"codeberg.org/mutker/cpuctl/internal/errors"
)

// Run submits script to sh and blocks until it completes or ctx is done.
// It returns the collected output lines and the exit code; a non-zero
// exit is reported as an ErrNonZeroExit error alongside the output.
func Run(ctx context.Context, sh Shell, script string) ([]string, int, error) {
	errFactory := errors.New()

	if sh.IsClosed() {
		return nil, -1, errFactory.New(ErrClosed)
	}

	var (
		mu    sync.Mutex
		lines []string
	)
	done := make(chan int, 1)

	cmd := &Command{
		ID:     NextID(),
		Script: script,
		OnOutput: func(_ int, line string) {
			mu.Lock()
			lines = append(lines, line)
			mu.Unlock()
		},
		OnCompleted: func(_ int, exitCode int) {
			done <- exitCode
		},
	}

	if err := sh.Add(cmd); err != nil {
		return nil, -1, err
	}

	select {
	case exitCode := <-done:
		mu.Lock()
		defer mu.Unlock()
		if exitCode != 0 {
			return lines, exitCode, errFactory.WithData(ErrNonZeroExit, exitCode)
		}
		return lines, exitCode, nil
	case <-ctx.Done():
		return nil, -1, errFactory.Wrap(ErrTimeout, ctx.Err())
	}
}
