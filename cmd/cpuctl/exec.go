package main

import (
	"context"

	"codeberg.org/mutker/cpuctl/internal/errors"
	"codeberg.org/mutker/cpuctl/internal/logger"
	"codeberg.org/mutker/cpuctl/internal/shell"
)

// runRoot executes script on the root shell and logs its output.
func runRoot(ctx context.Context, script string) error {
	errFactory := errors.New()

	sh, err := shellPool().Get(true)
	if err != nil {
		return errFactory.Wrap(errors.ErrApplyScript, err)
	}

	logger.Debug().Str("script", script).Msg("Applying script")

	lines, exitCode, err := shell.Run(ctx, sh, script)
	for _, line := range lines {
		logger.Debug().Str("line", line).Msg("Script output")
	}
	if err != nil {
		return errFactory.Wrap(errors.ErrApplyScript, err)
	}

	logger.Debug().Int("exit_code", exitCode).Msg("Script applied")
	return nil
}
