// Package pid guards the monitor loop against a second instance.
package pid

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"codeberg.org/mutker/cpuctl/internal/errors"
	"golang.org/x/sys/unix"
)

const (
	fileName = "cpuctl.pid"
	filePerm = 0o600
)

// File is a pid file in a directory.
type File struct {
	path string
}

// New returns the pid file in dir. An empty dir means os.TempDir().
func New(dir string) *File {
	if dir == "" {
		dir = os.TempDir()
	}
	return &File{path: filepath.Join(dir, fileName)}
}

func (f *File) Path() string {
	return f.path
}

// Write records the current process ID, failing with ErrAlreadyRunning
// when the recorded process is still alive. Stale files are overwritten.
func (f *File) Write() error {
	errFactory := errors.New()

	if running, err := f.running(); err != nil {
		return errFactory.Wrap(errors.ErrInternal, err)
	} else if running {
		return errFactory.New(errors.ErrAlreadyRunning)
	}

	if err := os.WriteFile(f.path, []byte(strconv.Itoa(os.Getpid())), filePerm); err != nil {
		return errFactory.Wrap(errors.ErrInternal, err)
	}

	return nil
}

// Remove deletes the pid file if present.
func (f *File) Remove() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return errors.New().Wrap(errors.ErrInternal, err)
	}
	return nil
}

func (f *File) running() (bool, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		// Unparsable content is treated as stale
		return false, nil
	}
	if pid == os.Getpid() {
		return false, nil
	}

	// Signal 0 checks existence; EPERM means alive but owned by someone else
	switch err := unix.Kill(pid, 0); err {
	case nil, unix.EPERM:
		return true, nil
	default:
		return false, nil
	}
}
