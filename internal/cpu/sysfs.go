package cpu

import (
	"bufio"
	"os"
	"strings"
)

// FileReader reads the first line of a sysfs-style file.
type FileReader interface {
	// ReadOneLine returns the trimmed first line of path, or "" if the
	// file is missing or unreadable.
	ReadOneLine(path string) string
}

// SysfsReader is the os backed FileReader.
type SysfsReader struct{}

func (SysfsReader) ReadOneLine(path string) string {
	if path == "" {
		return ""
	}

	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return ""
	}

	return strings.TrimSpace(scanner.Text())
}
