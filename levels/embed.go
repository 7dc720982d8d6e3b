package levels

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed *.txt
var LevelsFS embed.FS

// ErrLevelNotFound is returned when no level file exists for an index.
var ErrLevelNotFound = errors.New("levels: level not found")

// Name returns the file name of the level with the given 1-based index.
func Name(index int) string {
	return fmt.Sprintf("level%d.txt", index)
}

// Exists reports whether a level file is bundled for index.
func Exists(index int) bool {
	if index < 1 {
		return false
	}
	_, err := fs.Stat(LevelsFS, Name(index))
	return err == nil
}

// Load returns the raw text of the level with the given index.
func Load(index int) (string, error) {
	if !Exists(index) {
		return "", fmt.Errorf("load level %d: %w", index, ErrLevelNotFound)
	}
	data, err := fs.ReadFile(LevelsFS, Name(index))
	if err != nil {
		return "", fmt.Errorf("read level %d: %w", index, err)
	}
	return string(data), nil
}

// Count returns how many consecutive levels starting at 1 are bundled.
func Count() int {
	n := 0
	for Exists(n + 1) {
		n++
	}
	return n
}
