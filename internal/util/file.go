package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/natefinch/atomic"
)

// ReadFloatFromFile reads a single textual number from the given file.
// An unparsable value is an error, not a fallback.
func ReadFloatFromFile(path string) (float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	text := strings.TrimSpace(string(data))
	if len(text) <= 0 {
		return 0, fmt.Errorf("file is empty: %s", path)
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to parse '%s' as a number: %s", path, text)
	}
	return value, nil
}

// ReadIntFromFile reads a single integer from the given file.
func ReadIntFromFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return -1, err
	}
	text := strings.TrimSpace(string(data))
	if len(text) <= 0 {
		return -1, fmt.Errorf("file is empty: %s", path)
	}
	return strconv.Atoi(text)
}

func WriteIntToFile(value int, path string) error {
	evaluatedPath, err := resolvePath(path)
	if len(evaluatedPath) > 0 && err == nil {
		path = evaluatedPath
	}
	return os.WriteFile(path, []byte(strconv.Itoa(value)), 0644)
}

// WriteIntToFileAtomic writes like WriteIntToFile but guarantees that
// a reader never observes a partially written value.
func WriteIntToFileAtomic(value int, path string) error {
	evaluatedPath, err := resolvePath(path)
	if len(evaluatedPath) > 0 && err == nil {
		path = evaluatedPath
	}
	valueReader := strings.NewReader(strconv.Itoa(value))
	return atomic.WriteFile(path, valueReader)
}

func resolvePath(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}
