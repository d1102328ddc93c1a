package puzzle

import (
	"fmt"
	"os"
	"path/filepath"
)

// Loader reads puzzle inputs from a directory.
type Loader struct {
	Dir string
}

// InputName returns the conventional input file name for day, e.g. "day04.txt".
func InputName(day int) string {
	return fmt.Sprintf("day%02d.txt", day)
}

// Load returns the full contents of the named input file inside l.Dir.
func (l Loader) Load(name string) (string, error) {
	path := filepath.Join(l.Dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input %s: %w", path, err)
	}

	return string(data), nil
}

// LoadDay is Load(InputName(day)).
func (l Loader) LoadDay(day int) (string, error) {
	return l.Load(InputName(day))
}
