package speech

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Sweeper deletes generated audio files. It runs after request handling has
// stopped, so it is the only writer touching the audio directory.
type Sweeper struct {
	dir string
}

// NewSweeper targets the served audio directory.
func NewSweeper(dir string) *Sweeper {
	return &Sweeper{dir: dir}
}

// Sweep removes every file matching the synthesizer's naming convention and
// returns how many were deleted. Individual deletion failures are logged and
// skipped; sweeping an empty or missing directory is a no-op.
func (s *Sweeper) Sweep() int {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[sweeper] failed to read audio dir: %v", err)
		}
		return 0
	}

	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "response_") || !strings.HasSuffix(name, ".mp3") {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
			log.Printf("[sweeper] failed to remove %s: %v", name, err)
			continue
		}
		removed++
	}
	return removed
}
