package logging

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// SetupLogging points the standard logger at filename, shared with Bubble
// Tea's own debug output. An empty filename discards everything except
// log.Fatal and panics.
func SetupLogging(filename string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if filename == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(filename, "popchart")
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", filename, err)
	}
	return func() { f.Close() }, nil
}
