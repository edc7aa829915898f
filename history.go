package ask

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// HistoryConfig configures a History.
type HistoryConfig struct {
	// MaxEntries caps the entries kept in memory. Zero means no limit.
	MaxEntries int
	// File is where the history is persisted. Empty keeps it in memory.
	// A leading "~" is expanded to the home directory.
	File string
	// MaxFileSize is the size in bytes above which Save rotates the file.
	MaxFileSize int64
	// MaxBackups is the number of rotated files kept (File.1 ... File.N).
	MaxBackups int
}

// DefaultHistoryConfig returns an in-memory configuration with the default limits.
func DefaultHistoryConfig() HistoryConfig {
	return HistoryConfig{
		MaxEntries:  1000,
		MaxFileSize: 1024 * 1024,
		MaxBackups:  3,
	}
}

// DefaultHistoryFile returns $XDG_CONFIG_HOME/ask/history, falling back to
// ~/.config/ask/history. It returns "" when no home directory is known.
func DefaultHistoryFile() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "ask", "history")
}

// History is the list of previous answers a Text prompt recalls with Up
// and Down. Index 0 is the oldest entry.
type History struct {
	config  HistoryConfig
	entries []string
}

// NewHistory returns a History and loads config.File when it exists.
func NewHistory(config HistoryConfig) (*History, error) {
	if config.MaxFileSize <= 0 {
		config.MaxFileSize = 1024 * 1024
	}
	if config.MaxBackups < 0 {
		config.MaxBackups = 3
	}
	if config.File != "" {
		path, err := expandHistoryPath(config.File)
		if err != nil {
			return nil, err
		}
		config.File = path
	}

	h := &History{config: config}
	if err := h.load(); err != nil {
		return nil, err
	}
	return h, nil
}

// File returns the resolved history file path.
func (h *History) File() string {
	return h.config.File
}

// Add appends entry. Empty entries and repeats of the newest entry are
// ignored.
func (h *History) Add(entry string) {
	if strings.TrimSpace(entry) == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		return
	}
	h.entries = append(h.entries, entry)
	if h.config.MaxEntries > 0 && len(h.entries) > h.config.MaxEntries {
		h.entries = h.entries[len(h.entries)-h.config.MaxEntries:]
	}
}

// Entries returns a copy of the entries, oldest first.
func (h *History) Entries() []string {
	return append([]string{}, h.entries...)
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// At returns entry i, oldest first.
func (h *History) At(i int) string {
	return h.entries[i]
}

// Clear drops every entry from memory.
func (h *History) Clear() {
	h.entries = nil
}

// Save writes the entries to the history file, rotating it first when it
// grew beyond MaxFileSize. It is a no-op for in-memory histories.
func (h *History) Save() error {
	if h.config.File == "" {
		return nil
	}
	if err := h.rotateIfNeeded(); err != nil {
		return fmt.Errorf("failed to rotate history file: %w", err)
	}
	if dir := filepath.Dir(h.config.File); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}
	return h.write(h.entries)
}

func (h *History) load() error {
	if h.config.File == "" {
		return nil
	}
	file, err := os.Open(h.config.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		h.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}
	return nil
}

func (h *History) write(entries []string) error {
	file, err := os.Create(h.config.File)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	w := bufio.NewWriter(file)
	for _, entry := range entries {
		if _, err := fmt.Fprintln(w, entry); err != nil {
			file.Close()
			return fmt.Errorf("failed to write history entry: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return file.Close()
}

func (h *History) rotateIfNeeded() error {
	info, err := os.Stat(h.config.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.Size() < h.config.MaxFileSize {
		return nil
	}
	return h.rotate()
}

// rotate shifts File.i to File.i+1, moves File to File.1 and keeps the
// newer half of the entries once there are 100 or more of them.
func (h *History) rotate() error {
	if h.config.MaxBackups <= 0 {
		return os.Truncate(h.config.File, 0)
	}

	oldest := h.backup(h.config.MaxBackups)
	if err := os.Remove(oldest); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove oldest backup: %w", err)
	}
	for i := h.config.MaxBackups - 1; i >= 1; i-- {
		err := os.Rename(h.backup(i), h.backup(i+1))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to rotate backup %d: %w", i, err)
		}
	}
	if err := os.Rename(h.config.File, h.backup(1)); err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	keep := len(h.entries)
	if keep >= 100 {
		keep /= 2
	}
	h.entries = h.entries[len(h.entries)-keep:]
	return nil
}

func (h *History) backup(i int) string {
	return h.config.File + "." + strconv.Itoa(i)
}

// expandHistoryPath expands a leading "~" and makes path absolute.
func expandHistoryPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to convert to absolute path: %w", err)
	}
	return abs, nil
}
