package sessionstore

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const header = "# connected wallet account, written by ton_portfolio\n"

// FileStore persists the connected wallet account in a small text file.
// Blank lines and lines starting with '#' are ignored; the last address wins.
type FileStore struct {
	filePath   string
	loggerInfo func(msg string, args ...any)
	mu         sync.Mutex
}

// NewFileStore creates a FileStore backed by filePath.
func NewFileStore(filePath string, loggerInfo func(msg string, args ...any)) *FileStore {
	return &FileStore{filePath: filePath, loggerInfo: loggerInfo}
}

// Load returns the stored address, or "" when nothing is stored.
func (s *FileStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.Open(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to open session file %s: %w", s.filePath, err)
	}
	defer file.Close()

	var address string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		address = line
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("error scanning session file %s: %w", s.filePath, err)
	}

	if s.loggerInfo != nil && address != "" {
		s.loggerInfo("Stored wallet session found", "path", s.filePath)
	}
	return address, nil
}

// Save replaces the stored address.
func (s *FileStore) Save(address string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.filePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create session directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.filePath, []byte(header+address+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write session file %s: %w", s.filePath, err)
	}
	return nil
}

// Clear removes the stored address.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.filePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file %s: %w", s.filePath, err)
	}
	return nil
}
