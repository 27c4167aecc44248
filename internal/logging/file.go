package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	logDirPerm  = 0o755
	logFilePerm = 0o600

	defaultMaxSizeMB  = 5
	defaultMaxBackups = 3
)

// FileWriter appends log lines to a file and rolls it over once it grows
// past maxSize, keeping at most maxBackups older files next to it.
type FileWriter struct {
	mu         sync.Mutex
	path       string
	maxSize    int64
	maxBackups int
	file       *os.File
	size       int64
}

// NewFileWriter opens path for appending, creating parent directories.
// Zero limits select the defaults.
func NewFileWriter(path string, maxSizeMB, maxBackups int) (*FileWriter, error) {
	if maxSizeMB <= 0 {
		maxSizeMB = defaultMaxSizeMB
	}
	if maxBackups <= 0 {
		maxBackups = defaultMaxBackups
	}
	if err := os.MkdirAll(filepath.Dir(path), logDirPerm); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	w := &FileWriter{
		path:       path,
		maxSize:    int64(maxSizeMB) * 1024 * 1024,
		maxBackups: maxBackups,
	}
	if err := w.open(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *FileWriter) open() error {
	if info, err := os.Stat(w.path); err == nil {
		w.size = info.Size()
	} else {
		w.size = 0
	}

	file, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	w.file = file
	return nil
}

// Write implements io.Writer.
func (w *FileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		if err := w.open(); err != nil {
			return 0, err
		}
	}
	if w.size > 0 && w.size+int64(len(p)) > w.maxSize {
		if err := w.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := w.file.Write(p)
	w.size += int64(n)
	return n, err
}

func (w *FileWriter) rotate() error {
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	w.file = nil

	backup := fmt.Sprintf("%s.%s", w.path, time.Now().Format("2006-01-02-15-04-05.000"))
	if err := os.Rename(w.path, backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	w.prune()
	return w.open()
}

// prune removes the oldest backups beyond maxBackups.
func (w *FileWriter) prune() {
	dir, base := filepath.Split(w.path)
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var backups []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), base+".") {
			backups = append(backups, e.Name())
		}
	}
	if len(backups) <= w.maxBackups {
		return
	}

	// Timestamp suffixes sort chronologically.
	sort.Strings(backups)
	for _, name := range backups[:len(backups)-w.maxBackups] {
		_ = os.Remove(filepath.Join(dir, name))
	}
}

// Close closes the current file.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

// NewWithFile builds a logger writing to path and returns a cleanup
// function closing the file.
func NewWithFile(cfg Config, path string) (zerolog.Logger, func(), error) {
	w, err := NewFileWriter(path, 0, 0)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}
	cfg.Output = w
	return New(cfg), func() { _ = w.Close() }, nil
}
