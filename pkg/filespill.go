// Package pkg provides utilities shared by mutforge commands.
package pkg

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

const spillPattern = "mutforge-spill-*.gob"

// ErrSpillClosed is returned when appending to a closed spill.
var ErrSpillClosed = errors.New("filespill is closed")

// FileSpill is an append-only sequence of T kept in a gob file rather than
// in memory. Items stay readable after Close; Discard deletes the file.
type FileSpill[T any] interface {
	Len() uint64
	Path() string
	Append(item T) error
	AppendBatch(items []T) error
	Get(index uint64) (T, error)
	Range(f func(index uint64, item T) error) error
	Close() error
	Discard() error
}

type fileSpill[T any] struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	encoder *gob.Encoder
	length  uint64
}

// NewFileSpill creates a spill file under dir, or under the system temp
// directory when dir is empty.
func NewFileSpill[T any](dir string) (FileSpill[T], error) {
	if dir == "" {
		dir = os.TempDir()
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("failed to create spill directory", "path", dir, "error", err)
		return nil, fmt.Errorf("create spill directory: %w", err)
	}

	file, err := os.CreateTemp(dir, spillPattern)
	if err != nil {
		slog.Error("failed to create spill file", "path", dir, "error", err)
		return nil, fmt.Errorf("create spill file: %w", err)
	}

	slog.Debug("created filespill", "path", file.Name())

	return &fileSpill[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

func (f *fileSpill[T]) Len() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.length
}

func (f *fileSpill[T]) Path() string {
	return f.path
}

func (f *fileSpill[T]) Append(item T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.appendLocked(item)
}

// AppendBatch writes items under a single lock acquisition; on error the
// items before the failing one stay in the spill.
func (f *fileSpill[T]) AppendBatch(items []T) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range items {
		if err := f.appendLocked(item); err != nil {
			return err
		}
	}

	return nil
}

func (f *fileSpill[T]) appendLocked(item T) error {
	if f.file == nil {
		return ErrSpillClosed
	}

	if err := f.encoder.Encode(item); err != nil {
		slog.Error("failed to encode spill item", "path", f.path, "index", f.length, "error", err)
		return fmt.Errorf("encode item %d: %w", f.length, err)
	}

	f.length++

	return nil
}

func (f *fileSpill[T]) Get(index uint64) (T, error) {
	var found T

	f.mu.Lock()
	length := f.length
	f.mu.Unlock()

	if index >= length {
		return found, fmt.Errorf("index %d out of bounds (length %d)", index, length)
	}

	err := f.Range(func(i uint64, item T) error {
		if i == index {
			found = item
			return io.EOF
		}

		return nil
	})
	if err != nil && !errors.Is(err, io.EOF) {
		var zero T
		return zero, err
	}

	return found, nil
}

// Range decodes items in append order and stops at the first callback error.
func (f *fileSpill[T]) Range(fn func(index uint64, item T) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.length == 0 {
		return nil
	}

	file, err := os.Open(f.path)
	if err != nil {
		slog.Error("failed to open spill for reading", "path", f.path, "error", err)
		return fmt.Errorf("open spill: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close spill reader", "path", f.path, "error", err)
		}
	}()

	decoder := gob.NewDecoder(file)

	for i := range f.length {
		var item T
		if err := decoder.Decode(&item); err != nil {
			slog.Error("failed to decode spill item", "path", f.path, "index", i, "error", err)
			return fmt.Errorf("decode item %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

func (f *fileSpill[T]) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil
	}

	err := f.file.Close()
	f.file = nil

	if err != nil {
		slog.Error("failed to close spill", "path", f.path, "error", err)
		return err
	}

	slog.Debug("closed filespill", "path", f.path, "length", f.length)

	return nil
}

func (f *fileSpill[T]) Discard() error {
	if err := f.Close(); err != nil {
		return err
	}

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove spill: %w", err)
	}

	return nil
}
