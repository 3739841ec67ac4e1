package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Collection là một file JSON chứa array của một entity.
// File được đọc và ghi lại toàn bộ trên mỗi mutation (read-modify-write).
// Mutex chỉ serialize writers trong cùng process; hai process ghi cùng
// file vẫn có thể mất update của nhau. Backend này là local-development
// fallback, không dành cho multi-instance production.
type Collection[T any] struct {
	mu   sync.RWMutex
	path string
}

// NewCollection trỏ tới <dir>/<name>.json; file chưa tồn tại coi như rỗng.
func NewCollection[T any](dir, name string) *Collection[T] {
	return &Collection[T]{path: filepath.Join(dir, name+".json")}
}

// Read trả về toàn bộ records trong file.
func (c *Collection[T]) Read() ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.readLocked()
}

// Write thay thế toàn bộ nội dung file.
func (c *Collection[T]) Write(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeLocked(items)
}

// Mutate chạy một read-modify-write atomically trong process.
func (c *Collection[T]) Mutate(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.readLocked()
	if err != nil {
		return err
	}

	updated, err := fn(items)
	if err != nil {
		return err
	}

	return c.writeLocked(updated)
}

func (c *Collection[T]) readLocked() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []T{}, nil
		}
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (c *Collection[T]) writeLocked(items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(c.path, data, 0o644)
}
