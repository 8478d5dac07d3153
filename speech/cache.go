package speech

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// Key returns the hex-encoded SHA-256 of the ASCII-encoded normalized text.
func Key(normalizedText string) string {
	sum := sha256.Sum256([]byte(normalizedText))
	return hex.EncodeToString(sum[:])
}

// Cache stores one audio file per content hash under a single directory.
// Writes go through a temp file and rename, so concurrent misses for the
// same key at worst re-synthesize and never leave a torn file behind.
type Cache struct {
	dir string
}

// NewCache creates the cache directory if needed and returns a cache over it.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create synthesis cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

// Path returns the storage path for a key/extension pair.
func (c *Cache) Path(key, ext string) string {
	return filepath.Join(c.dir, key+"."+ext)
}

// Lookup returns the stored path for a key and whether it exists.
func (c *Cache) Lookup(key, ext string) (string, bool) {
	path := c.Path(key, ext)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	return path, true
}

// Store persists audio bytes for a key atomically and returns the final path.
func (c *Cache) Store(key, ext string, audio []byte) (string, error) {
	tmp, err := os.CreateTemp(c.dir, key+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create synthesis temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(audio); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write synthesis temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close synthesis temp file: %w", err)
	}

	path := c.Path(key, ext)
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("publish synthesis file: %w", err)
	}
	return path, nil
}
