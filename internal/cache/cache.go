// Package cache stores JSON encoded source results under the cache directory for a week.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/statepane/statepane/filesystem"
	"github.com/statepane/statepane/log"
	"github.com/statepane/statepane/where"
)

const TTL = 7 * 24 * time.Hour

func dir() string {
	path := filepath.Join(where.Cache(), "results")
	_ = filesystem.API().MkdirAll(path, 0o755)
	return path
}

// GenerateKey hashes a query and the name of the source producing it.
func GenerateKey(query, source string) string {
	sanitized := strings.ToLower(strings.ReplaceAll(query, " ", "")) + source
	hash := sha256.Sum256([]byte(sanitized))
	return hex.EncodeToString(hash[:])
}

// Read decodes the entry for key into target, reporting false if it is missing, expired or invalid.
func Read(key string, target any) bool {
	path := filepath.Join(dir(), key)

	info, err := filesystem.API().Stat(path)
	if err != nil || time.Since(info.ModTime()) > TTL {
		return false
	}

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}

	if err := json.Unmarshal(data, target); err != nil {
		log.Warnf("cache: dropping invalid entry %s: %v", key, err)
		_ = filesystem.API().Remove(path)
		return false
	}
	return true
}

// Write stores data under key, replacing the entry atomically.
func Write(key string, data any) error {
	path := filepath.Join(dir(), key)
	tmp := path + ".tmp"

	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if err := filesystem.API().WriteFile(tmp, encoded, 0o644); err != nil {
		return err
	}

	return filesystem.API().Rename(tmp, path)
}

// CollectGarbage removes expired entries in the background.
func CollectGarbage() {
	go func() {
		_ = filesystem.API().Walk(dir(), func(path string, info fs.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return nil
			}
			if time.Since(info.ModTime()) > TTL {
				_ = filesystem.API().Remove(path)
			}
			return nil
		})
	}()
}
