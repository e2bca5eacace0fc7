// Package where resolves the directories and files statepane reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/statepane/statepane/constant"
	"github.com/statepane/statepane/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "STATEPANE_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the configuration directory: $STATEPANE_CONFIG_PATH, or the user config dir.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return mkdir(filepath.Join(base, constant.App))
}

// Cache is the persistent cache directory. It falls back to ./cache if the user cache dir is unknown.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return mkdir(filepath.Join(base, constant.App))
}

// Logs is where daily log files are written.
func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Sources holds custom Lua providers.
func Sources() string {
	return mkdir(filepath.Join(Config(), "sources"))
}

// History is the file of recently loaded targets.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Queries is the file of target suggestions.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Temp is a scratch directory removed by "statepane clear".
func Temp() string {
	return mkdir(filepath.Join(os.TempDir(), constant.App))
}
