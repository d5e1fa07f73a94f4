//nolint:revive // var-naming - package name is meaningful
package util

import (
	"os"
	"path/filepath"
	"strings"
)

// HomeDir returns the user's home directory
func HomeDir() string {
	home, _ := os.UserHomeDir()
	return home
}

// ExpandPath expands a leading ~ to the home directory and resolves relative
// paths against base. An empty base leaves relative paths as they are.
func ExpandPath(path, base string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if path == "~" {
		return HomeDir()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(HomeDir(), path[2:])
	}
	if filepath.IsAbs(path) || base == "" {
		return path
	}
	return filepath.Join(base, path)
}

// IsRemote reports whether location is an http(s) URL rather than a path.
func IsRemote(location string) bool {
	l := strings.ToLower(strings.TrimSpace(location))
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

// CacheDir returns the directory rulegen keeps fetched documents in.
// RULEGEN_CACHE_DIR overrides the platform cache location.
func CacheDir() string {
	if dir := strings.TrimSpace(os.Getenv("RULEGEN_CACHE_DIR")); dir != "" {
		return ExpandPath(dir, "")
	}
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "rulegen")
	}
	return filepath.Join(HomeDir(), ".cache", "rulegen")
}
