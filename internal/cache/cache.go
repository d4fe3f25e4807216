// Package cache provides background maintenance for localized on-disk cache artifacts.
package cache

import (
	"os"
	"time"

	"github.com/kata-cli/kata/filesystem"
	"github.com/kata-cli/kata/where"
	"github.com/spf13/afero"
)

// TTL is the maximum age of a cache entry before it becomes eligible for pruning.
const TTL = 7 * 24 * time.Hour

// CollectGarbage prunes expired cache entries from the localized cache directory.
func CollectGarbage() {
	dir := where.Cache()

	_ = afero.Walk(filesystem.API(), dir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if time.Since(info.ModTime()) > TTL {
			_ = filesystem.API().Remove(path)
		}

		return nil
	})
}
