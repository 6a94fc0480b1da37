// Copyright 2026 chabrovs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package walker

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrInvalidRoot indicates the root path is missing or not a directory.
var ErrInvalidRoot = errors.New("invalid root directory")

// WalkFunc receives each candidate file path as it is discovered.
type WalkFunc func(path string) error

// 🧭 ExtensionFilter is a normalized set of file extensions. The empty filter
// accepts every file.
type ExtensionFilter map[string]struct{}

// NewExtensionFilter builds a filter from raw extension tokens. Tokens are
// lowercased and leading dots are stripped, so ".HTML", "html" and "HTML" all
// denote the same extension. Empty tokens are dropped.
func NewExtensionFilter(extensions []string) ExtensionFilter {
	filter := make(ExtensionFilter, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" {
			continue
		}
		filter[ext] = struct{}{}
	}
	return filter
}

// Match reports whether path passes the filter. Comparison is
// case-insensitive on the extension without its dot.
func (f ExtensionFilter) Match(path string) bool {
	if len(f) == 0 {
		return true
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	_, ok := f[ext]
	return ok
}

// ValidateRoot checks that root exists and is a directory. It is called
// before any file is visited so a bad root never causes partial work.
func ValidateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return errors.Errorf("%q: %w: %v", root, ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return errors.Errorf("%q is not a directory: %w", root, ErrInvalidRoot)
	}
	return nil
}

// Walk descends root and invokes fn for every regular file that passes the
// extension filter and none of the ignore globs. Files are yielded in lexical
// order per directory, one at a time, without materializing the tree up
// front. Directory symlinks are never followed, so cyclic links cannot loop
// the traversal. An error from fn aborts the walk.
func Walk(ctx context.Context, root string, filter ExtensionFilter, ignore []string, fn WalkFunc) error {
	if err := ValidateRoot(root); err != nil {
		return err
	}

	logger := zerolog.Ctx(ctx)

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// An unlistable directory is skipped, not fatal.
			logger.Debug().Str("path", path).Err(err).Msg("skipping unreadable entry")
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if ignored(logger, root, path, ignore) {
			if d.IsDir() && path != root {
				return filepath.SkipDir
			}
			if d.IsDir() {
				return nil
			}
			logger.Debug().Str("path", path).Msg("file ignored by pattern")
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		if !filter.Match(path) {
			return nil
		}

		return fn(path)
	})
}

// ignored checks path against the ignore globs, matching on the slash-form
// path relative to root.
func ignored(logger *zerolog.Logger, root, path string, ignore []string) bool {
	if len(ignore) == 0 {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range ignore {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			logger.Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			return true
		}
	}

	return false
}
