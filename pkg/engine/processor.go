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

package engine

import (
	"context"
	"os"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// processFile reads one file, applies the substitution, and writes the result
// back when the policy says so: a file is rewritten iff it matched or force
// is set. In force mode the write happens even when the result is
// byte-identical to the original; that rewrite is observable behavior
// (timestamps, write syscall) and is deliberate.
func (e *Engine) processFile(ctx context.Context, path string) FileOutcome {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("reading file")

	content, err := os.ReadFile(path)
	if err != nil {
		return FileOutcome{Path: path, Err: errors.Errorf("%q: %w: %v", path, ErrRead, err)}
	}

	// A file that is not valid UTF-8 is treated as undecodable and skipped.
	if !utf8.Valid(content) {
		return FileOutcome{Path: path, Err: errors.Errorf("%q: %w: not valid UTF-8 text", path, ErrRead)}
	}

	result, count := e.matcher.Substitute(string(content))

	outcome := FileOutcome{
		Path:         path,
		Matched:      count > 0,
		Replacements: count,
	}

	if count == 0 && !e.req.Force {
		return outcome
	}

	if err := os.WriteFile(path, []byte(result), 0o644); err != nil {
		outcome.Err = errors.Errorf("%q: %w: %v", path, ErrWrite, err)
		return outcome
	}

	outcome.Written = true
	return outcome
}
