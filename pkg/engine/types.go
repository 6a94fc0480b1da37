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

// 📋 Request carries every input of one substitution run. It is built once at
// startup and never mutated afterwards; there is no ambient configuration.
type Request struct {
	// Root is the directory to descend.
	Root string

	// Pattern is the search regular expression.
	Pattern string

	// Replacement is the template substituted for each match. It may
	// reference capture groups as `\1` or `$1`.
	Replacement string

	// Extensions restricts which files are visited. Tokens carry no
	// leading dot and match case-insensitively; empty means every file.
	Extensions []string

	// IgnoreGlobs skips paths matching any of these doublestar patterns.
	IgnoreGlobs []string

	// Force rewrites every visited file even when nothing matched.
	Force bool

	// Verbose emits one line per visited file.
	Verbose bool
}

// 📄 FileOutcome is the result of processing a single file.
type FileOutcome struct {
	Path         string
	Matched      bool
	Written      bool
	Replacements int
	Err          error
}

// FileError pairs a path with the per-file error recorded for it.
type FileError struct {
	Path string
	Err  error
}

// 📊 RunSummary aggregates every outcome of one run, in traversal order.
type RunSummary struct {
	FilesVisited int
	FilesMatched int
	FilesWritten int
	Replacements int
	Errors       []FileError
}

// add folds one outcome into the summary.
func (s *RunSummary) add(outcome FileOutcome) {
	s.FilesVisited++
	if outcome.Matched {
		s.FilesMatched++
	}
	if outcome.Written {
		s.FilesWritten++
	}
	s.Replacements += outcome.Replacements
	if outcome.Err != nil {
		s.Errors = append(s.Errors, FileError{Path: outcome.Path, Err: outcome.Err})
	}
}

// HasErrors reports whether any per-file error was recorded, meaning the run
// completed but the batch is incomplete.
func (s *RunSummary) HasErrors() bool {
	return len(s.Errors) > 0
}

// Observer receives progress notifications while the engine runs. The engine
// never formats output itself.
type Observer interface {
	// FileProcessed is called once per visited file, in traversal order.
	FileProcessed(outcome FileOutcome)

	// RunCompleted is called once with the final summary.
	RunCompleted(summary *RunSummary)
}
