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
	"gitlab.com/tozd/go/errors"
)

// Per-file errors are recorded in the run summary and never stop the
// traversal. The fatal pre-traversal errors live where they are produced:
// pattern.ErrBadPattern and walker.ErrInvalidRoot.
var (
	// ErrRead indicates a file could not be read or is not valid text.
	ErrRead = errors.New("read error")

	// ErrWrite indicates a file could not be written back.
	ErrWrite = errors.New("write error")
)
