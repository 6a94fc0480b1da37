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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/chabrovs/resub/pkg/pattern"
	"github.com/chabrovs/resub/pkg/walker"
)

// 🚂 Engine composes the tree walker and the file processor: it drives one
// substitution run over a directory tree and aggregates the per-file outcomes
// into a RunSummary.
type Engine struct {
	req      Request
	matcher  *pattern.Matcher
	filter   walker.ExtensionFilter
	observer Observer
}

// New validates the request and builds an engine. The pattern is compiled and
// the root directory checked up front, so a bad request fails here with no
// side effects on any file.
func New(req Request, observer Observer) (*Engine, error) {
	matcher, err := pattern.Compile(req.Pattern, req.Replacement)
	if err != nil {
		return nil, err
	}

	if err := walker.ValidateRoot(req.Root); err != nil {
		return nil, err
	}

	if observer == nil {
		observer = nopObserver{}
	}

	return &Engine{
		req:      req,
		matcher:  matcher,
		filter:   walker.NewExtensionFilter(req.Extensions),
		observer: observer,
	}, nil
}

// Run visits every candidate file sequentially in traversal order, applying
// the substitution and write-back policy to each. Per-file errors are
// recorded in the summary and never abort the run; files written before a
// later failure stay written. The returned error is non-nil only when the
// traversal itself could not proceed.
func (e *Engine) Run(ctx context.Context) (*RunSummary, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().
		Str("root", e.req.Root).
		Str("pattern", e.matcher.String()).
		Bool("force", e.req.Force).
		Msg("starting run")

	summary := &RunSummary{}

	err := walker.Walk(ctx, e.req.Root, e.filter, e.req.IgnoreGlobs, func(path string) error {
		outcome := e.processFile(ctx, path)
		summary.add(outcome)
		e.observer.FileProcessed(outcome)
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %q: %w", e.req.Root, err)
	}

	logger.Debug().
		Int("visited", summary.FilesVisited).
		Int("matched", summary.FilesMatched).
		Int("written", summary.FilesWritten).
		Int("errors", len(summary.Errors)).
		Msg("run complete")

	e.observer.RunCompleted(summary)
	return summary, nil
}

type nopObserver struct{}

func (nopObserver) FileProcessed(FileOutcome) {}

func (nopObserver) RunCompleted(*RunSummary) {}
