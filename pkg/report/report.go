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

package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/chabrovs/resub/pkg/engine"
)

// 📢 Reporter prints user-facing progress and the final summary. It
// implements engine.Observer: per-file lines when verbose is on, error lines
// always, and one summary at the end. Diagnostic detail goes to zerolog.
type Reporter struct {
	console io.Writer
	verbose bool
	log     zerolog.Logger
}

// New creates a reporter writing user output to console.
func New(console io.Writer, verbose bool, log zerolog.Logger) *Reporter {
	return &Reporter{
		console: console,
		verbose: verbose,
		log:     log,
	}
}

// FileProcessed prints one line per visited file: its path, whether the
// pattern matched, and whether it was written back.
func (r *Reporter) FileProcessed(outcome engine.FileOutcome) {
	if outcome.Err != nil {
		r.printer(pterm.Error, "❌").Println(outcome.Err.Error())
		r.log.Error().Err(outcome.Err).Str("path", outcome.Path).Msg("file skipped")
		return
	}

	if !r.verbose {
		return
	}

	switch {
	case outcome.Matched:
		r.printer(pterm.Success, "🔄").Printfln("%s (%d replacements, written)", outcome.Path, outcome.Replacements)
	case outcome.Written:
		// Force mode: no match, rewritten anyway.
		r.printer(pterm.Info, "✏️").Printfln("%s (no match, rewritten)", outcome.Path)
	default:
		r.printer(pterm.Debug, "⏭️").Printfln("%s (no match)", outcome.Path)
	}
}

// RunCompleted prints the aggregate counts and any recorded errors.
func (r *Reporter) RunCompleted(summary *engine.RunSummary) {
	fmt.Fprintf(r.console, "%s %s visited, %s matched, %s written, %s replacements\n",
		color.New(color.Bold).Sprint("Summary:"),
		color.CyanString("%d files", summary.FilesVisited),
		color.GreenString("%d", summary.FilesMatched),
		color.GreenString("%d", summary.FilesWritten),
		color.GreenString("%d", summary.Replacements),
	)

	if !summary.HasErrors() {
		return
	}

	fmt.Fprintf(r.console, "%s\n", color.RedString("completed with %d errors:", len(summary.Errors)))
	for _, fe := range summary.Errors {
		fmt.Fprintf(r.console, "  - %s\n", fe.Err.Error())
	}
}

// printer clones a pterm prefix printer onto the reporter's console. Debug
// lines are printed unconditionally; verbosity is decided by the caller, not
// by pterm's global debug switch.
func (r *Reporter) printer(base pterm.PrefixPrinter, prefix string) *pterm.PrefixPrinter {
	p := base.WithPrefix(pterm.Prefix{Text: prefix, Style: base.Prefix.Style}).
		WithWriter(r.console)
	p.Debugger = false
	return p
}
