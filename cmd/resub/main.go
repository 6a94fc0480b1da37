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

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// Exit codes. A fatal error aborts before any file is touched; an incomplete
// batch means the run finished but one or more files failed.
const (
	exitOK         = 0
	exitFatal      = 1
	exitIncomplete = 2
)

func main() {
	ctx := context.Background()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, errIncompleteBatch) {
			os.Exit(exitIncomplete)
		}
		os.Exit(exitFatal)
	}
	os.Exit(exitOK)
}

// setupLogging configures the global zerolog stream on stderr. The user
// output on stdout is handled by pkg/report, not by the logger.
func setupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
