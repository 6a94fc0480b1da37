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
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// formatVersion assembles the version string from the build metadata stamped
// into the binary. Without VCS stamping (go test, plain go build) it degrades
// to the module version and toolchain info.
func formatVersion() string {
	version := "dev"
	revision := ""
	built := ""
	modified := false

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" {
			version = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = s.Value
			case "vcs.time":
				built = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "resub %s (%s, %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if revision != "" {
		fmt.Fprintf(&b, "  revision %s", revision)
		if modified {
			b.WriteString(" (modified)")
		}
		if built != "" {
			fmt.Fprintf(&b, ", built %s", built)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
