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

package pattern

import (
	"regexp"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrBadPattern indicates the search pattern is not a valid regular expression.
var ErrBadPattern = errors.New("invalid search pattern")

// 🔍 Matcher owns one compiled search pattern and its replacement template.
// It is compiled once, carries no mutable state, and is safe to reuse across
// any number of files.
type Matcher struct {
	re       *regexp.Regexp
	template string
}

// Compile compiles expr and prepares the replacement template. Backreferences
// in the template may use either `\1` or `$1`/`${name}` syntax; `\N` forms
// are rewritten to `${N}` so both expand the same way. A `$` or `\N` that
// does not name a group of the pattern stays literal instead of expanding to
// nothing.
func Compile(expr, replacement string) (*Matcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Errorf("compiling %q: %w: %v", expr, ErrBadPattern, err)
	}
	return &Matcher{
		re:       re,
		template: translateTemplate(replacement, re),
	}, nil
}

// Substitute replaces every non-overlapping, leftmost-first occurrence of the
// pattern in content and reports how many matches there were. When nothing
// matches, content is returned unchanged with a zero count.
func (m *Matcher) Substitute(content string) (string, int) {
	matches := m.re.FindAllStringIndex(content, -1)
	if len(matches) == 0 {
		return content, 0
	}
	return m.re.ReplaceAllString(content, m.template), len(matches)
}

// String returns the source text of the compiled pattern.
func (m *Matcher) String() string {
	return m.re.String()
}

// translateTemplate rewrites the replacement template into the form that
// regexp.Regexp.Expand understands: `\N` group references become `${N}`, and
// any `$` that does not introduce a reference to a group of re is escaped to
// `$$` so it survives expansion as a literal dollar sign. `\\` becomes a
// literal backslash and any other escape is passed through untouched.
func translateTemplate(replacement string, re *regexp.Regexp) string {
	var b strings.Builder
	b.Grow(len(replacement))
	for i := 0; i < len(replacement); i++ {
		c := replacement[i]
		switch {
		case c == '\\' && i+1 < len(replacement):
			next := replacement[i+1]
			switch {
			case next >= '0' && next <= '9':
				j := i + 1
				for j < len(replacement) && isDigit(replacement[j]) {
					j++
				}
				if validGroup(replacement[i+1:j], re) {
					b.WriteString("${")
					b.WriteString(replacement[i+1 : j])
					b.WriteString("}")
				} else {
					// Reference to a group the pattern does not have.
					b.WriteString(replacement[i:j])
				}
				i = j - 1
			case next == '\\':
				b.WriteByte('\\')
				i++
			default:
				b.WriteByte(c)
			}
		case c == '$':
			if i+1 < len(replacement) && replacement[i+1] == '$' {
				b.WriteString("$$")
				i++
				continue
			}
			if n := referenceLen(replacement[i+1:], re); n > 0 {
				b.WriteString(replacement[i : i+1+n])
				i += n
				continue
			}
			b.WriteString("$$")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// referenceLen returns the length of the group reference at the start of s
// (the text after a `$`), or 0 when s does not reference a group of re.
func referenceLen(s string, re *regexp.Regexp) int {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 0 || !validGroup(s[1:end], re) {
			return 0
		}
		return end + 1
	}

	j := 0
	for j < len(s) && isWordByte(s[j]) {
		j++
	}
	if j == 0 || !validGroup(s[:j], re) {
		return 0
	}
	return j
}

// validGroup reports whether name denotes a capture group of re, either by
// number (0 is the whole match) or by name.
func validGroup(name string, re *regexp.Regexp) bool {
	if name == "" {
		return false
	}

	allDigits := true
	for i := 0; i < len(name); i++ {
		if !isDigit(name[i]) {
			allDigits = false
			break
		}
	}
	if allDigits {
		n, err := strconv.Atoi(name)
		return err == nil && n <= re.NumSubexp()
	}

	for _, sub := range re.SubexpNames() {
		if sub == name {
			return true
		}
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordByte(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
