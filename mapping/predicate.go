// Copyright (c) 2026, CCS Gateway Operations.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package mapping

import (
	"regexp"
	"strings"
)

// Predicate clause patterns of the gateway's freeform predicate strings.
// The grammar is intentionally limited to what the gateway emits.
var (
	pathsClause   = regexp.MustCompile(`Paths:\s*\[([^\]]+)\]`)
	headerClause  = regexp.MustCompile(`Header:\s*(.*)`)
	methodsClause = regexp.MustCompile(`Methods?\s*:\s*\[?([^\]]+)\]?`)
)

// ParsePredicate extracts the recognized clauses of a predicate string
// and re-emits them as normalized "Label: value" fragments joined by
// ", ". Clauses are joined by "&&" in the input; unrecognized clauses
// are dropped. Nothing recognized yields an empty string.
func ParsePredicate(predicate string) string {
	if predicate == "" {
		return ""
	}

	var fragments []string
	for _, part := range strings.Split(predicate, "&&") {
		part = strings.TrimSpace(part)
		switch {
		case strings.Contains(part, "Paths"):
			if m := pathsClause.FindStringSubmatch(part); m != nil {
				fragments = append(fragments, "Path: "+m[1])
			}
		case strings.Contains(part, "Header"):
			if m := headerClause.FindStringSubmatch(part); m != nil {
				fragments = append(fragments, "Header: "+strings.TrimSpace(m[1]))
			}
		case strings.Contains(part, "Method"):
			if m := methodsClause.FindStringSubmatch(part); m != nil {
				fragments = append(fragments, "Method: "+strings.TrimSpace(m[1]))
			}
		}
	}
	return strings.Join(fragments, ", ")
}
