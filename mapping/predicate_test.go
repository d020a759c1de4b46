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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePredicate(t *testing.T) {
	tests := []struct {
		name      string
		predicate string
		expected  string
	}{
		{
			name:      "paths only",
			predicate: "Paths: [/service1/api], match trailing slash: true",
			expected:  "Path: /service1/api",
		},
		{
			name:      "paths and header",
			predicate: "Paths: [/service2/api], match trailing slash: true && Header: auth regexp=Auth2",
			expected:  "Path: /service2/api, Header: auth regexp=Auth2",
		},
		{
			name:      "paths and methods",
			predicate: "Paths: [/service3/api], match trailing slash: true && Methods: [POST]",
			expected:  "Path: /service3/api, Method: POST",
		},
		{
			name:      "multiple methods",
			predicate: "Paths: [/service17/api], match trailing slash: true && Methods: [GET, POST]",
			expected:  "Path: /service17/api, Method: GET, POST",
		},
		{
			name:      "three clauses keep input order",
			predicate: "Paths: [/service18/api], match trailing slash: true && Header: auth regexp=Auth18 && Methods: [PUT]",
			expected:  "Path: /service18/api, Header: auth regexp=Auth18, Method: PUT",
		},
		{
			name:      "singular method clause accepted",
			predicate: "Method: GET",
			expected:  "Method: GET",
		},
		{
			name:      "unrecognized clauses dropped",
			predicate: "Host: example.com && Query: debug",
			expected:  "",
		},
		{
			name:      "empty input",
			predicate: "",
			expected:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePredicate(tt.predicate))
		})
	}
}
