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

package utils

import "context"

type correlationIDCtxKey struct{}

// CorrelationIDHeader carries the request correlation id on the wire.
const CorrelationIDHeader = "X-Correlation-ID"

// WithCorrelationID stores the correlation id in the context.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDCtxKey{}, correlationID)
}

// GetCorrelationID returns the correlation id, or empty when absent.
func GetCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDCtxKey{}).(string); ok {
		return id
	}
	return ""
}
