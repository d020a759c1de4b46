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

// Package logger attaches a per-request slog.Logger to the request
// context and logs request completion.
package logger

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ccsops/gateway-console-service/utils"
)

type loggerCtxKey struct{}

// statusRecorder captures the response status for the completion log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// RequestLogger returns middleware that builds a request-scoped logger
// (method, path, correlation id) and logs each completed request.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slog.Default().With(
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if correlationID := utils.GetCorrelationID(r.Context()); correlationID != "" {
				log = log.With(slog.String("correlationId", correlationID))
			}

			ctx := context.WithValue(r.Context(), loggerCtxKey{}, log)
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			start := time.Now()
			next.ServeHTTP(recorder, r.WithContext(ctx))

			log.Info("request completed",
				slog.Int("status", recorder.status),
				slog.Duration("duration", time.Since(start)))
		})
	}
}

// GetLogger returns the request-scoped logger, falling back to the
// default logger outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(loggerCtxKey{}).(*slog.Logger); ok {
		return log
	}
	return slog.Default()
}
