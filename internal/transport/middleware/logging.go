package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// sensitiveFields are request body field names that must never reach the
// logs. Login bodies carry plaintext passwords, so filtering is mandatory.
var sensitiveFields = []string{
	"password",
	"token",
	"access_token",
	"refresh_token",
	"authorization",
	"secret",
	"credential",
}

func LoggingMiddleware(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			logger.Info("incoming request",
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"remote_addr", r.RemoteAddr,
				"body", requestBodyForLog(r),
			)

			ww := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(ww, r)

			statusCode := ww.statusCode
			if statusCode == 0 {
				statusCode = http.StatusOK
			}

			logLevel := slog.LevelInfo
			if statusCode >= 500 {
				logLevel = slog.LevelError
			} else if statusCode >= 400 {
				logLevel = slog.LevelWarn
			}

			logger.Log(r.Context(), logLevel, "response",
				"method", r.Method,
				"path", r.URL.Path,
				"status_code", statusCode,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.statusCode = code
	sw.ResponseWriter.WriteHeader(code)
}

// requestBodyForLog reads and restores the body, masking sensitive fields.
// Non-JSON bodies such as workbook uploads are summarized by size only.
func requestBodyForLog(r *http.Request) string {
	if r.Body == nil {
		return ""
	}
	if ct := r.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return ""
	}

	bodyBytes, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	if len(bodyBytes) == 0 {
		return ""
	}

	var data map[string]interface{}
	if err := json.Unmarshal(bodyBytes, &data); err != nil {
		return "[unparseable body]"
	}

	for key := range data {
		lowerKey := strings.ToLower(key)
		for _, field := range sensitiveFields {
			if strings.Contains(lowerKey, field) {
				data[key] = "[FILTERED]"
				break
			}
		}
	}

	filtered, err := json.Marshal(data)
	if err != nil {
		return "[unparseable body]"
	}
	return string(filtered)
}
