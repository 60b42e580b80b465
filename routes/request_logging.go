/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/flamego/flamego"

	"github.com/techcare/dashboard/logging"
	"github.com/techcare/dashboard/metrics"
)

var requestLogger = logging.Logger(logging.SourceWebRequest)

// Paths reported as their own route label; anything else is "other".
var knownRoutes = map[string]bool{
	"/":                true,
	"/patients/select": true,
	"/labs/select":     true,
	"/labs/download":   true,
	"/show-all":        true,
	"/metrics":         true,
	"/healthz":         true,
}

// RequestLogger logs request metadata and timing for each HTTP request and
// counts it in the request metrics.
func RequestLogger(c flamego.Context, m *metrics.Manager) {
	start := time.Now()

	c.Next()

	status := c.ResponseWriter().Status()
	if status == 0 {
		status = http.StatusOK
	}

	fields := []interface{}{
		"event", "request",
		"status", status,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	fields = append(fields, baseRequestFields(c)...)

	requestLogger.Info("request", fields...)

	m.IncHTTPRequest(routeLabel(c.Request().URL.Path), c.Request().Method, strconv.Itoa(status))
}

func routeLabel(path string) string {
	if knownRoutes[path] {
		return path
	}

	return "other"
}

func baseRequestFields(c flamego.Context) []interface{} {
	return []interface{}{
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"ip", clientIP(c),
		"user_agent", c.Request().UserAgent(),
	}
}

func clientIP(c flamego.Context) string {
	forwardedFor := c.Request().Header.Get("X-Forwarded-For")
	if forwardedFor != "" {
		if idx := strings.Index(forwardedFor, ","); idx != -1 {
			forwardedFor = forwardedFor[:idx]
		}

		if ip := strings.TrimSpace(forwardedFor); ip != "" {
			return ip
		}
	}

	return c.RemoteAddr()
}
