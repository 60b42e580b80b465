// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flamego/flamego"

	"github.com/techcare/dashboard/config"
	"github.com/techcare/dashboard/dashboard"
	"github.com/techcare/dashboard/metrics"
	"github.com/techcare/dashboard/patientapi"
	"github.com/techcare/dashboard/routes"
)

type stubAcquirer struct {
	acq *patientapi.Acquisition
}

func (a stubAcquirer) Acquire(context.Context) (*patientapi.Acquisition, error) {
	return a.acq, nil
}

func TestConfigureEmptyNotFoundHandlerReturnsStatusOnly(t *testing.T) {
	t.Parallel()

	f := flamego.New()
	configureEmptyNotFoundHandler(f)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}

	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty 404 body, got %q", rec.Body.String())
	}
}

func TestNewWebServesDashboardAndMetrics(t *testing.T) {
	t.Parallel()

	cfg := config.New()
	cfg.CSRFSecret = "test-secret"

	m := metrics.NewManager(metrics.WithNamespace("web"))
	acq := &patientapi.Acquisition{Patient: patientapi.Record{Name: "Jessica Taylor"}}
	ctl := dashboard.NewController(stubAcquirer{acq: acq}, bannerTiming(cfg), m)

	f, err := newWeb(cfg, ctl, m, routes.Options{})
	if err != nil {
		t.Fatalf("newWeb: %v", err)
	}

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `name="_csrf"`) {
		t.Fatal("expected csrf field in gesture forms")
	}
	if rec.Header().Get("Cache-Control") != "no-store, max-age=0" {
		t.Fatalf("unexpected cache header %q", rec.Header().Get("Cache-Control"))
	}

	rec = httptest.NewRecorder()
	f.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(rec.Body.String(), `web_http_requests_total{method="GET",route="/",status_code="200"} 1`) {
		t.Fatalf("expected request metric, got %q", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	f.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/show-all", nil))
	if rec.Code == http.StatusSeeOther {
		t.Fatal("expected gesture without csrf token to be rejected")
	}
}

func TestWriteDisplay(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writeDisplay(&buf, &patientapi.Acquisition{Patient: patientapi.Record{
		Name:       "Jessica Taylor",
		LabResults: []string{"Blood Tests", "CT Scans"},
	}})

	out := buf.String()
	for _, want := range []string{
		"Patient:            Jessica Taylor",
		"Temperature:        98.6°F",
		"Blood pressure:     160/78 mmHg",
		"Oct 2023",
		"Lab results: Blood Tests, CT Scans",
		"Insurance:          -",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestWriteChartFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bp.html")
	if err := writeChartFile(path, dashboard.FallbackSeries()); err != nil {
		t.Fatalf("writeChartFile: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read chart: %v", err)
	}
	if !strings.Contains(string(content), "Mar 2024") {
		t.Fatal("expected chart months in output")
	}
}
