/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/techcare/dashboard/dashboard"
	"github.com/techcare/dashboard/logging"
)

const (
	dashboardTemplate = "dashboard"
	dashboardPath     = "/"
)

var dashboardLogger = logging.Logger(logging.SourceWeb)

// Options configures the dashboard handlers. It is mapped into the
// flamego injector at startup.
type Options struct {
	// Hooks the template exposes. Nil means all of them.
	Hooks []dashboard.Hook
}

// Dashboard renders the dashboard page. A plain load fetches the patient;
// the load that follows a gesture rebinds the cached patient.
func Dashboard(
	c flamego.Context,
	s session.Session,
	t template.Template,
	data template.Data,
	ctl *dashboard.Controller,
	opts Options,
	flash session.Flash,
) {
	setSiteTitle(data)

	page := NewPage(data, opts.Hooks)
	var res dashboard.LoadResult
	if takeRebind(s) {
		res = ctl.Rebind(c.Request().Context(), page, loadSelection(s))
	} else {
		res = ctl.Render(c.Request().Context(), page, loadSelection(s))
	}
	storeSelection(s, res.Selection)

	if res.Banner != nil {
		data["Banner"] = res.Banner
	}

	if msg, ok := flashMessage(flash); ok {
		data["Flash"] = msg
	}

	t.HTML(http.StatusOK, dashboardTemplate)
}

// SelectPatient activates a patient-list item.
func SelectPatient(c flamego.Context, s session.Session, ctl *dashboard.Controller) {
	name, ok := formName(c, s)
	if !ok {
		return
	}

	sel := loadSelection(s)
	if err := ctl.SelectPatient(&sel, name); err != nil {
		gestureFailed(c, s, "select patient", err)
		return
	}

	storeSelection(s, sel)
	backToDashboard(c, s)
}

// SelectLabResult selects a lab-result item.
func SelectLabResult(c flamego.Context, s session.Session, ctl *dashboard.Controller) {
	name, ok := formName(c, s)
	if !ok {
		return
	}

	sel := loadSelection(s)
	if err := ctl.SelectLabResult(&sel, name); err != nil {
		gestureFailed(c, s, "select lab result", err)
		return
	}

	storeSelection(s, sel)
	backToDashboard(c, s)
}

// DownloadLabResult announces a lab result download. The selection is
// left as it was.
func DownloadLabResult(c flamego.Context, s session.Session, ctl *dashboard.Controller) {
	name, ok := formName(c, s)
	if !ok {
		return
	}

	msg, err := ctl.Download(name)
	if err != nil {
		gestureFailed(c, s, "download lab result", err)
		return
	}

	SetInfoFlash(s, msg)
	backToDashboard(c, s)
}

// ShowAll shows every field of the current patient.
func ShowAll(c flamego.Context, s session.Session, ctl *dashboard.Controller) {
	msg, err := ctl.ShowAll()
	if err != nil {
		gestureFailed(c, s, "show all information", err)
		return
	}

	SetInfoFlash(s, msg)
	backToDashboard(c, s)
}

// Healthz reports liveness.
func Healthz(c flamego.Context) {
	c.ResponseWriter().Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.ResponseWriter().WriteHeader(http.StatusOK)
	_, _ = c.ResponseWriter().Write([]byte("ok"))
}

func formName(c flamego.Context, s session.Session) (string, bool) {
	if err := c.Request().ParseForm(); err != nil {
		dashboardLogger.Warn("failed to parse form", "path", c.Request().URL.Path, "error", err)
		SetErrorFlash(s, "Failed to parse form data")
		backToDashboard(c, s)

		return "", false
	}

	name := strings.TrimSpace(c.Request().Form.Get("name"))
	if name == "" {
		dashboardLogger.Warn("gesture rejected", "path", c.Request().URL.Path, "error", errNameRequired)
		SetErrorFlash(s, "Name is required")
		backToDashboard(c, s)

		return "", false
	}

	return name, true
}

func gestureFailed(c flamego.Context, s session.Session, action string, err error) {
	switch {
	case dashboard.IsNoPatientLoaded(err):
		SetErrorFlash(s, "Patient data is not loaded yet")
	case dashboard.IsSelectionError(err):
		SetErrorFlash(s, "Selection rejected: "+err.Error())
	default:
		SetErrorFlash(s, "Failed to "+action)
	}

	dashboardLogger.Warn("gesture rejected", "action", action, "error", err)
	backToDashboard(c, s)
}

// backToDashboard redirects a gesture to the dashboard, which then shows
// the cached patient.
func backToDashboard(c flamego.Context, s session.Session) {
	markRebind(s)
	c.Redirect(dashboardPath, http.StatusSeeOther)
}
