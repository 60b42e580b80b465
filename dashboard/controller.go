/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/techcare/dashboard/logging"
	"github.com/techcare/dashboard/metrics"
	"github.com/techcare/dashboard/patientapi"
)

// Notification kinds counted in metrics.
const (
	NotificationFailure  = "failure"
	NotificationDownload = "download"
	NotificationShowAll  = "show_all"
)

// Acquirer fetches the patient list and resolves the target patient.
type Acquirer interface {
	Acquire(ctx context.Context) (*patientapi.Acquisition, error)
}

// Controller runs the dashboard load sequence and keeps the last
// successful acquisition for the gesture handlers. It is safe for
// concurrent use.
type Controller struct {
	acquirer Acquirer
	timing   BannerTiming
	metrics  *metrics.Manager
	logger   *log.Logger

	mu      sync.RWMutex
	current *patientapi.Acquisition
}

// NewController creates a controller. m may be nil.
func NewController(acquirer Acquirer, timing BannerTiming, m *metrics.Manager) *Controller {
	return &Controller{
		acquirer: acquirer,
		timing:   timing,
		metrics:  m,
		logger:   logging.Logger(logging.SourceDashboard),
	}
}

// Load performs one acquisition. On success the result replaces the cached
// one; on failure the cache is kept.
func (c *Controller) Load(ctx context.Context) (*patientapi.Acquisition, error) {
	acq, err := c.acquirer.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.current = acq
	c.mu.Unlock()

	return acq, nil
}

// Current returns the last successful acquisition, or nil.
func (c *Controller) Current() *patientapi.Acquisition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.current
}

// LoadResult is the outcome of rendering one page load.
type LoadResult struct {
	Selection Selection
	Skipped   []Hook
	Banner    *Banner
}

// Render loads the patient and applies it to v under sel. A failed load
// still renders the fallback chart and yields a failure banner; the rest
// of the view keeps its prior values.
func (c *Controller) Render(ctx context.Context, v View, sel Selection) LoadResult {
	acq, err := c.Load(ctx)
	if err != nil {
		c.logger.Error("failed to load patient data", "error", err)
		c.metrics.IncNotification(NotificationFailure)

		banner := FailureBanner(err, c.timing)
		res := LoadResult{Selection: sel, Banner: &banner}
		if !BindChart(FallbackSeries(), v) {
			res.Skipped = append(res.Skipped, HookChart)
			c.skipped(res.Skipped)
		}

		return res
	}

	return c.apply(acq, v, sel)
}

// Rebind applies the cached acquisition to v under sel without fetching.
// Without a cached acquisition it falls back to Render.
func (c *Controller) Rebind(ctx context.Context, v View, sel Selection) LoadResult {
	acq := c.Current()
	if acq == nil {
		return c.Render(ctx, v, sel)
	}

	return c.apply(acq, v, sel)
}

func (c *Controller) apply(acq *patientapi.Acquisition, v View, sel Selection) LoadResult {
	sel = sel.Resolve(acq)
	skipped := Apply(Derive(acq, sel), v)
	c.skipped(skipped)

	return LoadResult{Selection: sel, Skipped: skipped}
}

func (c *Controller) skipped(hooks []Hook) {
	for _, h := range hooks {
		c.logger.Debug("view hook missing, binding skipped", "hook", string(h))
		c.metrics.IncSkippedHook(string(h))
	}
}

// SelectPatient activates a patient-list item without re-fetching.
func (c *Controller) SelectPatient(sel *Selection, name string) error {
	acq := c.Current()
	if acq == nil {
		return errNoPatientLoaded
	}

	if err := sel.SelectPatient(name, PatientNames(acq.Patients)); err != nil {
		return err
	}

	c.metrics.IncSelection("patient")

	return nil
}

// SelectLabResult selects a lab-result item without re-fetching.
func (c *Controller) SelectLabResult(sel *Selection, name string) error {
	acq := c.Current()
	if acq == nil {
		return errNoPatientLoaded
	}

	if err := sel.SelectLabResult(name, acq.Patient.LabResults); err != nil {
		return err
	}

	c.metrics.IncSelection("lab_result")

	return nil
}

// Download returns the notification for downloading a lab result. It
// never changes the selection.
func (c *Controller) Download(labResult string) (string, error) {
	acq := c.Current()
	if acq == nil {
		return "", errNoPatientLoaded
	}

	if !contains(acq.Patient.LabResults, labResult) {
		return "", errUnknownLabResult
	}

	c.metrics.IncNotification(NotificationDownload)

	return DownloadMessage(labResult, acq.Patient.Name), nil
}

// ShowAll returns the notification enumerating the current record.
func (c *Controller) ShowAll() (string, error) {
	acq := c.Current()
	if acq == nil {
		return "", errNoPatientLoaded
	}

	c.metrics.IncNotification(NotificationShowAll)

	return ShowAllMessage(acq.Patient), nil
}
