/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"github.com/flamego/template"

	"github.com/techcare/dashboard/dashboard"
)

// Values the dashboard template shows before any patient data is bound.
var placeholderText = map[dashboard.Hook]string{
	dashboard.HookPatientName:      "Jessica Taylor",
	dashboard.HookPatientAvatar:    "/img/patient.svg",
	dashboard.HookDateOfBirth:      "August 23, 1996",
	dashboard.HookGender:           "Female",
	dashboard.HookPhoneNumber:      "(415) 555-1234",
	dashboard.HookEmergencyContact: "(415) 555-5678",
	dashboard.HookInsuranceType:    "Sunrise Health Assurance",
	dashboard.HookRespiratoryRate:  dashboard.DefaultRespiratoryRate,
	dashboard.HookTemperature:      dashboard.DefaultTemperature,
	dashboard.HookHeartRate:        dashboard.DefaultHeartRate,
	dashboard.HookSystolic:         dashboard.DefaultSystolic,
	dashboard.HookDiastolic:        dashboard.DefaultDiastolic,
}

// Page is the dashboard template viewed as a set of hooks over its
// template data. Only hooks the page was created with exist.
type Page struct {
	data  template.Data
	hooks map[dashboard.Hook]bool
	text  map[string]string
}

// NewPage seeds data with the template's placeholder values and exposes
// the given hooks. A nil hooks slice exposes every hook.
func NewPage(data template.Data, hooks []dashboard.Hook) *Page {
	if hooks == nil {
		hooks = dashboard.AllHooks
	}

	p := &Page{
		data:  data,
		hooks: make(map[dashboard.Hook]bool, len(hooks)),
		text:  make(map[string]string, len(placeholderText)),
	}

	exposed := make(map[string]bool, len(hooks))
	for _, h := range hooks {
		p.hooks[h] = true
		exposed[string(h)] = true
	}

	for h, v := range placeholderText {
		if p.hooks[h] {
			p.text[string(h)] = v
		}
	}

	data["Hooks"] = exposed
	data["Text"] = p.text

	return p
}

func (p *Page) Has(hook dashboard.Hook) bool {
	return p.hooks[hook]
}

func (p *Page) SetText(hook dashboard.Hook, value string) {
	p.text[string(hook)] = value
}

func (p *Page) ReplacePatients(items []dashboard.PatientItem) {
	p.data["Patients"] = items
}

func (p *Page) ReplaceDiagnostics(rows []dashboard.DiagnosticRow) {
	p.data["Diagnostics"] = rows
}

func (p *Page) ReplaceLabResults(items []dashboard.LabResultItem) {
	p.data["LabResults"] = items
}

func (p *Page) SetChart(chart dashboard.ChartSnippet) {
	p.data["Chart"] = chart
}

// Text returns the current value bound to a text hook.
func (p *Page) Text(hook dashboard.Hook) string {
	return p.text[string(hook)]
}
