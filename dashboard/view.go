/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import "fmt"

// Hook names a view target the page template exposes.
type Hook string

const (
	HookPatientName      Hook = "patient-name"
	HookPatientAvatar    Hook = "patient-avatar"
	HookDateOfBirth      Hook = "date-of-birth"
	HookGender           Hook = "gender"
	HookPhoneNumber      Hook = "phone-number"
	HookEmergencyContact Hook = "emergency-contact"
	HookInsuranceType    Hook = "insurance-type"
	HookRespiratoryRate  Hook = "respiratory-rate"
	HookTemperature      Hook = "temperature"
	HookHeartRate        Hook = "heart-rate"
	HookSystolic         Hook = "systolic"
	HookDiastolic        Hook = "diastolic"
	HookPatientList      Hook = "patient-list"
	HookDiagnosticList   Hook = "diagnostic-list"
	HookLabResults       Hook = "lab-results"
	HookChart            Hook = "blood-pressure-chart"
)

// AllHooks lists every hook of the full dashboard template.
var AllHooks = []Hook{
	HookPatientName, HookPatientAvatar,
	HookDateOfBirth, HookGender, HookPhoneNumber, HookEmergencyContact, HookInsuranceType,
	HookRespiratoryRate, HookTemperature, HookHeartRate,
	HookSystolic, HookDiastolic,
	HookPatientList, HookDiagnosticList, HookLabResults,
	HookChart,
}

// ParseHooks converts hook names into hooks. An empty list yields nil,
// which stands for every hook.
func ParseHooks(names []string) ([]Hook, error) {
	if len(names) == 0 {
		return nil, nil
	}

	known := make(map[Hook]bool, len(AllHooks))
	for _, h := range AllHooks {
		known[h] = true
	}

	hooks := make([]Hook, 0, len(names))
	for _, name := range names {
		h := Hook(name)
		if !known[h] {
			return nil, fmt.Errorf("%w: %q", errUnknownHook, name)
		}
		hooks = append(hooks, h)
	}

	return hooks, nil
}

// View is a page the display model is applied to. Has reports false for
// hooks the page does not expose; setters are only called for hooks that
// exist.
type View interface {
	Has(hook Hook) bool
	SetText(hook Hook, value string)
	ReplacePatients(items []PatientItem)
	ReplaceDiagnostics(rows []DiagnosticRow)
	ReplaceLabResults(items []LabResultItem)
	SetChart(chart ChartSnippet)
}

// Apply writes the display model onto the view and returns the hooks it
// skipped because the view lacks them.
func Apply(d Display, v View) []Hook {
	var skipped []Hook

	set := func(hook Hook, value string) {
		if !v.Has(hook) {
			skipped = append(skipped, hook)
			return
		}
		v.SetText(hook, value)
	}

	setOptional := func(hook Hook, value *string) {
		if value == nil {
			return
		}
		set(hook, *value)
	}

	setOptional(HookPatientName, d.PatientName)
	setOptional(HookPatientAvatar, d.PatientAvatar)

	setOptional(HookDateOfBirth, d.DateOfBirth)
	setOptional(HookGender, d.Gender)
	setOptional(HookPhoneNumber, d.PhoneNumber)
	setOptional(HookEmergencyContact, d.EmergencyContact)
	setOptional(HookInsuranceType, d.InsuranceType)

	set(HookRespiratoryRate, d.RespiratoryRate)
	set(HookTemperature, d.Temperature)
	set(HookHeartRate, d.HeartRate)
	set(HookSystolic, d.Systolic)
	set(HookDiastolic, d.Diastolic)

	if d.Patients != nil {
		if v.Has(HookPatientList) {
			v.ReplacePatients(d.Patients)
		} else {
			skipped = append(skipped, HookPatientList)
		}
	}

	if d.Diagnostics != nil {
		if v.Has(HookDiagnosticList) {
			v.ReplaceDiagnostics(d.Diagnostics)
		} else {
			skipped = append(skipped, HookDiagnosticList)
		}
	}

	if d.LabResults != nil {
		if v.Has(HookLabResults) {
			v.ReplaceLabResults(d.LabResults)
		} else {
			skipped = append(skipped, HookLabResults)
		}
	}

	if !BindChart(d.Chart, v) {
		skipped = append(skipped, HookChart)
	}

	return skipped
}

// BindChart renders points into the view's chart container. It reports
// false without rendering when the view has no chart hook.
func BindChart(points []Point, v View) bool {
	if !v.Has(HookChart) {
		return false
	}

	v.SetChart(RenderChart(points))

	return true
}
