// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"context"

	"github.com/techcare/dashboard/patientapi"
)

type fakeView struct {
	hooks       map[Hook]bool
	text        map[Hook]string
	patients    []PatientItem
	diagnostics []DiagnosticRow
	labs        []LabResultItem
	chart       *ChartSnippet
}

func newFakeView(hooks ...Hook) *fakeView {
	if len(hooks) == 0 {
		hooks = AllHooks
	}

	v := &fakeView{hooks: map[Hook]bool{}, text: map[Hook]string{}}
	for _, h := range hooks {
		v.hooks[h] = true
	}

	return v
}

func (v *fakeView) Has(hook Hook) bool { return v.hooks[hook] }

func (v *fakeView) SetText(hook Hook, value string) { v.text[hook] = value }

func (v *fakeView) ReplacePatients(items []PatientItem) { v.patients = items }

func (v *fakeView) ReplaceDiagnostics(rows []DiagnosticRow) { v.diagnostics = rows }

func (v *fakeView) ReplaceLabResults(items []LabResultItem) { v.labs = items }

func (v *fakeView) SetChart(chart ChartSnippet) { v.chart = &chart }

type fakeAcquirer struct {
	acq   *patientapi.Acquisition
	err   error
	calls int
}

func (f *fakeAcquirer) Acquire(context.Context) (*patientapi.Acquisition, error) {
	f.calls++
	return f.acq, f.err
}

func number(v float64) *patientapi.Number {
	n := patientapi.Number(v)
	return &n
}

func jessica() patientapi.Record {
	return patientapi.Record{
		ID:               "1",
		Name:             "Dr. Jessica Taylor",
		Age:              number(28),
		ProfilePicture:   "https://example.test/jessica.png",
		DateOfBirth:      "1996-08-23",
		Gender:           "Female",
		PhoneNumber:      "(415) 555-1234",
		EmergencyContact: "(415) 555-5678",
		InsuranceType:    "Sunrise Health Assurance",
		RespiratoryRate:  number(18),
		Temperature:      nil,
		HeartRate:        number(0),
		DiagnosisHistory: []patientapi.DiagnosisReading{
			{Month: "Jan 2024", Systolic: 120, Diastolic: 80},
			{Month: "Feb 2024", Systolic: 130, Diastolic: 85},
		},
		DiagnosticList: []patientapi.DiagnosticEntry{
			{Problem: "Hypertension", Description: "Chronic high blood pressure", Status: "Under Observation"},
			{Name: "Asthma", Status: "Cured"},
		},
		LabResults: []string{"Blood Tests", "CT Scans", "Radiology Reports"},
	}
}

func acquisition() *patientapi.Acquisition {
	rec := jessica()
	return &patientapi.Acquisition{
		Patient: rec,
		Patients: []patientapi.Record{
			{Name: "Emily Williams", Gender: "Female", Age: number(18), ProfilePicture: "https://example.test/emily.png"},
			rec,
		},
	}
}
