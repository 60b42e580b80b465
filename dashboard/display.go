/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package dashboard turns a patient acquisition into what the dashboard
// page shows: the display model, the blood pressure chart, the selection
// state and the user notifications.
package dashboard

import (
	"strconv"

	"github.com/techcare/dashboard/patientapi"
)

// Display defaults used when the record lacks a value.
const (
	DefaultRespiratoryRate = "20"
	DefaultTemperature     = "98.6"
	DefaultHeartRate       = "78"
	DefaultSystolic        = "160"
	DefaultDiastolic       = "78"
)

// Row fallbacks for incomplete diagnostic entries.
const (
	MissingProblem     = "N/A"
	MissingDescription = "No description available"
	MissingStatus      = "Unknown"
)

// Display is everything the page binds for one patient. Pointer fields are
// nil when the page should keep whatever it already shows. Nil list fields
// leave their container untouched; non-nil lists replace it.
type Display struct {
	PatientName   *string
	PatientAvatar *string

	DateOfBirth      *string
	Gender           *string
	PhoneNumber      *string
	EmergencyContact *string
	InsuranceType    *string

	RespiratoryRate string
	Temperature     string
	HeartRate       string
	Systolic        string
	Diastolic       string

	Patients    []PatientItem
	Diagnostics []DiagnosticRow
	LabResults  []LabResultItem

	Chart []Point
}

// PatientItem is one entry of the patient list.
type PatientItem struct {
	Name     string
	Avatar   string
	Subtitle string
	Active   bool
}

// DiagnosticRow is one row of the diagnostic table.
type DiagnosticRow struct {
	Problem     string
	Description string
	StatusLabel string
	Status      Status
}

// LabResultItem is one entry of the lab results list.
type LabResultItem struct {
	Name     string
	Selected bool
}

// Derive computes the display model of an acquisition under a selection.
// It does not touch any view.
func Derive(acq *patientapi.Acquisition, sel Selection) Display {
	rec := acq.Patient

	d := Display{
		PatientName:   optional(rec.Name),
		PatientAvatar: optional(rec.ProfilePicture),

		DateOfBirth:      optional(rec.DateOfBirth),
		Gender:           optional(rec.Gender),
		PhoneNumber:      optional(rec.PhoneNumber),
		EmergencyContact: optional(rec.EmergencyContact),
		InsuranceType:    optional(rec.InsuranceType),

		RespiratoryRate: vital(rec.RespiratoryRate, DefaultRespiratoryRate),
		Temperature:     vital(rec.Temperature, DefaultTemperature),
		HeartRate:       vital(rec.HeartRate, DefaultHeartRate),
		Systolic:        DefaultSystolic,
		Diastolic:       DefaultDiastolic,

		Chart: BloodPressureSeries(rec.DiagnosisHistory),
	}

	if latest, ok := rec.LatestReading(); ok {
		d.Systolic = reading(latest.Systolic, DefaultSystolic)
		d.Diastolic = reading(latest.Diastolic, DefaultDiastolic)
	}

	if acq.Patients != nil {
		d.Patients = patientItems(acq.Patients, sel.ActivePatient)
	}

	// The secondary panel mirrors the active list item, which may be a
	// different patient than the one whose data is bound.
	for _, p := range d.Patients {
		if p.Active && p.Name != rec.Name {
			d.PatientName = optional(p.Name)
			d.PatientAvatar = optional(p.Avatar)
		}
	}

	if rec.DiagnosticList != nil {
		d.Diagnostics = make([]DiagnosticRow, 0, len(rec.DiagnosticList))
		for _, e := range rec.DiagnosticList {
			d.Diagnostics = append(d.Diagnostics, diagnosticRow(e))
		}
	}

	if rec.LabResults != nil {
		d.LabResults = labResultItems(rec.LabResults, sel.SelectedLabResult)
	}

	return d
}

func patientItems(records []patientapi.Record, active string) []PatientItem {
	items := make([]PatientItem, 0, len(records))
	marked := false

	for _, r := range records {
		item := PatientItem{
			Name:     r.Name,
			Avatar:   r.ProfilePicture,
			Subtitle: subtitle(r),
		}
		if !marked && active != "" && r.Name == active {
			item.Active = true
			marked = true
		}
		items = append(items, item)
	}

	return items
}

func labResultItems(labs []string, selected string) []LabResultItem {
	items := make([]LabResultItem, 0, len(labs))
	marked := false

	for _, name := range labs {
		item := LabResultItem{Name: name}
		if !marked && selected != "" && name == selected {
			item.Selected = true
			marked = true
		}
		items = append(items, item)
	}

	return items
}

func diagnosticRow(e patientapi.DiagnosticEntry) DiagnosticRow {
	row := DiagnosticRow{
		Problem:     e.Label(),
		Description: e.Description,
		StatusLabel: e.Status,
		Status:      NormalizeStatus(e.Status),
	}

	if row.Problem == "" {
		row.Problem = MissingProblem
	}
	if row.Description == "" {
		row.Description = MissingDescription
	}
	if row.StatusLabel == "" {
		row.StatusLabel = MissingStatus
	}

	return row
}

func subtitle(r patientapi.Record) string {
	switch {
	case r.Gender != "" && r.Age != nil:
		return r.Gender + ", " + r.Age.String()
	case r.Gender != "":
		return r.Gender
	case r.Age != nil:
		return r.Age.String()
	}

	return ""
}

// vital treats a zero reading as absent.
func vital(n *patientapi.Number, fallback string) string {
	if n == nil || *n == 0 {
		return fallback
	}

	return n.String()
}

func reading(v int, fallback string) string {
	if v == 0 {
		return fallback
	}

	return strconv.Itoa(v)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
