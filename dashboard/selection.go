/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import (
	"encoding/gob"

	"github.com/techcare/dashboard/patientapi"
)

// Selection tracks the single active patient-list item and the single
// selected lab-result item. The zero value selects nothing.
type Selection struct {
	ActivePatient     string
	SelectedLabResult string
}

func init() {
	gob.Register(Selection{})
}

// SelectPatient makes name the active patient-list item, clearing the
// previous one. name must be one of items.
func (s *Selection) SelectPatient(name string, items []string) error {
	if !contains(items, name) {
		return errUnknownPatient
	}

	s.ActivePatient = name

	return nil
}

// SelectLabResult makes name the selected lab-result item, clearing the
// previous one. name must be one of labs.
func (s *Selection) SelectLabResult(name string, labs []string) error {
	if !contains(labs, name) {
		return errUnknownLabResult
	}

	s.SelectedLabResult = name

	return nil
}

// Resolve fills an empty or stale selection with the defaults of a fresh
// page: the resolved patient is active and the first lab result selected.
func (s Selection) Resolve(acq *patientapi.Acquisition) Selection {
	if acq == nil {
		return s
	}

	if !contains(PatientNames(acq.Patients), s.ActivePatient) {
		s.ActivePatient = acq.Patient.Name
	}

	labs := acq.Patient.LabResults
	if !contains(labs, s.SelectedLabResult) {
		s.SelectedLabResult = ""
		if len(labs) > 0 {
			s.SelectedLabResult = labs[0]
		}
	}

	return s
}

// PatientNames returns the names shown in the patient list.
func PatientNames(records []patientapi.Record) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Name)
	}

	return names
}

func contains(items []string, item string) bool {
	if item == "" {
		return false
	}

	for _, it := range items {
		if it == item {
			return true
		}
	}

	return false
}
