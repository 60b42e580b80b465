/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import (
	"fmt"
	"strings"

	"github.com/techcare/dashboard/patientapi"
)

const notAvailable = "N/A"

// ShowAllMessage enumerates the full record for the "show all information"
// action.
func ShowAllMessage(rec patientapi.Record) string {
	latest := notAvailable
	if r, ok := rec.LatestReading(); ok {
		latest = fmt.Sprintf("%d/%d mmHg (%s)", r.Systolic, r.Diastolic, orNA(r.Month))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Showing complete information for %s\n\n", orNA(rec.Name))
	fmt.Fprintf(&b, "ID: %s\n", orNA(string(rec.ID)))
	fmt.Fprintf(&b, "Age: %s\n", numberOrNA(rec.Age))
	fmt.Fprintf(&b, "Date of birth: %s\n", orNA(rec.DateOfBirth))
	fmt.Fprintf(&b, "Gender: %s\n", orNA(rec.Gender))
	fmt.Fprintf(&b, "Contact: %s\n", orNA(rec.PhoneNumber))
	fmt.Fprintf(&b, "Emergency: %s\n", orNA(rec.EmergencyContact))
	fmt.Fprintf(&b, "Insurance: %s\n", orNA(rec.InsuranceType))
	fmt.Fprintf(&b, "Respiratory rate: %s\n", numberOrNA(rec.RespiratoryRate))
	fmt.Fprintf(&b, "Temperature: %s\n", numberOrNA(rec.Temperature))
	fmt.Fprintf(&b, "Heart rate: %s\n", numberOrNA(rec.HeartRate))
	fmt.Fprintf(&b, "Latest blood pressure: %s\n", latest)
	fmt.Fprintf(&b, "Blood pressure readings: %d\n", len(rec.DiagnosisHistory))
	fmt.Fprintf(&b, "Diagnoses: %d\n", len(rec.DiagnosticList))
	fmt.Fprintf(&b, "Lab results: %d", len(rec.LabResults))

	return b.String()
}

// DownloadMessage announces a lab result download. No file is transferred.
func DownloadMessage(labResult, patientName string) string {
	return fmt.Sprintf("Downloading %s for %s\n\nIn a real application, this would download the actual lab result file.",
		labResult, orNA(patientName))
}

func numberOrNA(n *patientapi.Number) string {
	if n == nil {
		return notAvailable
	}

	return n.String()
}

func orNA(s string) string {
	if s == "" {
		return notAvailable
	}

	return s
}
