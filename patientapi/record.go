/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package patientapi

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Record is one patient as returned by the patient API. Every field may be
// absent from the payload.
type Record struct {
	ID               ID                `json:"id"`
	Name             string            `json:"name"`
	Age              *Number           `json:"age,omitempty"`
	ProfilePicture   string            `json:"profilePicture,omitempty"`
	DateOfBirth      string            `json:"dateOfBirth,omitempty"`
	Gender           string            `json:"gender,omitempty"`
	PhoneNumber      string            `json:"phoneNumber,omitempty"`
	EmergencyContact string            `json:"emergencyContact,omitempty"`
	InsuranceType    string            `json:"insuranceType,omitempty"`
	RespiratoryRate  *Number           `json:"respiratoryRate,omitempty"`
	Temperature      *Number           `json:"temperature,omitempty"`
	HeartRate        *Number           `json:"heartRate,omitempty"`
	DiagnosisHistory []DiagnosisReading `json:"diagnosisHistory,omitempty"`
	DiagnosticList   []DiagnosticEntry  `json:"diagnosticList,omitempty"`
	LabResults       []string           `json:"labResults,omitempty"`
}

// DiagnosisReading is one monthly blood pressure reading in mmHg.
type DiagnosisReading struct {
	Month     string `json:"month"`
	Systolic  int    `json:"systolic"`
	Diastolic int    `json:"diastolic"`
}

// UnmarshalJSON accepts numeric strings and fractional values for the
// readings, rounding to whole mmHg.
func (r *DiagnosisReading) UnmarshalJSON(data []byte) error {
	var raw struct {
		Month     string `json:"month"`
		Systolic  Number `json:"systolic"`
		Diastolic Number `json:"diastolic"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Month = raw.Month
	r.Systolic = int(math.Round(float64(raw.Systolic)))
	r.Diastolic = int(math.Round(float64(raw.Diastolic)))

	return nil
}

// DiagnosticEntry is one row of the patient's diagnostic list.
type DiagnosticEntry struct {
	Problem     string `json:"problem,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// Label returns the problem, falling back to the entry name.
func (e DiagnosticEntry) Label() string {
	if e.Problem != "" {
		return e.Problem
	}

	return e.Name
}

// LatestReading returns the last reading of the history.
func (r *Record) LatestReading() (DiagnosisReading, bool) {
	if len(r.DiagnosisHistory) == 0 {
		return DiagnosisReading{}, false
	}

	return r.DiagnosisHistory[len(r.DiagnosisHistory)-1], true
}

// ID is a patient identifier. The API sends either a string or a number.
type ID string

// UnmarshalJSON accepts JSON strings and numbers.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())

	return nil
}

// Number is a numeric vital sign. Numeric strings are accepted as well.
type Number float64

// UnmarshalJSON accepts JSON numbers and strings holding a number. An empty
// string leaves the value at zero.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}

	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*n = Number(f)

	return nil
}

// String formats the number the way a browser prints a JSON number: no
// trailing zeros and no exponent for ordinary values.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// rosterEntry is the part of a record the patient list needs. It is used
// when the full record cannot be decoded.
type rosterEntry struct {
	ID             ID     `json:"id"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Gender         string `json:"gender,omitempty"`
}

// decodeRecords decodes a JSON array of records one element at a time. A
// record that does not decode is kept with its roster fields only and its
// error is reported in bad, keyed by position in the returned slice.
// Elements without even a readable name are dropped.
func decodeRecords(body []byte) (records []Record, bad map[int]error, err error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, nil, err
	}

	records = make([]Record, 0, len(raw))
	bad = make(map[int]error)

	for _, elem := range raw {
		var rec Record
		if recErr := json.Unmarshal(elem, &rec); recErr != nil {
			var entry rosterEntry
			if json.Unmarshal(elem, &entry) != nil || entry.Name == "" {
				continue
			}

			bad[len(records)] = recErr
			rec = Record{
				ID:             entry.ID,
				Name:           entry.Name,
				ProfilePicture: entry.ProfilePicture,
				Gender:         entry.Gender,
			}
		}

		records = append(records, rec)
	}

	return records, bad, nil
}
