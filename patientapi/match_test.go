// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package patientapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcher_Matches(t *testing.T) {
	m := NewMatcher("Jessica", "TAYLOR")

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "plain", in: "Jessica Taylor", want: true},
		{name: "title prefix", in: "Dr. Jessica Taylor", want: true},
		{name: "reversed", in: "Taylor, Jessica", want: true},
		{name: "upper case", in: "JESSICA TAYLOR", want: true},
		{name: "embedded tokens", in: "jessicataylorson", want: true},
		{name: "given only", in: "Jessica Jones", want: false},
		{name: "family only", in: "Roger Taylor", want: false},
		{name: "empty", in: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Matches(tt.in))
		})
	}
}

func TestMatcher_FindIgnoresListOrder(t *testing.T) {
	m := NewMatcher("jessica", "taylor")
	target := Record{ID: "t", Name: "Jessica Taylor"}

	lists := [][]Record{
		{target, {ID: "a", Name: "Emily Williams"}},
		{{ID: "a", Name: "Emily Williams"}, target},
		{{ID: "a", Name: "Jessica Jones"}, {ID: "b", Name: "Ryan Taylor"}, target, {ID: "c", Name: "Brandon Mitchell"}},
	}

	for _, records := range lists {
		got, ok := m.Find(records)
		require.True(t, ok)
		assert.Equal(t, ID("t"), got.ID)
	}
}

func TestMatcher_FindReturnsFirstMatch(t *testing.T) {
	m := NewMatcher("jessica", "taylor")

	got, ok := m.Find([]Record{
		{ID: "first", Name: "Jessica Taylor"},
		{ID: "second", Name: "Dr. Jessica Taylor"},
	})
	require.True(t, ok)
	assert.Equal(t, ID("first"), got.ID)
}

func TestMatcher_FindNoMatch(t *testing.T) {
	m := NewMatcher("jessica", "taylor")

	_, ok := m.Find(nil)
	assert.False(t, ok)

	_, ok = m.Find([]Record{{Name: "Emily Williams"}, {}})
	assert.False(t, ok)
}

func TestRecord_DecodeFlexibleFields(t *testing.T) {
	var records []Record
	err := json.Unmarshal([]byte(`[
		{"id": "abc", "temperature": "98.1", "heartRate": null, "respiratoryRate": ""},
		{"id": 42, "temperature": 99.50}
	]`), &records)
	require.NoError(t, err)

	assert.Equal(t, ID("abc"), records[0].ID)
	require.NotNil(t, records[0].Temperature)
	assert.Equal(t, "98.1", records[0].Temperature.String())
	assert.Nil(t, records[0].HeartRate)
	require.NotNil(t, records[0].RespiratoryRate)
	assert.Equal(t, Number(0), *records[0].RespiratoryRate)

	assert.Equal(t, ID("42"), records[1].ID)
	assert.Equal(t, "99.5", records[1].Temperature.String())
}

func TestRecord_LatestReadingIsLast(t *testing.T) {
	r := Record{DiagnosisHistory: []DiagnosisReading{
		{Month: "Jan", Systolic: 180, Diastolic: 120},
		{Month: "Feb", Systolic: 110, Diastolic: 70},
	}}

	latest, ok := r.LatestReading()
	require.True(t, ok)
	assert.Equal(t, 110, latest.Systolic)
	assert.Equal(t, 70, latest.Diastolic)

	_, ok = (&Record{}).LatestReading()
	assert.False(t, ok)
}

func TestDiagnosticEntry_Label(t *testing.T) {
	assert.Equal(t, "Asthma", DiagnosticEntry{Problem: "Asthma", Name: "Other"}.Label())
	assert.Equal(t, "Other", DiagnosticEntry{Name: "Other"}.Label())
	assert.Equal(t, "", DiagnosticEntry{}.Label())
}

func TestMatcher_DisplayNameCapitalizesRunes(t *testing.T) {
	assert.Equal(t, "Jessica Taylor", NewMatcher("jessica", "taylor").DisplayName())
	assert.Equal(t, "Élodie Øster", NewMatcher("ÉLODIE", "øster").DisplayName())
	assert.Equal(t, " ", NewMatcher("", "").DisplayName())
}
