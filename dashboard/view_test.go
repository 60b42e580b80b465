// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package dashboard

import (
	"testing"

	"github.com/techcare/dashboard/patientapi"
)

func TestApplyBindsAllHooks(t *testing.T) {
	t.Parallel()

	acq := acquisition()
	v := newFakeView()

	skipped := Apply(Derive(acq, Selection{}.Resolve(acq)), v)
	if len(skipped) != 0 {
		t.Fatalf("skipped = %v, want none", skipped)
	}

	if v.text[HookRespiratoryRate] != "18" || v.text[HookTemperature] != DefaultTemperature {
		t.Fatalf("vitals = %v", v.text)
	}
	if v.text[HookInsuranceType] != "Sunrise Health Assurance" {
		t.Fatalf("insurance = %q", v.text[HookInsuranceType])
	}
	if len(v.patients) != 2 || len(v.diagnostics) != 2 || len(v.labs) != 3 {
		t.Fatalf("lists = %d/%d/%d", len(v.patients), len(v.diagnostics), len(v.labs))
	}
	if !v.labs[0].Selected {
		t.Fatal("first lab result should be selected by default")
	}
	if v.chart == nil {
		t.Fatal("chart not rendered")
	}
}

func TestApplySkipsMissingHooks(t *testing.T) {
	t.Parallel()

	v := newFakeView(HookTemperature, HookDiagnosticList)
	acq := acquisition()

	skipped := Apply(Derive(acq, Selection{}), v)

	if v.text[HookTemperature] != DefaultTemperature {
		t.Fatalf("temperature = %q", v.text[HookTemperature])
	}
	if len(v.diagnostics) != 2 {
		t.Fatalf("diagnostics = %d", len(v.diagnostics))
	}
	if v.chart != nil {
		t.Fatal("chart rendered without a chart hook")
	}

	seen := map[Hook]bool{}
	for _, h := range skipped {
		seen[h] = true
	}
	for _, h := range []Hook{HookHeartRate, HookPatientName, HookLabResults, HookChart} {
		if !seen[h] {
			t.Fatalf("hook %q not reported as skipped: %v", h, skipped)
		}
	}
	if seen[HookTemperature] {
		t.Fatal("present hook reported as skipped")
	}
}

func TestApplyLeavesAbsentContactFieldsUntouched(t *testing.T) {
	t.Parallel()

	v := newFakeView()
	v.text[HookDateOfBirth] = "August 23, 1996"
	v.text[HookPhoneNumber] = "(415) 555-1234"

	acq := &patientapi.Acquisition{Patient: patientapi.Record{Gender: "Male"}}
	Apply(Derive(acq, Selection{}), v)

	if v.text[HookDateOfBirth] != "August 23, 1996" || v.text[HookPhoneNumber] != "(415) 555-1234" {
		t.Fatalf("absent fields overwritten: %v", v.text)
	}
	if v.text[HookGender] != "Male" {
		t.Fatalf("gender = %q", v.text[HookGender])
	}
	if v.patients != nil || v.diagnostics != nil || v.labs != nil {
		t.Fatal("absent lists must not replace containers")
	}
}

func TestParseHooks(t *testing.T) {
	t.Parallel()

	hooks, err := ParseHooks(nil)
	if err != nil || hooks != nil {
		t.Fatalf("ParseHooks(nil) = %v, %v", hooks, err)
	}

	hooks, err = ParseHooks([]string{"temperature", "blood-pressure-chart"})
	if err != nil {
		t.Fatalf("ParseHooks: %v", err)
	}
	if len(hooks) != 2 || hooks[0] != HookTemperature || hooks[1] != HookChart {
		t.Fatalf("hooks = %v", hooks)
	}

	if _, err := ParseHooks([]string{"blood-sugar"}); !IsUnknownHook(err) {
		t.Fatalf("unknown hook err = %v", err)
	}
}
