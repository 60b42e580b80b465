/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import "strings"

// Status is the display category of a diagnostic entry.
type Status string

const (
	StatusCured            Status = "cured"
	StatusActive           Status = "active"
	StatusInactive         Status = "inactive"
	StatusUnderObservation Status = "under-observation"
	StatusUnknown          Status = "unknown"
)

// statusRules are checked in order; the first rule with a matching
// substring wins. "inactive" contains "active", so a status such as
// "Inactive" normalizes to active.
var statusRules = []struct {
	status Status
	terms  []string
}{
	{StatusCured, []string{"cured", "resolved"}},
	{StatusActive, []string{"active", "current"}},
	{StatusInactive, []string{"inactive", "past"}},
	{StatusUnderObservation, []string{"observation", "monitoring"}},
}

// NormalizeStatus maps a free-text status onto a display category.
func NormalizeStatus(status string) Status {
	if status == "" {
		return StatusUnknown
	}

	lower := strings.ToLower(status)
	for _, rule := range statusRules {
		for _, term := range rule.terms {
			if strings.Contains(lower, term) {
				return rule.status
			}
		}
	}

	return StatusUnknown
}
