/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import "errors"

var (
	errUnknownPatient   = errors.New("patient is not in the patient list")
	errUnknownLabResult = errors.New("lab result is not in the lab results list")
	errNoPatientLoaded  = errors.New("no patient data loaded")
	errUnknownHook      = errors.New("unknown view hook")
)

// IsSelectionError reports whether err is a rejected selection change.
func IsSelectionError(err error) bool {
	return errors.Is(err, errUnknownPatient) || errors.Is(err, errUnknownLabResult)
}

// IsNoPatientLoaded reports whether err means no acquisition has succeeded yet.
func IsNoPatientLoaded(err error) bool {
	return errors.Is(err, errNoPatientLoaded)
}

// IsUnknownHook reports whether err names a hook the dashboard does not have.
func IsUnknownHook(err error) bool {
	return errors.Is(err, errUnknownHook)
}
