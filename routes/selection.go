/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"github.com/flamego/session"

	"github.com/techcare/dashboard/dashboard"
)

const (
	selectionSessionKey = "selection"
	rebindSessionKey    = "rebind"
)

func loadSelection(s session.Session) dashboard.Selection {
	sel, _ := s.Get(selectionSessionKey).(dashboard.Selection)
	return sel
}

func storeSelection(s session.Session, sel dashboard.Selection) {
	s.Set(selectionSessionKey, sel)
}

// markRebind makes the next dashboard load bind the cached patient instead
// of fetching it again.
func markRebind(s session.Session) {
	s.Set(rebindSessionKey, true)
}

func takeRebind(s session.Session) bool {
	rebind, _ := s.Get(rebindSessionKey).(bool)
	if rebind {
		s.Delete(rebindSessionKey)
	}

	return rebind
}
