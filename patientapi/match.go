/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package patientapi

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Matcher selects the dashboard patient by two name tokens.
type Matcher struct {
	given  string
	family string
}

// NewMatcher returns a Matcher for the given and family name tokens.
func NewMatcher(given, family string) Matcher {
	return Matcher{
		given:  strings.ToLower(strings.TrimSpace(given)),
		family: strings.ToLower(strings.TrimSpace(family)),
	}
}

// Matches reports whether name contains both tokens, ignoring case and
// order.
func (m Matcher) Matches(name string) bool {
	if name == "" {
		return false
	}

	lower := strings.ToLower(name)

	return strings.Contains(lower, m.given) && strings.Contains(lower, m.family)
}

// Find returns the first record whose name matches.
func (m Matcher) Find(records []Record) (Record, bool) {
	i := m.Index(records)
	if i < 0 {
		return Record{}, false
	}

	return records[i], true
}

// Index returns the position of the first record whose name matches, or -1.
func (m Matcher) Index(records []Record) int {
	for i, r := range records {
		if m.Matches(r.Name) {
			return i
		}
	}

	return -1
}

// DisplayName renders the tokens as a capitalized full name.
func (m Matcher) DisplayName() string {
	return capitalize(m.given) + " " + capitalize(m.family)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToUpper(r)) + s[size:]
}
