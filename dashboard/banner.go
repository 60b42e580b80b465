/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package dashboard

import (
	"encoding/gob"
	"time"

	"github.com/google/uuid"
)

// BannerTiming is the lifecycle of a failure banner: it slides in after
// EnterDelay, stays for Visible, then slides out over Exit and is removed.
type BannerTiming struct {
	EnterDelay time.Duration
	Visible    time.Duration
	Exit       time.Duration
}

// Banner is a dismissible failure notification. A page shows at most one;
// a newer failure replaces a banner that has not been shown yet.
type Banner struct {
	ID      string
	Message string
	Timing  BannerTiming
}

func init() {
	gob.Register(Banner{})
}

// NewBanner creates a banner with a fresh id.
func NewBanner(message string, timing BannerTiming) Banner {
	return Banner{
		ID:      uuid.NewString(),
		Message: message,
		Timing:  timing,
	}
}

// FailureBanner creates the banner shown for a failed load.
func FailureBanner(err error, timing BannerTiming) Banner {
	return NewBanner("Failed to load patient data: "+err.Error(), timing)
}

// EnterMS is the delay before the banner slides in.
func (b Banner) EnterMS() int64 {
	return b.Timing.EnterDelay.Milliseconds()
}

// ExitMS is the time, from page load, at which the banner starts leaving.
func (b Banner) ExitMS() int64 {
	return (b.Timing.EnterDelay + b.Timing.Visible).Milliseconds()
}

// RemoveMS is the time, from page load, at which the banner is removed.
func (b Banner) RemoveMS() int64 {
	return (b.Timing.EnterDelay + b.Timing.Visible + b.Timing.Exit).Milliseconds()
}

// TransitionMS is the slide duration used for both directions.
func (b Banner) TransitionMS() int64 {
	return b.Timing.Exit.Milliseconds()
}
