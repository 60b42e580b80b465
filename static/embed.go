/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package static

import "embed"

// Static contains the stylesheets, scripts and images of the dashboard.
//
//go:embed css js img
var Static embed.FS
