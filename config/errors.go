/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import "errors"

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("invalid config")

var (
	errPortRequired           = errors.New("port is required")
	errAPIBaseURLRequired     = errors.New("api_base_url is required")
	errAPICredentialsRequired = errors.New("api_username and api_password are required (set TECHCARE_API_USERNAME and TECHCARE_API_PASSWORD)")
	errTargetNameRequired     = errors.New("target_given_name and target_family_name are required")
	errNegativeTimeout        = errors.New("api_timeout must not be negative")
	errInvalidBannerTiming    = errors.New("banner timings must not be negative and banner_visible must be positive")
)
