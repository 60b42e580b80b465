/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config holds the dashboard process configuration.
//
// Values are layered, lowest precedence first: defaults from New, an
// optional YAML file, then TECHCARE_* environment variables. Command line
// flags are applied last by the cmd package.
package config

import "time"

// Default values for the remote patient API and the failure banner.
const (
	DefaultAPIBaseURL       = "https://fedskillstest.coalitiontechnologies.workers.dev"
	DefaultTargetGivenName  = "jessica"
	DefaultTargetFamilyName = "taylor"
	DefaultBannerEnterDelay = 100 * time.Millisecond
	DefaultBannerVisible    = 5 * time.Second
	DefaultBannerExit       = 300 * time.Millisecond
)

// Config contains process configuration.
type Config struct {
	// Port is the web server port.
	Port string `koanf:"port"`

	// Dev enables development mode (templates reloaded from disk).
	Dev bool `koanf:"dev"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// APIBaseURL is the endpoint returning the patient list.
	APIBaseURL string `koanf:"api_base_url"`

	// APIUsername and APIPassword form the basic auth credential pair.
	APIUsername string `koanf:"api_username"`
	APIPassword string `koanf:"api_password"`

	// APITimeout bounds the patient list request. Zero waits until the
	// request context ends.
	APITimeout time.Duration `koanf:"api_timeout"`

	// TargetGivenName and TargetFamilyName select the dashboard patient.
	TargetGivenName  string `koanf:"target_given_name"`
	TargetFamilyName string `koanf:"target_family_name"`

	// CSRFSecret signs CSRF tokens for the gesture forms.
	CSRFSecret string `koanf:"csrf_secret"`

	BannerEnterDelay time.Duration `koanf:"banner_enter_delay"`
	BannerVisible    time.Duration `koanf:"banner_visible"`
	BannerExit       time.Duration `koanf:"banner_exit"`

	// ViewHooks restricts the hooks the dashboard template exposes. Empty
	// means every hook.
	ViewHooks []string `koanf:"view_hooks"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Port:             "8080",
		LogLevel:         "info",
		APIBaseURL:       DefaultAPIBaseURL,
		TargetGivenName:  DefaultTargetGivenName,
		TargetFamilyName: DefaultTargetFamilyName,
		BannerEnterDelay: DefaultBannerEnterDelay,
		BannerVisible:    DefaultBannerVisible,
		BannerExit:       DefaultBannerExit,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Port == "":
		return errPortRequired
	case c.APIBaseURL == "":
		return errAPIBaseURLRequired
	case c.APIUsername == "" || c.APIPassword == "":
		return errAPICredentialsRequired
	case c.TargetGivenName == "" || c.TargetFamilyName == "":
		return errTargetNameRequired
	case c.APITimeout < 0:
		return errNegativeTimeout
	case c.BannerEnterDelay < 0 || c.BannerVisible <= 0 || c.BannerExit < 0:
		return errInvalidBannerTiming
	}

	return nil
}
