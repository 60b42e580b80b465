// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/techcare/dashboard/config"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"TECHCARE_CONFIG",
		"TECHCARE_PORT",
		"TECHCARE_API_BASE_URL",
		"TECHCARE_API_USERNAME",
		"TECHCARE_API_PASSWORD",
		"TECHCARE_API_TIMEOUT",
		"TECHCARE_TARGET_GIVEN_NAME",
		"TECHCARE_BANNER_VISIBLE",
		"TECHCARE_VIEW_HOOKS",
		"TECHCARE_DEV",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When credentials are missing", func() {
			cfg, err := config.Load("")

			convey.Convey("Then loading fails as invalid config", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When only credentials are set in the environment", func() {
			_ = os.Setenv("TECHCARE_API_USERNAME", "coalition")
			_ = os.Setenv("TECHCARE_API_PASSWORD", "skills-test")

			cfg, err := config.Load("")

			convey.Convey("Then the defaults fill the rest", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, "8080")
				convey.So(cfg.APIBaseURL, convey.ShouldEqual, config.DefaultAPIBaseURL)
				convey.So(cfg.APITimeout, convey.ShouldEqual, time.Duration(0))
				convey.So(cfg.TargetGivenName, convey.ShouldEqual, "jessica")
				convey.So(cfg.TargetFamilyName, convey.ShouldEqual, "taylor")
				convey.So(cfg.BannerEnterDelay, convey.ShouldEqual, 100*time.Millisecond)
				convey.So(cfg.BannerVisible, convey.ShouldEqual, 5*time.Second)
				convey.So(cfg.BannerExit, convey.ShouldEqual, 300*time.Millisecond)
				convey.So(cfg.ViewHooks, convey.ShouldBeEmpty)
			})
		})

		convey.Convey("When the environment overrides defaults", func() {
			_ = os.Setenv("TECHCARE_API_USERNAME", "u")
			_ = os.Setenv("TECHCARE_API_PASSWORD", "p")
			_ = os.Setenv("TECHCARE_PORT", "9090")
			_ = os.Setenv("TECHCARE_API_TIMEOUT", "2s")
			_ = os.Setenv("TECHCARE_DEV", "true")
			_ = os.Setenv("TECHCARE_VIEW_HOOKS", "temperature, heart-rate,")

			cfg, err := config.Load("")

			convey.Convey("Then the environment values win", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, "9090")
				convey.So(cfg.APITimeout, convey.ShouldEqual, 2*time.Second)
				convey.So(cfg.Dev, convey.ShouldBeTrue)
				convey.So(cfg.ViewHooks, convey.ShouldResemble, []string{"temperature", "heart-rate"})
			})
		})

		convey.Convey("When a YAML file is provided", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "techcare.yaml")
			content := "api_username: file-user\n" +
				"api_password: file-pass\n" +
				"target_given_name: john\n" +
				"banner_visible: 3s\n" +
				"view_hooks:\n  - patient-name\n"
			convey.So(os.WriteFile(path, []byte(content), 0o600), convey.ShouldBeNil)

			_ = os.Setenv("TECHCARE_TARGET_GIVEN_NAME", "jane")

			cfg, err := config.Load(path)

			convey.Convey("Then file values load and the environment still wins", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.APIUsername, convey.ShouldEqual, "file-user")
				convey.So(cfg.TargetGivenName, convey.ShouldEqual, "jane")
				convey.So(cfg.BannerVisible, convey.ShouldEqual, 3*time.Second)
				convey.So(cfg.ViewHooks, convey.ShouldResemble, []string{"patient-name"})
			})
		})

		convey.Convey("When the file does not exist", func() {
			_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

			convey.Convey("Then loading fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*config.Config)
		ok     bool
	}{
		{name: "valid", modify: func(*config.Config) {}, ok: true},
		{name: "empty port", modify: func(c *config.Config) { c.Port = "" }},
		{name: "empty base url", modify: func(c *config.Config) { c.APIBaseURL = "" }},
		{name: "missing password", modify: func(c *config.Config) { c.APIPassword = "" }},
		{name: "missing family name", modify: func(c *config.Config) { c.TargetFamilyName = "" }},
		{name: "negative timeout", modify: func(c *config.Config) { c.APITimeout = -time.Second }},
		{name: "zero banner visibility", modify: func(c *config.Config) { c.BannerVisible = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.New()
			cfg.APIUsername = "u"
			cfg.APIPassword = "p"
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Fatalf("expected valid config, got %v", err)
			}
			if !tt.ok && err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
