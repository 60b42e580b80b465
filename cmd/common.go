/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/techcare/dashboard/config"
	"github.com/techcare/dashboard/dashboard"
	"github.com/techcare/dashboard/logging"
	"github.com/techcare/dashboard/metrics"
	"github.com/techcare/dashboard/patientapi"
)

var configFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Sources: cli.EnvVars(config.FileEnvVar),
	Usage:   "path to a YAML configuration file",
}

var logLevelFlag = &cli.StringFlag{
	Name:  "log-level",
	Usage: "overrides log_level: debug, info, warn, error",
}

// loadConfig reads the layered configuration and applies the command line
// flags on top.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String(configFlag.Name))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("port") {
		cfg.Port = cmd.String("port")
	}
	if cmd.IsSet("dev") {
		cfg.Dev = cmd.Bool("dev")
	}
	if cmd.IsSet(logLevelFlag.Name) {
		cfg.LogLevel = cmd.String(logLevelFlag.Name)
	}

	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	return cfg, nil
}

func newPatientClient(cfg *config.Config, m *metrics.Manager) (*patientapi.Client, error) {
	client, err := patientapi.New(patientapi.Options{
		BaseURL:    cfg.APIBaseURL,
		Username:   cfg.APIUsername,
		Password:   cfg.APIPassword,
		Timeout:    cfg.APITimeout,
		GivenName:  cfg.TargetGivenName,
		FamilyName: cfg.TargetFamilyName,
		Metrics:    m,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create patient API client: %w", err)
	}

	return client, nil
}

func bannerTiming(cfg *config.Config) dashboard.BannerTiming {
	return dashboard.BannerTiming{
		EnterDelay: cfg.BannerEnterDelay,
		Visible:    cfg.BannerVisible,
		Exit:       cfg.BannerExit,
	}
}
