/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/techcare/dashboard/dashboard"
)

var CmdChart = &cli.Command{
	Name:  "chart",
	Usage: "Render the blood pressure chart of the dashboard patient to an HTML file",
	Flags: []cli.Flag{
		configFlag,
		logLevelFlag,
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "output HTML file",
		},
		&cli.BoolFlag{
			Name:  "fallback",
			Usage: "render the fallback series without fetching",
		},
	},
	Action: chart,
}

func chart(ctx context.Context, cmd *cli.Command) error {
	out := cmd.String("out")
	if out == "" {
		return errOutputRequired
	}

	points := dashboard.FallbackSeries()

	if !cmd.Bool("fallback") {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		client, err := newPatientClient(cfg, nil)
		if err != nil {
			return err
		}

		acq, err := client.Acquire(ctx)
		if err != nil {
			return fmt.Errorf("failed to load patient data: %w", err)
		}

		points = dashboard.BloodPressureSeries(acq.Patient.DiagnosisHistory)
	}

	return writeChartFile(out, points)
}

func writeChartFile(path string, points []dashboard.Point) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := dashboard.WriteChartPage(f, points); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	appLogger.Info("wrote chart", "path", path, "points", len(points))

	return nil
}
