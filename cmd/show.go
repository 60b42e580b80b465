/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/techcare/dashboard/dashboard"
	"github.com/techcare/dashboard/patientapi"
)

var CmdShow = &cli.Command{
	Name:  "show",
	Usage: "Fetch the dashboard patient once and print what the dashboard would show",
	Flags: []cli.Flag{
		configFlag,
		logLevelFlag,
	},
	Action: show,
}

func show(ctx context.Context, cmd *cli.Command) error {
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

	writeDisplay(cmd.Root().Writer, acq)

	return nil
}

func writeDisplay(w io.Writer, acq *patientapi.Acquisition) {
	d := dashboard.Derive(acq, dashboard.Selection{}.Resolve(acq))

	fmt.Fprintf(w, "Patient:            %s\n", deref(d.PatientName))
	fmt.Fprintf(w, "Date of birth:      %s\n", deref(d.DateOfBirth))
	fmt.Fprintf(w, "Gender:             %s\n", deref(d.Gender))
	fmt.Fprintf(w, "Contact:            %s\n", deref(d.PhoneNumber))
	fmt.Fprintf(w, "Emergency contact:  %s\n", deref(d.EmergencyContact))
	fmt.Fprintf(w, "Insurance:          %s\n", deref(d.InsuranceType))
	fmt.Fprintf(w, "Respiratory rate:   %s bpm\n", d.RespiratoryRate)
	fmt.Fprintf(w, "Temperature:        %s°F\n", d.Temperature)
	fmt.Fprintf(w, "Heart rate:         %s bpm\n", d.HeartRate)
	fmt.Fprintf(w, "Blood pressure:     %s/%s mmHg\n", d.Systolic, d.Diastolic)

	fmt.Fprintln(w, "\nBlood pressure history:")
	for _, p := range d.Chart {
		fmt.Fprintf(w, "  %-10s %3d/%d\n", p.Month, p.Systolic, p.Diastolic)
	}

	if len(d.Diagnostics) > 0 {
		fmt.Fprintln(w, "\nDiagnostics:")
		for _, row := range d.Diagnostics {
			fmt.Fprintf(w, "  %s [%s] %s\n", row.Problem, row.Status, row.Description)
		}
	}

	if len(d.LabResults) > 0 {
		names := make([]string, 0, len(d.LabResults))
		for _, l := range d.LabResults {
			names = append(names, l.Name)
		}
		fmt.Fprintf(w, "\nLab results: %s\n", strings.Join(names, ", "))
	}
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}

	return *s
}
