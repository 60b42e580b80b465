/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package patientapi fetches the patient list from the remote patient API
// and resolves the dashboard patient from it.
package patientapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"

	"github.com/techcare/dashboard/logging"
	"github.com/techcare/dashboard/metrics"
)

const maxErrorBody = 2048

// Options configures a Client.
type Options struct {
	BaseURL  string
	Username string
	Password string

	// Timeout bounds each request. Zero means no timeout beyond the
	// request context.
	Timeout time.Duration

	GivenName  string
	FamilyName string

	// Transport overrides the HTTP transport, mainly for tests.
	Transport http.RoundTripper

	Metrics *metrics.Manager
}

// Acquisition is the result of one successful load: the resolved patient
// and the full list it was found in.
type Acquisition struct {
	Patient   Record
	Patients  []Record
	FetchedAt time.Time
}

// Client talks to the patient API.
type Client struct {
	http     *resty.Client
	endpoint string
	matcher  Matcher
	metrics  *metrics.Manager
	logger   *log.Logger
}

// New constructs a Client. Credentials are required; the API rejects
// anonymous requests.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, errBaseURLRequired
	}

	u, err := url.Parse(opts.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errInvalidBaseURL
	}

	if opts.Username == "" || opts.Password == "" {
		return nil, errCredentialsRequired
	}

	logger := logging.Logger(logging.SourceAPI)

	client := resty.New().
		SetBasicAuth(opts.Username, opts.Password).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetLogger(logger)

	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	if opts.Transport != nil {
		client.SetTransport(opts.Transport)
	}

	return &Client{
		http:     client,
		endpoint: u.String(),
		matcher:  NewMatcher(opts.GivenName, opts.FamilyName),
		metrics:  opts.Metrics,
		logger:   logger,
	}, nil
}

// ListPatients performs one authenticated GET and decodes the patient list.
// It never retries. Records that fail to decode are returned with their
// roster fields only.
func (c *Client) ListPatients(ctx context.Context) ([]Record, error) {
	records, _, err := c.listPatients(ctx)

	return records, err
}

func (c *Client) listPatients(ctx context.Context) ([]Record, map[int]error, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(c.endpoint)
	if err != nil {
		return nil, nil, &TransportError{URL: c.endpoint, Err: err}
	}

	if !resp.IsSuccess() {
		body := resp.Body()
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}

		return nil, nil, &StatusError{StatusCode: resp.StatusCode(), Body: string(body)}
	}

	records, bad, err := decodeRecords(resp.Body())
	if err != nil {
		return nil, nil, &DecodeError{Err: err}
	}

	for i, recErr := range bad {
		c.logger.Warn("Patient record partially decoded", "name", records[i].Name, "error", recErr)
	}

	return records, bad, nil
}

// Acquire fetches the patient list and resolves the dashboard patient.
func (c *Client) Acquire(ctx context.Context) (*Acquisition, error) {
	start := time.Now()

	acq, err := c.acquire(ctx)
	c.metrics.ObserveAcquisition(Outcome(err), time.Since(start))

	if err != nil {
		c.logger.Error("Patient acquisition failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	c.logger.Info("Patient data loaded",
		"patient_id", string(acq.Patient.ID),
		"patients", len(acq.Patients),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return acq, nil
}

func (c *Client) acquire(ctx context.Context) (*Acquisition, error) {
	records, bad, err := c.listPatients(ctx)
	if err != nil {
		return nil, err
	}

	i := c.matcher.Index(records)
	if i < 0 {
		return nil, &NotFoundError{Name: c.matcher.DisplayName(), Searched: len(records)}
	}

	if recErr, ok := bad[i]; ok {
		return nil, &DecodeError{Err: recErr}
	}

	return &Acquisition{
		Patient:   records[i],
		Patients:  records,
		FetchedAt: time.Now(),
	}, nil
}

// Outcome classifies an acquisition error for metrics.
func Outcome(err error) string {
	var (
		transportErr *TransportError
		statusErr    *StatusError
		decodeErr    *DecodeError
		notFoundErr  *NotFoundError
	)

	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.As(err, &statusErr):
		return metrics.OutcomeStatus
	case errors.As(err, &decodeErr):
		return metrics.OutcomeDecode
	case errors.As(err, &notFoundErr):
		return metrics.OutcomeNotFound
	case errors.As(err, &transportErr):
		return metrics.OutcomeTransport
	default:
		return metrics.OutcomeTransport
	}
}
