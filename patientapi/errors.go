/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package patientapi

import (
	"errors"
	"fmt"
)

var (
	errBaseURLRequired     = errors.New("patient api base url is required")
	errInvalidBaseURL      = errors.New("patient api base url must be absolute http(s)")
	errCredentialsRequired = errors.New("patient api credentials are required")
)

// TransportError reports a request that never produced an HTTP response.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("patient api request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError reports a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// DecodeError reports a response body that is not a JSON patient list.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode patient list: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NotFoundError reports that no record matched the target name.
type NotFoundError struct {
	Name     string
	Searched int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found in patient data", e.Name)
}
