// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusKinds maps the tx service replies callers branch on.
var statusKinds = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrUnprocessableEntity,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// StatusError is a non-2xx reply from the tx service. It unwraps to one of
// the sentinel errors of this package when the status has one.
type StatusError struct {
	Method string
	Path   string
	Status int
	Body   string
	kind   error
}

func (e *StatusError) Error() string {
	reason := http.StatusText(e.Status)
	if e.kind != nil {
		reason = e.kind.Error()
	}

	msg := fmt.Sprintf("tx service %s %s: %d %s", e.Method, e.Path, e.Status, reason)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *StatusError) Unwrap() error {
	return e.kind
}

// checkStatus returns nil for a 2xx reply and a *StatusError otherwise.
func checkStatus(method, path string, resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	return &StatusError{
		Method: method,
		Path:   path,
		Status: resp.StatusCode(),
		Body:   strings.TrimSpace(string(resp.Body())),
		kind:   statusKinds[resp.StatusCode()],
	}
}
