// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-attestation-kit/internal/logger"
	"github.com/MKhiriev/go-attestation-kit/internal/utils"
	"github.com/MKhiriev/go-attestation-kit/models"
)

// RequestDescriptor describes the request that fetches the remote
// environment. It is read from ENV_SOURCE_HTTP.
type RequestDescriptor struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
	Data    json.RawMessage   `json:"data,omitempty"`
}

// remoteEnvelope is the body served by the remote configuration endpoint.
type remoteEnvelope struct {
	Success bool                `json:"success"`
	Env     *models.Environment `json:"env"`
}

var requestDescriptorField = FieldSpec{
	Name:     fieldEnvSourceHTTPRequest,
	Type:     JSON[RequestDescriptor](),
	Required: true,
}

type httpSource struct {
	snapshot Snapshot
	client   *utils.HTTPClient
	logger   *logger.Logger
}

// NewHTTPSource returns the [Source] that fetches the environment from the
// endpoint described by ENV_SOURCE_HTTP and overlays local overrides.
func NewHTTPSource(snapshot Snapshot, timeout time.Duration, log *logger.Logger) Source {
	client := utils.NewHTTPClient()
	client.
		SetTimeout(timeout).
		SetAllowGetMethodPayload(true)

	return &httpSource{snapshot: snapshot, client: client, logger: log}
}

func (s *httpSource) Name() string { return string(SourceHTTP) }

// Load issues exactly one request. There is no fallback to another source.
func (s *httpSource) Load(ctx context.Context) (*models.Environment, error) {
	v, err := ResolveStrict(s.snapshot, requestDescriptorField)
	if err != nil {
		return nil, err
	}
	desc := v.V.(RequestDescriptor)

	remote, err := s.fetch(ctx, desc)
	if err != nil {
		return nil, err
	}

	_, local, err := ResolveEnvironment(s.snapshot, s.logger)
	if err != nil {
		return nil, fmt.Errorf("error resolving local overrides: %w", err)
	}

	return ApplyLocalOverrides(remote, local), nil
}

func (s *httpSource) fetch(ctx context.Context, desc RequestDescriptor) (*models.Environment, error) {
	method := strings.ToUpper(strings.TrimSpace(desc.Method))
	if method == "" {
		method = http.MethodGet
	}

	req := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeaders(desc.Headers)
	if len(desc.Data) > 0 && string(desc.Data) != "null" {
		req.SetHeader("Content-Type", "application/json").
			SetBody([]byte(desc.Data))
	}

	s.logger.Info().Str("method", method).Str("url", desc.URL).Msg("fetching environment config")

	resp, err := req.Execute(method, desc.URL)
	if err != nil {
		return nil, &RemoteConfigError{URL: desc.URL, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &RemoteConfigError{URL: desc.URL, Err: fmt.Errorf("http %d", resp.StatusCode())}
	}

	var envelope remoteEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, &RemoteConfigError{URL: desc.URL, Err: fmt.Errorf("decode response: %w", err)}
	}
	if !envelope.Success || envelope.Env == nil {
		return nil, &RemoteConfigError{URL: desc.URL}
	}

	return envelope.Env, nil
}
