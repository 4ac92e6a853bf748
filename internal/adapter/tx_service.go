// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-attestation-kit/internal/logger"
	"github.com/MKhiriev/go-attestation-kit/internal/utils"
	"github.com/MKhiriev/go-attestation-kit/models"
)

const (
	// webhookRoutingKey tags every request so the service routes its
	// webhooks back to this application.
	webhookRoutingKey = "bloom-web"

	apiTokenHeader = "API_TOKEN"
	txsPath        = "/api/txs"
)

type httpTxService struct {
	client *utils.HTTPClient
	env    EnvironmentProvider
	logger *logger.Logger
}

// NewHTTPTxService constructs the HTTP implementation of [TxService]. The
// service address and key are read from env on every call.
func NewHTTPTxService(env EnvironmentProvider, timeout time.Duration, log *logger.Logger) TxService {
	client := utils.NewHTTPClient()
	client.SetTimeout(timeout)

	return &httpTxService{client: client, env: env, logger: log}
}

// GetTx implements [TxService]. POST /api/txs/{id}
func (s *httpTxService) GetTx(ctx context.Context, id int64) (json.RawMessage, error) {
	return s.request(ctx, http.MethodPost, txPath(id), struct{}{})
}

// GetTxs implements [TxService]. POST /api/txs
func (s *httpTxService) GetTxs(ctx context.Context, query models.TxQuery) (json.RawMessage, error) {
	return s.request(ctx, http.MethodPost, txsPath, query)
}

// SendTx implements [TxService]. POST /api/txs
func (s *httpTxService) SendTx(ctx context.Context, req models.SendTxRequest) (json.RawMessage, error) {
	return s.request(ctx, http.MethodPost, txsPath, req)
}

// DestroyTx implements [TxService]. DELETE /api/txs/{id}
func (s *httpTxService) DestroyTx(ctx context.Context, id int64) (json.RawMessage, error) {
	return s.request(ctx, http.MethodDelete, txPath(id), struct{}{})
}

func (s *httpTxService) request(ctx context.Context, method, path string, params any) (json.RawMessage, error) {
	env, err := s.env.Environment(ctx)
	if err != nil {
		return nil, fmt.Errorf("tx service environment: %w", err)
	}
	if env.TxService == nil || env.TxService.Address == "" {
		return nil, ErrTxServiceNotConfigured
	}

	body, err := txBody(params)
	if err != nil {
		return nil, fmt.Errorf("tx service request body: %w", err)
	}

	url := strings.TrimRight(env.TxService.Address, "/") + path
	s.logger.Debug().Str("method", method).Str("url", url).Msg("initiating request to tx-service")

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader(apiTokenHeader, env.TxService.Key).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Execute(method, url)
	if err != nil {
		return nil, fmt.Errorf("tx service request: %w", err)
	}

	s.logger.Debug().Int("status", resp.StatusCode()).Str("url", url).Msg("completed tx-service request")

	if err = checkStatus(method, path, resp); err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}

func txPath(id int64) string {
	return txsPath + "/" + strconv.FormatInt(id, 10)
}

// txBody flattens params into a JSON object and adds the webhook routing key.
func txBody(params any) (map[string]any, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}

	var body map[string]any
	if err = json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	if body == nil {
		body = make(map[string]any, 1)
	}
	body["webhook_key"] = webhookRoutingKey

	return body, nil
}
