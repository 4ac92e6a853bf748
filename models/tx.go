// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TxQuery filters transactions listed by the transaction service.
type TxQuery struct {
	Where map[string]any `json:"where,omitempty"`
}

// SendTxRequest asks the transaction service to submit a contract call.
type SendTxRequest struct {
	Tx       TxCall     `json:"tx"`
	Webhook  *TxWebhook `json:"webhook,omitempty"`
	ExpireIn *int64     `json:"expireIn,omitempty"`
}

// TxCall describes the contract method to invoke.
type TxCall struct {
	Network            Network        `json:"network"`
	ContractName       ContractName   `json:"contract_name"`
	Method             string         `json:"method"`
	Args               map[string]any `json:"args"`
	MaxEstimateRetries *int           `json:"max_estimate_retries,omitempty"`
}

// TxWebhook tells the transaction service where to report progress.
type TxWebhook struct {
	Mined   *bool  `json:"mined,omitempty"`
	Address string `json:"address,omitempty"`
	Key     string `json:"key,omitempty"`
}
