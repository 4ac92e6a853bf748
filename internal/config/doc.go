// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config resolves the process-wide [models.Environment].
//
// The environment comes from exactly one source, selected by ENV_SOURCE:
//   - "env"  every field is read from the process environment;
//   - "http" a JSON document is fetched from the endpoint described by
//     ENV_SOURCE_HTTP, then fields set locally override it;
//   - "db"   reserved, always fails.
//
// Each field is declared once as a [FieldSpec] and coerced into one of the
// [SemanticType] values. A [Provider] performs the resolution once and
// memoizes the outcome; [ContractAddressFor] and [ProviderFor] answer lookups
// against the resolved environment.
package config
