// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-attestation-kit/models"
	"github.com/shopspring/decimal"
)

// SemanticType is the closed set of types a raw configuration string can be
// coerced into. The interface is sealed: only the values declared in this
// file implement it.
type SemanticType interface {
	// Name is the short type name used in error messages.
	Name() string

	coerce(raw string) (any, error)
}

var (
	Text    SemanticType = textType{}
	Integer SemanticType = IntegerBase(10)
	Float   SemanticType = floatType{}
	Boolean SemanticType = boolType{}
	Buffer  SemanticType = bufferType{}
	Decimal SemanticType = decimalType{}
)

// JSON returns the json-document type decoding into T.
func JSON[T any]() SemanticType { return jsonType[T]{} }

// IntegerBase returns the integer type parsed in the given base.
// Base 0 infers the base from the literal prefix.
func IntegerBase(base int) SemanticType { return intType{base: base} }

// Coerce converts raw into t. Failures wrap [ErrCoercion].
func Coerce(t SemanticType, raw string) (any, error) {
	v, err := t.coerce(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCoercion, t.Name(), err)
	}
	return v, nil
}

// IsAffirmative reports whether raw is one of true, t, yes, y (any case).
func IsAffirmative(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "t", "yes", "y":
		return true
	}
	return false
}

type textType struct{}

func (textType) Name() string                   { return "string" }
func (textType) coerce(raw string) (any, error) { return raw, nil }

type jsonType[T any] struct{}

func (jsonType[T]) Name() string { return "json" }

func (jsonType[T]) coerce(raw string) (any, error) {
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, err
	}
	return v, nil
}

type intType struct {
	base int
}

func (intType) Name() string { return "int" }

func (t intType) coerce(raw string) (any, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), t.base, 64)
}

type floatType struct{}

func (floatType) Name() string { return "float" }

func (floatType) coerce(raw string) (any, error) {
	return strconv.ParseFloat(strings.TrimSpace(raw), 64)
}

type boolType struct{}

func (boolType) Name() string                   { return "bool" }
func (boolType) coerce(raw string) (any, error) { return IsAffirmative(raw), nil }

type bufferType struct{}

func (bufferType) Name() string { return "buffer" }

func (bufferType) coerce(raw string) (any, error) {
	return models.ParseHexBytes(raw)
}

type decimalType struct{}

func (decimalType) Name() string { return "bn" }

func (decimalType) coerce(raw string) (any, error) {
	return decimal.NewFromString(strings.TrimSpace(raw))
}

func isJSON(t SemanticType) bool {
	return t.Name() == "json"
}
