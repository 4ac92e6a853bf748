// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHex is returned when a 0x-prefixed value is not valid hex.
var ErrInvalidHex = errors.New("invalid hex string")

// HexBytes is raw key material. It is decoded from either a 0x-prefixed hex
// string or plain text, and always encoded back as 0x-prefixed hex.
type HexBytes []byte

// ParseHexBytes decodes raw the way signing keys are supplied: a 0x prefix
// means hex (an odd number of digits gets a leading zero), anything else is
// taken as the UTF-8 bytes of the text.
func ParseHexBytes(raw string) (HexBytes, error) {
	if !strings.HasPrefix(raw, "0x") && !strings.HasPrefix(raw, "0X") {
		return HexBytes(raw), nil
	}

	digits := raw[2:]
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}

	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}

	return b, nil
}

// String returns the 0x-prefixed hex form.
func (h HexBytes) String() string {
	return "0x" + hex.EncodeToString(h)
}

func (h HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	b, err := ParseHexBytes(s)
	if err != nil {
		return err
	}

	*h = b
	return nil
}
