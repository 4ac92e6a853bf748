// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSHA256Hex_KnownVector(t *testing.T) {
	// sha256("abc")
	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		SHA256Hex("abc"))
}

func TestMatchesSHA256(t *testing.T) {
	digest := SHA256Hex("secret-key")

	tests := []struct {
		name   string
		secret string
		digest string
		want   bool
	}{
		{name: "match", secret: "secret-key", digest: digest, want: true},
		{name: "upper case digest", secret: "secret-key", digest: strings.ToUpper(digest), want: true},
		{name: "padded digest", secret: "secret-key", digest: " " + digest + "\n", want: true},
		{name: "wrong secret", secret: "other", digest: digest, want: false},
		{name: "empty digest", secret: "", digest: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesSHA256(tt.secret, tt.digest))
		})
	}
}
