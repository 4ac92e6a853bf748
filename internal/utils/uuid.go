// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// NewTimeOrderedID returns a UUIDv7 string, so ids of stored records sort by
// creation time. It falls back to a random UUIDv4 if the v7 clock read fails.
func NewTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
