// Package id generates compact random identifiers for persisted records.
package id

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewID returns a lowercase base32 identifier backed by a random UUIDv4.
//
// The encoded form is 26 characters drawn from [a-z2-7], safe for URLs and
// primary keys without escaping.
func NewID() (string, error) {
	var raw [16]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	raw[6] = (raw[6] & 0x0F) | 0x40 // version 4
	raw[8] = (raw[8] & 0x3F) | 0x80 // RFC 4122 variant

	return strings.ToLower(encoding.EncodeToString(raw[:])), nil
}
