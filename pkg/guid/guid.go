// Package guid defines the GUID value format used by the lifecycle API
// and provides validation and generation helpers for it.
package guid

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Length is the number of characters in a well-formed GUID.
const Length = 32

// Validation errors returned by Validate.
var (
	ErrBadLength   = errors.New("guid needs to be 32 characters")
	ErrNotUpperHex = errors.New("guid is not an upper-case hexadecimal number")
)

// ErrExpireNotFuture is returned by ValidateExpire for timestamps that are
// not strictly after the current time.
var ErrExpireNotFuture = errors.New("specified time is not in the future")

// Record is the API resource exchanged with the GUID service.
// All fields are transported as JSON strings.
type Record struct {
	GUID   string `json:"guid"`
	User   string `json:"user"`
	Expire string `json:"expire"`
}

// Validate checks that s is a well-formed GUID: exactly 32 upper-case
// hexadecimal characters [0-9A-F].
func Validate(s string) error {
	if len(s) != Length {
		return ErrBadLength
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return ErrNotUpperHex
		}
	}
	return nil
}

// New generates a fresh well-formed GUID from random UUID bytes.
func New() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:]))
}

// NewWithPrefix generates a GUID whose first character is forced to c.
// Useful for minting identifiers that trigger a specific simulated
// status class. c must be an upper-case hexadecimal digit.
func NewWithPrefix(c byte) (string, error) {
	if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
		return "", fmt.Errorf("prefix %q is not an upper-case hexadecimal digit", string(c))
	}
	return string(c) + New()[1:], nil
}

// ValidateExpire checks that s is an integer number of seconds since the
// epoch strictly after the current time.
func ValidateExpire(s string) error {
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("expire must be an integer number of epoch seconds, got %q", s)
	}
	if secs <= time.Now().Unix() {
		return ErrExpireNotFuture
	}
	return nil
}
