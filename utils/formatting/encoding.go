// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var errInvalidEncoding = errors.New("invalid encoding")

// Encoding is a byte to text encoding used for roster envelopes.
type Encoding uint8

const (
	// Base64 specifies the standard, padded base64 alphabet
	Base64 Encoding = iota
	// CB58 specifies base58 plus a 4 byte checksum
	CB58
)

// ParseEncoding returns the Encoding named by [s], ignoring case.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "base64":
		return Base64, nil
	case "cb58":
		return CB58, nil
	default:
		return 0, fmt.Errorf("%w: %q", errInvalidEncoding, s)
	}
}

func (enc Encoding) String() string {
	switch enc {
	case Base64:
		return "base64"
	case CB58:
		return "cb58"
	default:
		return errInvalidEncoding.Error()
	}
}

func (enc Encoding) valid() bool {
	switch enc {
	case Base64, CB58:
		return true
	}
	return false
}

func (enc Encoding) MarshalText() ([]byte, error) {
	if !enc.valid() {
		return nil, errInvalidEncoding
	}
	return []byte(enc.String()), nil
}

func (enc *Encoding) UnmarshalText(text []byte) error {
	parsed, err := ParseEncoding(string(text))
	if err != nil {
		return err
	}
	*enc = parsed
	return nil
}

// Encode [bytes] to a string using the given encoding format
func Encode(encoding Encoding, bytes []byte) (string, error) {
	switch encoding {
	case Base64:
		return base64.StdEncoding.EncodeToString(bytes), nil
	case CB58:
		return encodeCB58(bytes)
	default:
		return "", errInvalidEncoding
	}
}

// Decode [str] to bytes using the given encoding.
// If [str] is the empty string, returns a nil byte slice.
func Decode(encoding Encoding, str string) ([]byte, error) {
	if !encoding.valid() {
		return nil, errInvalidEncoding
	} else if len(str) == 0 {
		return nil, nil
	}

	switch encoding {
	case CB58:
		return decodeCB58(str)
	default:
		return base64.StdEncoding.Strict().DecodeString(str)
	}
}
