// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package formatting

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/mr-tron/base58/base58"
)

const (
	checksumLen = 4

	// base58 conversion is quadratic, so large rosters should use base64.
	maxCB58EncodeSize = 16 * 1024 // 16 KB
)

var (
	errCB58TooLarge    = errors.New("byte slice too large for cb58")
	errMissingChecksum = errors.New("input string is smaller than the checksum size")
	errBadChecksum     = errors.New("invalid input checksum")
)

func encodeCB58(b []byte) (string, error) {
	if len(b) > maxCB58EncodeSize {
		return "", fmt.Errorf("%w: length (%d) > maximum (%d)", errCB58TooLarge, len(b), maxCB58EncodeSize)
	}
	checked := make([]byte, len(b)+checksumLen)
	copy(checked, b)
	copy(checked[len(b):], checksum(b))
	return base58.Encode(checked), nil
}

func decodeCB58(str string) ([]byte, error) {
	decoded, err := base58.Decode(str)
	if err != nil {
		return nil, err
	}
	if len(decoded) < checksumLen {
		return nil, errMissingChecksum
	}

	rawBytes := decoded[:len(decoded)-checksumLen]
	if !bytes.Equal(decoded[len(decoded)-checksumLen:], checksum(rawBytes)) {
		return nil, errBadChecksum
	}
	return rawBytes, nil
}

// checksum is the last 4 bytes of the sha256 of [b].
func checksum(b []byte) []byte {
	hash := sha256.Sum256(b)
	return hash[len(hash)-checksumLen:]
}
