// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package roster

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/drawlots/drawlots/utils/formatting"
)

var (
	ErrMalformedEnvelope = errors.New("malformed envelope")

	errInvalidUTF8 = errors.New("decoded envelope is not valid UTF-8")
)

// Encode joins [names] with newlines and encodes them with [EncodeText].
func Encode(names []string, enc formatting.Encoding) (string, error) {
	return EncodeText(strings.Join(names, "\n"), enc)
}

// EncodeText normalizes line endings, strips surrounding whitespace and
// encodes the remaining text, followed by a single newline. Blank text
// encodes to the empty string.
func EncodeText(text string, enc formatting.Encoding) (string, error) {
	text = strings.TrimSpace(lineEndings.Replace(text))
	if text == "" {
		return "", nil
	}
	return formatting.Encode(enc, []byte(text+"\n"))
}

// Decode reverses [EncodeText]. ASCII whitespace anywhere in [envelope] is
// ignored so wrapped envelopes are accepted. A blank envelope decodes to the
// empty string, any other failure wraps [ErrMalformedEnvelope].
func Decode(envelope string, enc formatting.Encoding) (string, error) {
	compact := strings.Map(func(r rune) rune {
		if isASCIISpace(r) {
			return -1
		}
		return r
	}, envelope)
	if compact == "" {
		return "", nil
	}

	b, err := formatting.Decode(enc, compact)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %w", ErrMalformedEnvelope, errInvalidUTF8)
	}
	return strings.TrimSpace(string(b)), nil
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
