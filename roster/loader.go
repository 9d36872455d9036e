// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package roster

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/drawlots/drawlots/utils/constants"
	"github.com/drawlots/drawlots/utils/formatting"
	"github.com/drawlots/drawlots/utils/storage"
)

type Charset string

const (
	UTF8  Charset = "utf-8"
	UTF16 Charset = "utf-16"
	GBK   Charset = "gbk"
)

var (
	ErrEmptyRoster = errors.New("roster is empty")

	utf8BOM    = []byte{0xef, 0xbb, 0xbf}
	utf16LEBOM = []byte{0xff, 0xfe}
	utf16BEBOM = []byte{0xfe, 0xff}
)

type LoadOptions struct {
	Options `yaml:",inline"`
	// Encoding is used to decode envelope files.
	Encoding formatting.Encoding `json:"encoding" yaml:"encoding"`
}

func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Options:  DefaultOptions(),
		Encoding: formatting.Base64,
	}
}

// Roster is a normalized name list read from a file.
type Roster struct {
	Path  string   `json:"path"`
	Names []string `json:"names"`
	// Charset the file was read as. Envelopes are always UTF-8.
	Charset Charset `json:"charset"`
	// Envelope is true if the file was encoded.
	Envelope   bool `json:"envelope"`
	Duplicates int  `json:"duplicates"`
	Dropped    int  `json:"dropped"`
}

func (r *Roster) HasDuplicates() bool {
	return r.Duplicates > 0
}

// Load reads the roster stored at [path]. Files ending in the envelope
// extension are decoded first, anything else is treated as plain text.
func Load(path string, opts LoadOptions) (*Roster, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, b, opts)
}

// Parse is [Load] for content that was already read. [path] only decides
// whether [b] is an envelope.
func Parse(path string, b []byte, opts LoadOptions) (*Roster, error) {
	r := &Roster{
		Path:     path,
		Charset:  UTF8,
		Envelope: storage.HasExt(path, constants.EnvelopeExt),
	}

	var text string
	if r.Envelope {
		var err error
		text, err = Decode(string(bytes.TrimPrefix(b, utf8BOM)), opts.Encoding)
		if err != nil {
			return nil, fmt.Errorf("couldn't decode %q: %w", path, err)
		}
	} else {
		var err error
		text, r.Charset, err = decodeText(b)
		if err != nil {
			return nil, fmt.Errorf("couldn't read %q: %w", path, err)
		}
	}

	list := Normalize(text, opts.Options)
	if len(list.Names) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyRoster, path)
	}
	r.Names = list.Names
	r.Duplicates = list.Duplicates
	r.Dropped = list.Dropped
	return r, nil
}

// decodeText converts [b] to a string. Byte order marks are honoured, bytes
// that aren't valid UTF-8 are read as GBK.
func decodeText(b []byte) (string, Charset, error) {
	if bytes.HasPrefix(b, utf16LEBOM) || bytes.HasPrefix(b, utf16BEBOM) {
		decoded, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), b)
		if err != nil {
			return "", "", err
		}
		return string(decoded), UTF16, nil
	}

	b = bytes.TrimPrefix(b, utf8BOM)
	if utf8.Valid(b) {
		return string(b), UTF8, nil
	}

	decoded, err := simplifiedchinese.GBK.NewDecoder().Bytes(b)
	if err != nil {
		return "", "", err
	}
	return string(decoded), GBK, nil
}
