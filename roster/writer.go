// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package roster

import (
	"errors"
	"fmt"

	"github.com/drawlots/drawlots/utils/constants"
	"github.com/drawlots/drawlots/utils/formatting"
	"github.com/drawlots/drawlots/utils/perms"
	"github.com/drawlots/drawlots/utils/storage"
)

var ErrFileExists = errors.New("file already exists")

// WriteEnvelope encodes [names] into the envelope file at [path], adding the
// envelope extension if it is missing. It returns the path that was written.
// An existing file is only replaced if [overwrite] is set.
func WriteEnvelope(path string, names []string, enc formatting.Encoding, overwrite bool) (string, error) {
	path = storage.WithExt(path, constants.EnvelopeExt)
	if len(names) == 0 {
		return "", fmt.Errorf("%w: refusing to write %q", ErrEmptyRoster, path)
	}

	if !overwrite {
		exists, err := storage.FileExists(path)
		if err != nil {
			return "", err
		}
		if exists {
			return "", fmt.Errorf("%w: %q", ErrFileExists, path)
		}
	}

	envelope, err := Encode(names, enc)
	if err != nil {
		return "", err
	}
	if err := perms.WriteFile(path, []byte(envelope), perms.ReadWrite); err != nil {
		return "", fmt.Errorf("couldn't write envelope: %w", err)
	}
	return path, nil
}
