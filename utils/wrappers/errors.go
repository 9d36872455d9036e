// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import "errors"

// Errs collects the errors of a sequence of independent steps. Every non-nil
// error is kept, so a caller sees all failed steps rather than only the first.
type Errs struct{ Err error }

func (errs *Errs) Errored() bool { return errs.Err != nil }

func (errs *Errs) Add(added ...error) {
	for _, err := range added {
		if err != nil {
			errs.Err = errors.Join(errs.Err, err)
		}
	}
}
