// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

// Current is the version of this build
var Current = &Semantic{
	Major: 1,
	Minor: 2,
	Patch: 0,
}
