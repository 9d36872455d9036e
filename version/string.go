// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"fmt"
	"runtime"

	"github.com/drawlots/drawlots/utils/constants"
)

// GitCommit is set in the build script at compile time
var GitCommit string

// String is displayed by the version command
func String() string {
	return format(GitCommit)
}

func format(commit string) string {
	formatted := fmt.Sprintf("%s/%s [go=%s", constants.AppName, Current, runtime.Version())
	if commit != "" {
		formatted += ", commit=" + commit
	}
	return formatted + "]"
}
