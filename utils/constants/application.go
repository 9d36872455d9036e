// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

const (
	// AppName is the name of this application
	AppName = "drawlots"

	// EnvPrefix is prepended to every configuration key read from the
	// environment.
	EnvPrefix = "DRAWLOTS"

	// EnvelopeExt marks files whose content is an encoded name list.
	EnvelopeExt = ".rcp"

	// SampleFileName is loaded automatically on startup when it exists in
	// the working directory and auto loading is enabled.
	SampleFileName = "sample" + EnvelopeExt

	// DefaultEnvelopeName is used when the operator doesn't name the output
	// of an encoding.
	DefaultEnvelopeName = "sample_list"
)
