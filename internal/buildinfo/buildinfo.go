// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package buildinfo carries build-time metadata injected by linker flags.
package buildinfo

import (
	"fmt"
	"io"
)

// notAvailable replaces metadata that was not injected at build time.
const notAvailable = "N/A"

// Info carries immutable build-time metadata embedded into binaries.
//
// Values are typically injected by linker flags during CI/CD and shown in
// CLI version output for diagnostics and release traceability.
type Info struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// New constructs [Info] from the provided build metadata. Empty values are
// reported as "N/A".
func New(buildVersion, buildDate, buildCommit string) Info {
	return Info{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

// BuildVersion returns the semantic version string of the build.
func (i Info) BuildVersion() string {
	return i.buildVersion
}

// BuildDate returns the build timestamp string.
func (i Info) BuildDate() string {
	return i.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (i Info) BuildCommit() string {
	return i.buildCommit
}

// Print writes the three build lines to w.
func (i Info) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		i.buildVersion, i.buildDate, i.buildCommit)
	return err
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
