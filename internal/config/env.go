// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"

	"github.com/caarlos0/env/v11"
)

// EnvironmentFromOS snapshots the process environment into a key/value map
// using the caarlos0/env parser, so KEY=VALUE pairs whose value contains "="
// are split the same way for the loader and for [env.Parse].
func EnvironmentFromOS() map[string]string {
	return env.ToMap(os.Environ())
}

// lookupEnv returns the environment value for key. A variable that is set
// to "" still counts as present and is coerced like any other text.
func lookupEnv(environ map[string]string, key string) (string, bool) {
	v, ok := environ[key]
	return v, ok
}
