// Copyright (c) 2026 Edgegrove and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package conf

import (
	"os"
	"strings"
)

// Env represents a Provider whose underlying values are extracted from
// environment variables.
type Env struct {
	environ func() []string
}

// FromEnv returns a Provider which files the environment variables of the
// current process under the [Default] profile.
func FromEnv() Env {
	return Env{
		environ: os.Environ,
	}
}

// Metadata implements the Provider interface.
func (src Env) Metadata() Metadata {
	return Named("process environment")
}

// Data implements the Provider interface.
func (src Env) Data() (map[Profile]map[string]any, error) {
	dict := make(map[string]any)
	for _, pair := range src.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		dict[k] = v
	}
	return map[Profile]map[string]any{Default: dict}, nil
}
