// Copyright (c) 2026 Edgegrove and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package workerenv

import (
	"strings"

	"github.com/edgegrove/workerenv/conf"
)

// Bindings is a [conf.Provider] that reads values from a worker runtime's
// environment bindings.
//
// Field names are discovered from the target struct and upper-cased to
// derive binding names (e.g. `api_base_url` → `API_BASE_URL`). For each
// binding the plain-variable tier is tried first; the secret tier is the
// fallback. Missing bindings are silently skipped, allowing other providers
// in the merge stack to supply defaults.
type Bindings struct {
	env     Env
	fields  []string
	profile conf.Profile
}

// FromStruct creates a provider that reads all fields declared by the struct
// type T from env. The field list is derived once, here, purely from T's
// type declaration; env is not consulted until [Bindings.Data] is called.
func FromStruct[T any](env Env) *Bindings {
	return &Bindings{
		env:     env,
		fields:  conf.FieldNames[T](),
		profile: conf.Default,
	}
}

// Profile sets the profile to file values under. It returns the receiver
// for chaining and has no effect on field discovery or lookup.
func (b *Bindings) Profile(profile conf.Profile) *Bindings {
	b.profile = profile
	return b
}

// Metadata implements the [conf.Provider] interface.
func (b *Bindings) Metadata() conf.Metadata {
	return conf.Named("worker environment bindings")
}

// Data implements the [conf.Provider] interface. It performs the lookups
// fresh on every call, reflecting the environment's current state. Data
// never fails; a binding absent from both tiers simply yields no entry.
func (b *Bindings) Data() (map[conf.Profile]map[string]any, error) {
	dict := make(map[string]any, len(b.fields))
	for _, field := range b.fields {
		binding := strings.ToUpper(field)
		value, ok := b.env.Var(binding)
		if !ok {
			value, ok = b.env.Secret(binding)
		}
		if !ok {
			continue
		}
		dict[field] = value
	}
	return map[conf.Profile]map[string]any{b.profile: dict}, nil
}
