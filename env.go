// Copyright (c) 2026 Edgegrove and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package workerenv

import (
	"io/fs"
	"os"
	"strings"
)

// Env is the two-tier environment binding store a worker runtime exposes:
// plain-text variables and secrets, both keyed by upper-cased binding names.
// Lookups follow the os.LookupEnv idiom; any store-level failure is reported
// uniformly as "not found".
//
// Implementations are read-only from this package's perspective and must
// outlive any [Bindings] provider constructed from them.
type Env interface {
	// Var looks up a binding in the plain-variable tier.
	Var(name string) (string, bool)

	// Secret looks up a binding in the secret tier.
	Secret(name string) (string, bool)
}

// MapEnv is an in-memory Env, useful for tests and local development.
type MapEnv struct {
	Vars    map[string]string
	Secrets map[string]string
}

// Var implements the Env interface.
func (e MapEnv) Var(name string) (string, bool) {
	v, ok := e.Vars[name]
	return v, ok
}

// Secret implements the Env interface.
func (e MapEnv) Secret(name string) (string, bool) {
	v, ok := e.Secrets[name]
	return v, ok
}

type systemEnv struct {
	lookup  func(string) (string, bool)
	secrets fs.FS
}

// SystemEnv returns an Env backed by the current process: the plain-variable
// tier reads environment variables and the secret tier reads files named
// after the binding under secretsDir (the docker/kubernetes "/run/secrets"
// layout), with a single trailing newline trimmed. An empty secretsDir
// leaves the secret tier permanently empty.
func SystemEnv(secretsDir string) Env {
	env := systemEnv{
		lookup: os.LookupEnv,
	}
	if secretsDir != "" {
		env.secrets = os.DirFS(secretsDir)
	}
	return env
}

// Var implements the Env interface.
func (e systemEnv) Var(name string) (string, bool) {
	return e.lookup(name)
}

// Secret implements the Env interface.
func (e systemEnv) Secret(name string) (string, bool) {
	if e.secrets == nil {
		return "", false
	}
	b, err := fs.ReadFile(e.secrets, name)
	if err != nil {
		return "", false
	}
	value := string(b)
	value = strings.TrimSuffix(value, "\n")
	value = strings.TrimSuffix(value, "\r")
	return value, true
}
