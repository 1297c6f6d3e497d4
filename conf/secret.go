// Copyright (c) 2026 Edgegrove and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package conf

import (
	"log/slog"
)

// redacted is what a Secret renders as everywhere except Reveal.
const redacted = "[REDACTED]"

// Secret holds sensitive configuration material, such as a value sourced
// from a secret store. It renders as "[REDACTED]" through fmt, log/slog and
// encoding/json so the underlying value cannot leak accidentally; callers
// retrieve it explicitly with [Secret.Reveal].
//
// Secret implements encoding.TextUnmarshaler, so extraction fills Secret
// fields from plain string config values:
//
//	type Config struct {
//	    ApiKey conf.Secret `config:"api_key"`
//	}
type Secret struct {
	value string
}

// NewSecret wraps the given value.
func NewSecret(value string) Secret {
	return Secret{value: value}
}

// Reveal returns the underlying sensitive value.
func (s Secret) Reveal() string {
	return s.value
}

// String implements the fmt.Stringer interface.
func (s Secret) String() string {
	return redacted
}

// GoString implements the fmt.GoStringer interface, covering the %#v verb.
func (s Secret) GoString() string {
	return "conf.Secret(" + redacted + ")"
}

// LogValue implements the slog.LogValuer interface.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

// MarshalJSON implements the json.Marshaler interface.
func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (s *Secret) UnmarshalText(b []byte) error {
	s.value = string(b)
	return nil
}
