// Copyright (c) 2026 Edgegrove and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package conf

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Profile identifies the logical configuration layer a provider files its
// values under. Profiles only affect where values are placed and which of
// them extraction sees, never how they are looked up.
type Profile string

// Default is the profile providers file values under unless told otherwise.
const Default Profile = "default"

// Metadata describes a provider for diagnostics and error attribution.
type Metadata struct {
	Name string
}

// Named returns a Metadata carrying the given descriptive name.
func Named(name string) Metadata {
	return Metadata{Name: name}
}

// Provider is a source of configuration values, grouped by profile. The
// inner dictionaries may be nested; nested values are flattened into dotted
// keys when merged.
type Provider interface {
	Metadata() Metadata

	// Data is invoked on every extraction, so its result must reflect the
	// underlying source's current state rather than a cached snapshot.
	Data() (map[Profile]map[string]any, error)
}

// Layers is an ordered collection of providers together with the profile
// extraction will select.
type Layers struct {
	providers []Provider
	profile   Profile
}

// Merge combines providers into a single layered view. Later providers
// override earlier ones on a per key basis.
func Merge(providers ...Provider) *Layers {
	return &Layers{
		providers: providers,
		profile:   Default,
	}
}

// Select returns Layers extracting from the given profile instead of
// [Default]. Values filed under [Default] remain visible but are overridden
// by values filed under the selected profile.
func (l *Layers) Select(profile Profile) *Layers {
	return &Layers{
		providers: l.providers,
		profile:   profile,
	}
}

// ProviderError occurs when a provider fails to produce its data.
type ProviderError struct {
	Provider string
	Cause    error
}

// Error implements the error interface.
func (e ProviderError) Error() string {
	return fmt.Sprintf("provider %q failed: %s", e.Provider, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e ProviderError) Unwrap() error {
	return e.Cause
}

// MissingFieldError occurs when no provider supplied a value for a required
// struct field.
type MissingFieldError struct {
	Field string
}

// Error implements the error interface.
func (e MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// InvalidTargetError occurs when the extraction target is not a non-nil
// pointer to a struct.
type InvalidTargetError struct {
	Target any
}

// Error implements the error interface.
func (e InvalidTargetError) Error() string {
	return fmt.Sprintf("extraction target must be a non-nil struct pointer, got %T", e.Target)
}

// Extract merges all providers and decodes the selected profile's view into
// v, which must be a non-nil pointer to a struct. Every required field of v
// that no provider supplied is reported via a [MissingFieldError]; the
// returned error joins all of them.
func (l *Layers) Extract(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return InvalidTargetError{Target: v}
	}

	merged, err := l.merged()
	if err != nil {
		return err
	}

	if err := checkRequired(rv.Elem().Type(), merged); err != nil {
		return err
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: tagName,
		Result:  v,
		DecodeHook: composeDecodeHooks(
			textUnmarshalerHookFunc(),
			timeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(merged)
}

// merged applies every provider's Default profile dictionary, then every
// provider's selected profile dictionary, preserving provider order within
// each pass.
func (l *Layers) merged() (map[string]any, error) {
	store := make(tree)

	profiles := []Profile{Default}
	if l.profile != Default {
		profiles = append(profiles, l.profile)
	}

	for _, profile := range profiles {
		for _, p := range l.providers {
			data, err := p.Data()
			if err != nil {
				return nil, ProviderError{
					Provider: p.Metadata().Name,
					Cause:    err,
				}
			}
			dict, ok := data[profile]
			if !ok {
				continue
			}
			if err := walkDict(dict, store, nil); err != nil {
				return nil, ProviderError{
					Provider: p.Metadata().Name,
					Cause:    err,
				}
			}
		}
	}
	return store, nil
}

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// checkRequired reports a MissingFieldError for every non-pointer scalar
// field of t that has no corresponding key in the merged view. Struct-kind
// fields count as scalars when they decode from text, like [Secret] and
// time.Time; plain nested structs, maps and slices are decoded best effort
// and never required, as are pointer fields.
func checkRequired(t reflect.Type, merged map[string]any) error {
	var missing []error
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		switch field.Type.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice:
			continue
		case reflect.Struct:
			if !reflect.PointerTo(field.Type).Implements(textUnmarshalerType) {
				continue
			}
		}
		name := fieldKey(field)
		if name == "" {
			continue
		}
		if _, ok := merged[name]; !ok {
			missing = append(missing, MissingFieldError{Field: name})
		}
	}
	return errors.Join(missing...)
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

// TypeCoercionError occurs when attempting to decode a config value into a
// struct field whose type does not match the config value type, up to,
// coercion.
type TypeCoercionError struct {
	from  reflect.Value
	to    reflect.Value
	Cause error
}

// Error implements the error interface.
func (e TypeCoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.from.Type().Name(), e.to.Type().Name(), e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e TypeCoercionError) Unwrap() error {
	return e.Cause
}

func composeDecodeHooks(hs ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hs {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if err == errInvalidDecodeCondition {
				continue
			}
			return nil, TypeCoercionError{
				from:  f,
				to:    t,
				Cause: err,
			}
		}
		return f.Interface(), nil
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		result := reflect.New(t).Interface()
		u, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(data.(string)))
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}

func timeDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(time.Duration(0)) {
			return nil, errInvalidDecodeCondition
		}

		switch f.Kind() {
		case reflect.String:
			return time.ParseDuration(data.(string))
		case reflect.Int:
			return time.Duration(int64(data.(int))), nil
		default:
			return nil, errInvalidDecodeCondition
		}
	}
}
