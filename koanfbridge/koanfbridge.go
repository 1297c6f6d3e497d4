// Copyright (c) 2026 Edgegrove and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package koanfbridge exposes a [conf.Provider] as a koanf Provider so that
// applications already standardized on github.com/knadh/koanf can pull
// worker environment bindings into their existing configuration stack.
package koanfbridge

import (
	"errors"

	"github.com/edgegrove/workerenv/conf"
)

// ErrReadBytesNotSupported is returned when ReadBytes is called on the
// bridge; koanf falls back to Read for map-based providers.
var ErrReadBytesNotSupported = errors.New("koanfbridge: ReadBytes not supported, use Read() instead")

// Provider adapts a conf.Provider to koanf's Provider interface.
type Provider struct {
	provider conf.Provider
	profile  conf.Profile
}

// New returns a koanf-compatible provider exposing the values p files under
// the given profile, with values filed under [conf.Default] visible unless
// the profile overrides them. Pass conf.Default to read only the default
// profile.
func New(p conf.Provider, profile conf.Profile) *Provider {
	return &Provider{
		provider: p,
		profile:  profile,
	}
}

// ReadBytes implements the koanf.Provider interface. The bridge has no byte
// representation, so it always fails with [ErrReadBytesNotSupported].
func (p *Provider) ReadBytes() ([]byte, error) {
	return nil, ErrReadBytesNotSupported
}

// Read implements the koanf.Provider interface.
func (p *Provider) Read() (map[string]any, error) {
	data, err := p.provider.Data()
	if err != nil {
		return nil, err
	}

	dict := make(map[string]any)
	for k, v := range data[conf.Default] {
		dict[k] = v
	}
	if p.profile != conf.Default {
		for k, v := range data[p.profile] {
			dict[k] = v
		}
	}
	return dict, nil
}
