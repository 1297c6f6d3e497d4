// Copyright (c) 2026 Edgegrove and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package conf

// Map is an ordinary map[string]any but implements the Provider interface,
// filing its values under the [Default] profile. Values may be nested maps.
type Map map[string]any

// Metadata implements the Provider interface.
func (m Map) Metadata() Metadata {
	return Named("literal map")
}

// Data implements the Provider interface.
func (m Map) Data() (map[Profile]map[string]any, error) {
	return map[Profile]map[string]any{Default: m}, nil
}

// InProfile returns a Provider filing this map's values under the given
// profile instead of [Default].
func (m Map) InProfile(profile Profile) Provider {
	return profiled{
		provider: m,
		profile:  profile,
	}
}

// profiled refiles another provider's Default dictionary under a
// fixed profile. Non-Default dictionaries pass through unchanged.
type profiled struct {
	provider Provider
	profile  Profile
}

func (p profiled) Metadata() Metadata {
	return p.provider.Metadata()
}

func (p profiled) Data() (map[Profile]map[string]any, error) {
	data, err := p.provider.Data()
	if err != nil {
		return nil, err
	}
	refiled := make(map[Profile]map[string]any, len(data))
	for profile, dict := range data {
		if profile != Default {
			refiled[profile] = dict
		}
	}
	defaults, ok := data[Default]
	if !ok {
		return refiled, nil
	}
	target, ok := refiled[p.profile]
	if !ok {
		refiled[p.profile] = defaults
		return refiled, nil
	}
	// Values explicitly filed under the target profile win over refiled
	// defaults. Overlay into a fresh map so the wrapped provider's
	// dictionaries are never mutated.
	merged := make(map[string]any, len(defaults)+len(target))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range target {
		merged[k] = v
	}
	refiled[p.profile] = merged
	return refiled, nil
}

// InProfile wraps a provider so that values it files under [Default] are
// filed under the given profile instead.
func InProfile(profile Profile, provider Provider) Provider {
	return profiled{
		provider: provider,
		profile:  profile,
	}
}
