// Copyright (c) 2026 Edgegrove and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package conf merges configuration values from layered providers and
// extracts them into typed structs.
//
// A [Provider] announces its values as per-[Profile] dictionaries. Providers
// are combined with [Merge], where later providers override earlier ones on
// a per key basis. Extraction decodes the merged view of the [Default]
// profile, overlaid by the selected profile, into a struct pointer:
//
//	type Config struct {
//	    ApiBaseUrl string `config:"api_base_url"`
//	    MaxRetries string `config:"max_retries"`
//	}
//
//	var cfg Config
//	err := conf.Merge(
//	    conf.Map{"max_retries": "3"},
//	    conf.FromYaml(strings.NewReader(defaults)),
//	).Extract(&cfg)
//
// Struct fields are matched by their `config` tag, falling back to the
// lower-cased field name. Non-pointer fields are required: extraction fails
// with a [MissingFieldError] for each one that no provider supplied. Pointer
// fields are optional and remain nil when absent.
package conf
