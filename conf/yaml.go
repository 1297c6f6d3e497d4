// Copyright (c) 2026 Edgegrove and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package conf

import (
	"fmt"
	"io"

	"github.com/edgegrove/workerenv/internal/try"

	"gopkg.in/yaml.v3"
)

// Yaml represents a Provider whose underlying format is YAML.
type Yaml struct {
	r io.Reader
}

// FromYaml returns a Provider which files YAML values parsed from the given
// io.Reader under the [Default] profile. If the reader implements io.Closer
// it is closed after the first read.
func FromYaml(r io.Reader) Yaml {
	return Yaml{r: r}
}

// InvalidYamlError occurs if the underlying io.Reader contains invalid YAML.
type InvalidYamlError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidYamlError) Error() string {
	return fmt.Sprintf("invalid yaml: %s", e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidYamlError) Unwrap() error {
	return e.cause
}

// Metadata implements the Provider interface.
func (src Yaml) Metadata() Metadata {
	return Named("yaml")
}

// Data implements the Provider interface.
func (src Yaml) Data() (_ map[Profile]map[string]any, err error) {
	defer try.Close(&err, src.r)

	b, err := io.ReadAll(src.r)
	if err != nil {
		return nil, err
	}

	dict := make(map[string]any)
	err = yaml.Unmarshal(b, &dict)
	if err != nil {
		return nil, InvalidYamlError{cause: err}
	}
	return map[Profile]map[string]any{Default: dict}, nil
}
