// Copyright (c) 2026 Edgegrove and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package conf

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/edgegrove/workerenv/internal/try"
)

// Json represents a Provider whose underlying format is JSON.
type Json struct {
	r io.Reader
}

// FromJson returns a Provider which files JSON values parsed from the given
// io.Reader under the [Default] profile. If the reader implements io.Closer
// it is closed after the first read.
func FromJson(r io.Reader) Json {
	return Json{r: r}
}

// InvalidJsonError occurs if the underlying io.Reader contains invalid JSON.
type InvalidJsonError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidJsonError) Error() string {
	return fmt.Sprintf("invalid json: %s", e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidJsonError) Unwrap() error {
	return e.cause
}

// Metadata implements the Provider interface.
func (src Json) Metadata() Metadata {
	return Named("json")
}

// Data implements the Provider interface.
func (src Json) Data() (_ map[Profile]map[string]any, err error) {
	defer try.Close(&err, src.r)

	b, err := io.ReadAll(src.r)
	if err != nil {
		return nil, err
	}

	dict := make(map[string]any)
	err = json.Unmarshal(b, &dict)
	if err != nil {
		return nil, InvalidJsonError{cause: err}
	}
	return map[Profile]map[string]any{Default: dict}, nil
}
