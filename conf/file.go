// Copyright (c) 2026 Edgegrove and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package conf

import (
	"fmt"
	"io/fs"
	"path"
)

// File represents a Provider backed by a configuration file whose format is
// detected from the file extension.
type File struct {
	fsys fs.FS
	path string
}

// FromFile returns a Provider which parses the file at the given path within
// fsys. Supported extensions are .json, .yaml and .yml; anything else fails
// with an [UnsupportedFormatError]. The file is opened and parsed on every
// extraction.
func FromFile(fsys fs.FS, p string) File {
	return File{
		fsys: fsys,
		path: p,
	}
}

// UnsupportedFormatError occurs when a config file's extension does not map
// to a known format.
type UnsupportedFormatError struct {
	Path string
}

// Error implements the error interface.
func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported config file format: %s", e.Path)
}

// Metadata implements the Provider interface.
func (src File) Metadata() Metadata {
	return Named("file " + src.path)
}

// Data implements the Provider interface.
func (src File) Data() (map[Profile]map[string]any, error) {
	var parse func(f fs.File) Provider
	switch path.Ext(src.path) {
	case ".json":
		parse = func(f fs.File) Provider { return FromJson(f) }
	case ".yaml", ".yml":
		parse = func(f fs.File) Provider { return FromYaml(f) }
	default:
		return nil, UnsupportedFormatError{Path: src.path}
	}

	f, err := src.fsys.Open(src.path)
	if err != nil {
		return nil, err
	}
	return parse(f).Data()
}
