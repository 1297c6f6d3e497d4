// Copyright (c) 2026 Edgegrove and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package conf

import (
	"reflect"
	"strings"
)

// tagName is the struct tag key naming configuration fields.
const tagName = "config"

// FieldNames reports the configuration field names declared by the struct
// type T, in declaration order. A field is named by its `config` tag when
// one is set, with any options after a comma stripped, and by its
// lower-cased Go name otherwise. Unexported fields and fields tagged "-"
// are skipped. Pointer types are dereferenced; any T that is not a struct
// yields an empty list.
//
// Only the type declaration is inspected. No value of T is ever constructed.
func FieldNames[T any]() []string {
	return fieldNames(reflect.TypeFor[T]())
}

func fieldNames(t reflect.Type) []string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return []string{}
	}

	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := fieldKey(field)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

func fieldKey(field reflect.StructField) string {
	tag, ok := field.Tag.Lookup(tagName)
	if !ok {
		return strings.ToLower(field.Name)
	}
	name, _, _ := strings.Cut(tag, ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(field.Name)
	}
	return name
}
