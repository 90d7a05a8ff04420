package models

import (
	"strings"
	"time"
)

// Value is a frontmatter field value: either a scalar string or a list of
// strings.
type Value struct {
	Scalar string
	List   []string
	IsList bool
}

// ScalarValue builds a scalar Value.
func ScalarValue(s string) Value {
	return Value{Scalar: s}
}

// ListValue builds a list Value.
func ListValue(items ...string) Value {
	return Value{List: items, IsList: true}
}

// Truthy reports whether the value counts as "set": a non-empty scalar or any
// list, including one whose only element is empty.
func (v Value) Truthy() bool {
	return v.IsList || v.Scalar != ""
}

// String returns the scalar, or the list elements joined with commas.
func (v Value) String() string {
	if v.IsList {
		return strings.Join(v.List, ",")
	}
	return v.Scalar
}

// Fields maps frontmatter keys to their values.
type Fields map[string]Value

// Get returns the value stored under key and whether it is truthy.
func (f Fields) Get(key string) (Value, bool) {
	v, ok := f[key]
	if !ok {
		return Value{}, false
	}
	return v, v.Truthy()
}

// Document is a parsed markdown file. A nil Fields means the file had no
// frontmatter block at all.
type Document struct {
	Path   string
	Fields Fields
	Body   string
}

// FileMetadata is a lightweight representation returned by list operations.
type FileMetadata struct {
	Path      string    `json:"path"`
	UpdatedAt time.Time `json:"updated_at"`
}
