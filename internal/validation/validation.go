// Package validation holds the declarative rule sets that a user or post
// payload must satisfy before it is forwarded to the collaborator service.
package validation

import (
	"fmt"
	"sort"
	"strings"
)

// MsgNotString is reported for a field whose value is present but not a string.
const MsgNotString = "올바른 형식이 아닙니다"

// Payload is an untyped key/value candidate, as decoded from JSON or a form.
type Payload map[string]any

// Errors maps a field name to the message of the first rule it violated.
type Errors map[string]string

// HasErrors reports whether any field was rejected.
func (e Errors) HasErrors() bool {
	return len(e) > 0
}

// Error renders the violations in field order.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return strings.Join(parts, "; ")
}

// Rule checks a single constraint and returns its message when violated.
type Rule func(value string) (message string, ok bool)

// Field is an ordered list of rules applied to one payload key.
// Evaluation stops at the first failing rule.
type Field struct {
	Name  string
	Rules []Rule
}

func (f Field) check(value string) (string, bool) {
	for _, rule := range f.Rules {
		if msg, ok := rule(value); !ok {
			return msg, false
		}
	}
	return "", true
}

// Schema validates a payload against its fields and builds a typed record
// from the accepted values.
type Schema[T any] struct {
	fields []Field
	build  func(values map[string]string) T
}

// NewSchema creates a schema. Fields are evaluated in the given order.
func NewSchema[T any](build func(values map[string]string) T, fields ...Field) Schema[T] {
	return Schema[T]{fields: fields, build: build}
}

// Fields returns the names of the fields checked by s.
func (s Schema[T]) Fields() []string {
	names := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		names = append(names, f.Name)
	}
	return names
}

// Validate checks every field of p. On success it returns the typed record and
// nil; otherwise the zero record and one message per rejected field.
// A missing key is treated as an empty string.
func (s Schema[T]) Validate(p Payload) (T, Errors) {
	var zero T

	errs := make(Errors)
	values := make(map[string]string, len(s.fields))

	for _, f := range s.fields {
		raw, ok := p[f.Name]
		var value string
		if ok && raw != nil {
			str, isString := raw.(string)
			if !isString {
				errs[f.Name] = MsgNotString
				continue
			}
			value = str
		}

		if msg, ok := f.check(value); !ok {
			errs[f.Name] = msg
			continue
		}
		values[f.Name] = value
	}

	if errs.HasErrors() {
		return zero, errs
	}
	return s.build(values), nil
}
