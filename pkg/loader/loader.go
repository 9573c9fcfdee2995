// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of expgen

// Package loader reads the experiment and rollout documents into ordered
// sequences of untyped records. It performs no semantic checks; that is the
// validator's job.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Record is one entry of a loaded document. Field access is untyped because
// the documents are validated after loading, not during.
type Record struct {
	fields map[string]any
	index  int
}

// Index is the zero-based position of the record in its source document.
// Load order is significant: it determines the positional index tunable
// accessors are generated with.
func (r Record) Index() int {
	return r.index
}

// Has reports whether the field is present, regardless of its value.
func (r Record) Has(key string) bool {
	_, ok := r.fields[key]
	return ok
}

// Value returns the raw field value, or nil if absent.
func (r Record) Value(key string) any {
	return r.fields[key]
}

// String returns the field as a string, or "" if absent or not a string.
func (r Record) String(key string) string {
	s, _ := r.fields[key].(string)
	return s
}

// Bool returns the field as a bool, or fallback if absent or not a bool.
func (r Record) Bool(key string, fallback bool) bool {
	b, ok := r.fields[key].(bool)
	if !ok {
		return fallback
	}
	return b
}

// StringSlice returns the field as a list of strings. Non-string elements
// are dropped.
func (r Record) StringSlice(key string) []string {
	list, ok := r.fields[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, v := range list {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Fields returns the raw field map, for diagnostics on records that fail
// validation before they have a usable name.
func (r Record) Fields() map[string]any {
	return r.fields
}

// Parse decodes a YAML document into records, preserving document order. A
// document that is not a list of mappings is a parse error.
func Parse(data []byte) ([]Record, error) {
	var raw []map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	records := make([]Record, 0, len(raw))
	for i, fields := range raw {
		records = append(records, Record{fields: fields, index: i})
	}
	return records, nil
}

// Load reads and parses a single document from disk.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Documents loads the experiment and rollout documents.
func Documents(experimentsPath, rolloutsPath string) (experiments, rollouts []Record, err error) {
	experiments, err = Load(experimentsPath)
	if err != nil {
		return nil, nil, err
	}
	rollouts, err = Load(rolloutsPath)
	if err != nil {
		return nil, nil, err
	}
	return experiments, rollouts, nil
}
