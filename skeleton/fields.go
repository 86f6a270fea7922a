/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package skeleton

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// fields keeps every member of a JSON object in the order it was read.
// Typed views decode the members they understand and leave the rest as raw
// JSON, so unknown content is written back byte for byte in its original
// position.
type fields struct {
	members *orderedmap.OrderedMap[string, json.RawMessage]
}

// member is a typed value written in place of (or after) the raw members.
type member struct {
	name  string
	value any
}

// read captures the members of the object in data.
func (f *fields) read(data []byte) error {
	if !isObject(data) {
		return ErrNotObject
	}
	members := orderedmap.New[string, json.RawMessage]()
	if err := json.Unmarshal(data, members); err != nil {
		return err
	}
	f.members = members
	return nil
}

// decode unmarshals the named member into v and reports whether it was present.
func (f *fields) decode(name string, v any) (bool, error) {
	if f.members == nil {
		return false, nil
	}
	raw, ok := f.members.Get(name)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("%s: %w", name, err)
	}
	return true, nil
}

// raw returns the undecoded JSON of the named member.
func (f *fields) raw(name string) (json.RawMessage, bool) {
	if f.members == nil {
		return nil, false
	}
	return f.members.Get(name)
}

// write encodes the object. Known members replace raw members of the same
// name at their original position, and keep the raw bytes when their value
// still decodes the same. Known members that were not read are appended in
// the order given. A known member holding its zero value is omitted unless
// it was read unchanged.
func (f *fields) write(known ...member) ([]byte, error) {
	byName := make(map[string]member, len(known))
	for _, m := range known {
		byName[m.name] = m
	}

	var out []rawMember
	seen := make(map[string]bool, len(known))
	if f.members != nil {
		for pair := f.members.Oldest(); pair != nil; pair = pair.Next() {
			m, ok := byName[pair.Key]
			if !ok {
				out = append(out, rawMember{pair.Key, pair.Value})
				continue
			}
			seen[m.name] = true
			if unchanged(pair.Value, m.value) {
				out = append(out, rawMember{m.name, pair.Value})
				continue
			}
			if isZero(m.value) {
				continue
			}
			b, err := encode(m.value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", m.name, err)
			}
			out = append(out, rawMember{m.name, b})
		}
	}
	for _, m := range known {
		if seen[m.name] || isZero(m.value) {
			continue
		}
		b, err := encode(m.value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.name, err)
		}
		out = append(out, rawMember{m.name, b})
	}

	return writeObject(out)
}

// unchanged reports whether raw decodes to a value that encodes the same as value.
func unchanged(raw json.RawMessage, value any) bool {
	t := reflect.TypeOf(value)
	if t == nil {
		return false
	}
	orig := reflect.New(t)
	if err := json.Unmarshal(raw, orig.Interface()); err != nil {
		return false
	}
	before, err := encode(orig.Elem().Interface())
	if err != nil {
		return false
	}
	after, err := encode(value)
	if err != nil {
		return false
	}
	return bytes.Equal(before, after)
}

func isZero(v any) bool {
	rv := reflect.ValueOf(v)
	return !rv.IsValid() || rv.IsZero()
}

// rawMember is an encoded object member.
type rawMember struct {
	name  string
	value json.RawMessage
}

// writeObject joins encoded members into a JSON object.
func writeObject(members []rawMember) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encode(m.name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(m.value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalMap encodes an ordered map with enc, keeping key order and leaving
// HTML characters in keys unescaped.
func marshalMap[V any](m *orderedmap.OrderedMap[string, V], enc func(V) ([]byte, error)) ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	members := make([]rawMember, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		b, err := enc(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pair.Key, err)
		}
		members = append(members, rawMember{pair.Key, b})
	}
	return writeObject(members)
}

// encode marshals v without escaping HTML characters.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func encodeValue[V any](v V) ([]byte, error) {
	return encode(v)
}

// isObject reports whether data holds a JSON object, ignoring leading whitespace.
func isObject(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}
