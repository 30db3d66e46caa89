package model

import (
	"bytes"
	"encoding/json"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// fields holds serialized fields the model doesn't know about
type fields map[string]json.RawMessage

// Decode reads a JSON documentation model
func Decode(r io.Reader) (*Project, error) {
	var project Project
	err := json.NewDecoder(r).Decode(&project)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to decode documentation model")
	}
	return &project, nil
}

// Encode writes p as indented JSON
func (p *Project) Encode(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(p), "Failed to encode documentation model")
}

func (s *SourceReference) UnmarshalJSON(data []byte) error {
	type sourceReference SourceReference
	var err error
	s.extra, err = unmarshalKnown(data, (*sourceReference)(s))
	return err
}

func (s *SourceReference) MarshalJSON() ([]byte, error) {
	type sourceReference SourceReference
	return marshalKnown((*sourceReference)(s), s.extra)
}

func (r *Reflection) UnmarshalJSON(data []byte) error {
	type reflection Reflection
	var err error
	r.extra, err = unmarshalKnown(data, (*reflection)(r))
	return err
}

func (r *Reflection) MarshalJSON() ([]byte, error) {
	type reflection Reflection
	return marshalKnown((*reflection)(r), r.extra)
}

const (
	typeOperator = "typeOperator"
	targetField  = "target"
)

func (t *Type) UnmarshalJSON(data []byte) error {
	type typ Type
	var err error
	t.extra, err = unmarshalKnown(data, (*typ)(t))
	if err != nil || t.Type != typeOperator {
		return err
	}
	target, ok := t.extra[targetField]
	if !ok {
		return nil
	}
	delete(t.extra, targetField)
	return json.Unmarshal(target, &t.Target)
}

func (t *Type) MarshalJSON() ([]byte, error) {
	type typ Type
	extra := t.extra
	if t.Target != nil {
		target, err := marshal(t.Target)
		if err != nil {
			return nil, err
		}
		extra = make(fields, len(t.extra)+1)
		for name, value := range t.extra {
			extra[name] = value
		}
		extra[targetField] = target
	}
	return marshalKnown((*typ)(t), extra)
}

// unmarshalKnown decodes data into the struct pointer v and returns any fields v does not declare.
// Declared fields that would be omitted when empty are returned too if they were present with an empty value.
func unmarshalKnown(data []byte, v interface{}) (fields, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	var all fields
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	value := reflect.ValueOf(v).Elem()
	for _, field := range jsonFields(value.Type()) {
		if field.omitEmpty && isEmptyValue(value.Field(field.index)) {
			continue
		}
		delete(all, field.name)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// marshalKnown encodes the struct pointer v, then merges in extra fields. Declared fields take precedence.
func marshalKnown(v interface{}, extra fields) ([]byte, error) {
	data, err := marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	var all fields
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for name, value := range extra {
		if _, exists := all[name]; !exists {
			all[name] = value
		}
	}
	return marshal(all)
}

func marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	err := encoder.Encode(v)
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), err
}

type jsonField struct {
	name      string
	index     int
	omitEmpty bool
}

var fieldCache sync.Map // reflect.Type -> []jsonField

func jsonFields(t reflect.Type) []jsonField {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]jsonField)
	}
	var known []jsonField
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" { // unexported
			continue
		}
		tag := strings.Split(field.Tag.Get("json"), ",")
		name := tag[0]
		switch name {
		case "-":
			continue
		case "":
			name = field.Name
		}
		omitEmpty := false
		for _, option := range tag[1:] {
			omitEmpty = omitEmpty || option == "omitempty"
		}
		known = append(known, jsonField{name: name, index: i, omitEmpty: omitEmpty})
	}
	fieldCache.Store(t, known)
	return known
}

// isEmptyValue matches the values encoding/json omits for omitempty fields
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}
