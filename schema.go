// SPDX-FileCopyrightText: 2026 The digistruct Authors
//
// SPDX-License-Identifier: MIT

package digistruct // import "github.com/matejcik/digistruct"

import (
	"fmt"

	"github.com/pkg/errors"
)

// Schema is the ordered, named field list describing a structure's wire
// layout. A schema is built once per structure type and is immutable
// afterwards, so sharing it across concurrent decodes and encodes is safe.
//
// A Schema is itself a Codec: nested structures are declared as plain
// fields backed by the inner schema.
type Schema struct {
	name   string
	fields []*Field
	byName map[string]*Field
}

// NewSchema builds a schema from fields in declaration order. Field order
// is part of the wire contract. Duplicate names are rejected.
func NewSchema(name string, fields ...*Field) (*Schema, error) {
	s := &Schema{
		name:   name,
		fields: fields,
		byName: make(map[string]*Field, len(fields)),
	}
	for _, f := range fields {
		if _, ok := s.byName[f.name]; ok {
			return nil, errors.Errorf("duplicate field %q in schema %s", f.name, name)
		}
		s.byName[f.name] = f
	}
	return s, nil
}

// MustSchema is NewSchema for package-variable initialization; it panics
// on a malformed declaration.
func MustSchema(name string, fields ...*Field) *Schema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Extend builds a derived schema: every parent field first, then the newly
// declared ones. Duplicates across the inheritance chain are rejected.
func Extend(parent *Schema, name string, fields ...*Field) (*Schema, error) {
	all := make([]*Field, 0, len(parent.fields)+len(fields))
	all = append(all, parent.fields...)
	all = append(all, fields...)
	s, err := NewSchema(name, all...)
	if err != nil {
		return nil, errors.Wrapf(err, "extending schema %s", parent.name)
	}
	return s, nil
}

// MustExtend is Extend for package-variable initialization.
func MustExtend(parent *Schema, name string, fields ...*Field) *Schema {
	s, err := Extend(parent, name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema name, used in frame labels and error text.
func (s *Schema) Name() string { return s.name }

// Fields returns the schema's fields in declaration order.
func (s *Schema) Fields() []*Field {
	out := make([]*Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// New constructs an instance from the given field values. Unknown names
// are rejected, as are values for dependent fields: those are always
// computed immediately before encoding.
func (s *Schema) New(values map[string]interface{}) (*Instance, error) {
	inst := &Instance{schema: s, values: make(map[string]interface{}, len(values))}
	for name, v := range values {
		f, ok := s.byName[name]
		if !ok {
			return nil, errors.Errorf("schema %s has no field %q", s.name, name)
		}
		if f.Dependent() {
			return nil, errors.Errorf("field %q of schema %s is computed and cannot be set", name, s.name)
		}
		inst.values[name] = v
	}
	return inst, nil
}

// Decode reads one instance off the context: push a bound frame, run every
// field codec in schema order, pop. Failures carry the field name and the
// byte offset at the point of failure.
func (s *Schema) Decode(ctx *Context) (interface{}, error) {
	inst := &Instance{schema: s, values: make(map[string]interface{}, len(s.fields))}
	ctx.push(s.name, inst, nil)
	defer ctx.pop()

	for _, f := range s.fields {
		v, err := f.codec.Decode(ctx)
		if err != nil {
			return nil, ParseError{Offset: ctx.Tell(), Field: f.name, Err: err}
		}
		ctx.SetValue(f, v)
	}
	return inst, nil
}

// Encode writes an instance to the context. All dependent fields are
// recalculated, in schema order, before any field is encoded, so length
// fields carry their final value when serialized.
func (s *Schema) Encode(ctx *Context, v interface{}) error {
	inst, err := s.instanceOf(v)
	if err != nil {
		return err
	}
	ctx.push(s.name, inst, nil)
	defer ctx.pop()

	for _, f := range s.fields {
		if err := f.recalculate(ctx); err != nil {
			return err
		}
	}
	for _, f := range s.fields {
		val, err := ctx.Value(f)
		if err != nil {
			return err
		}
		if err := f.codec.Encode(ctx, val); err != nil {
			return errors.Wrapf(err, "field %q", f.name)
		}
	}
	return nil
}

// SizeOf computes the encoded size of an instance without touching the
// stream. Dependent fields are recalculated first, as for Encode.
func (s *Schema) SizeOf(ctx *Context, v interface{}) (int, error) {
	inst, err := s.instanceOf(v)
	if err != nil {
		return 0, err
	}
	ctx.push(s.name, inst, nil)
	defer ctx.pop()

	for _, f := range s.fields {
		if err := f.recalculate(ctx); err != nil {
			return 0, err
		}
	}
	var total int
	for _, f := range s.fields {
		val, err := ctx.Value(f)
		if err != nil {
			return 0, err
		}
		n, err := f.codec.SizeOf(ctx, val)
		if err != nil {
			return 0, errors.Wrapf(err, "field %q", f.name)
		}
		total += n
	}
	return total, nil
}

// Parse decodes an instance from a full buffer. Trailing bytes after a
// successful decode are a parse error.
func (s *Schema) Parse(data []byte) (*Instance, error) {
	ctx := NewContext(data)
	v, err := s.Decode(ctx)
	if err != nil {
		return nil, err
	}
	if n := ctx.stream.remaining(); n > 0 {
		return nil, ParseError{
			Offset: ctx.stream.tell(),
			Err:    errors.Errorf("%d trailing bytes after parsing %s", n, s.name),
		}
	}
	return v.(*Instance), nil
}

// Build encodes an instance into a fresh buffer.
func (s *Schema) Build(inst *Instance) ([]byte, error) {
	ctx := NewContext(nil)
	if err := s.Encode(ctx, inst); err != nil {
		return nil, err
	}
	return ctx.stream.bytes(), nil
}

// Size computes the encoded size of an instance.
func (s *Schema) Size(inst *Instance) (int, error) {
	return s.SizeOf(NewContext(nil), inst)
}

func (s *Schema) instanceOf(v interface{}) (*Instance, error) {
	inst, ok := v.(*Instance)
	if !ok {
		return nil, BuildError{Msg: fmt.Sprintf("expected an instance of %s, got %T", s.name, v)}
	}
	if inst.schema != s {
		return nil, BuildError{Msg: fmt.Sprintf("expected an instance of %s, got one of %s", s.name, inst.schema.name)}
	}
	return inst, nil
}
