// SPDX-FileCopyrightText: 2026 The digistruct Authors
//
// SPDX-License-Identifier: MIT

package digistruct // import "github.com/matejcik/digistruct"

import (
	"fmt"
)

// Field binds a name to a codec inside a schema. A field is dependent when
// at least one sibling codec registered as the computed source of its
// value; dependent fields never take caller-supplied values and are
// overwritten by recalculation just before encoding.
type Field struct {
	name       string
	codec      Codec
	def        interface{}
	hasDefault bool

	contribs []contribution
}

// contribution pairs a contributor codec with the field whose value feeds
// the computation.
type contribution struct {
	source *Field
	codec  Contributor
}

// FieldOption configures a field at declaration time.
type FieldOption func(*Field)

// WithDefault declares the value used when none was set on the instance.
func WithDefault(v interface{}) FieldOption {
	return func(f *Field) {
		f.def = v
		f.hasDefault = true
	}
}

// NewField declares a named field backed by codec. If the codec (or any
// codec it bounds) contributes to a sibling field, the contribution is
// registered here, once, at declaration time.
func NewField(name string, codec Codec, opts ...FieldOption) *Field {
	f := &Field{name: name, codec: codec}
	for _, opt := range opts {
		opt(f)
	}
	for c := codec; c != nil; {
		if ctr, ok := c.(Contributor); ok {
			governed := ctr.Governs()
			governed.contribs = append(governed.contribs, contribution{source: f, codec: ctr})
		}
		w, ok := c.(wrapper)
		if !ok {
			break
		}
		c = w.inner()
	}
	return f
}

// Name returns the field's name.
func (f *Field) Name() string { return f.name }

// Codec returns the field's codec.
func (f *Field) Codec() Codec { return f.codec }

// Dependent reports whether the field's value is computed from sibling
// data at encode time.
func (f *Field) Dependent() bool { return len(f.contribs) > 0 }

// recalculate asks every contributor for its computed value, requires them
// all to agree, and assigns the result. Fields without contributors are
// left alone.
func (f *Field) recalculate(ctx *Context) error {
	if !f.Dependent() {
		return nil
	}
	var agreed int64
	for i, c := range f.contribs {
		own, err := ctx.Value(c.source)
		if err != nil {
			return err
		}
		v, err := c.codec.Contribute(ctx, own)
		if err != nil {
			return BuildError{Field: f.name, Err: err}
		}
		if i > 0 && v != agreed {
			return BuildError{
				Field: f.name,
				Msg:   fmt.Sprintf("inconsistent computed values: %d from field %q, previously %d", v, c.source.name, agreed),
			}
		}
		agreed = v
	}
	ctx.SetValue(f, agreed)
	return nil
}
