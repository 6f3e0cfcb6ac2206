// SPDX-FileCopyrightText: 2026 The digistruct Authors
//
// SPDX-License-Identifier: MIT

package digistruct // import "github.com/matejcik/digistruct"

// NewAdapter wraps a schema whose wire shape differs from the value it
// exposes. encode converts a domain value into a wire instance of the
// schema; decode converts a parsed wire instance back. The Codec methods
// compose the conversion with the schema's own encode/decode/size, so an
// adapter plugs into field declarations like any plain structure.
//
// Either conversion may be nil for a one-way adapter; using the missing
// direction fails with UnsupportedError.
func NewAdapter(
	schema *Schema,
	encode func(v interface{}) (*Instance, error),
	decode func(inst *Instance) (interface{}, error),
) Codec {
	return adapter{schema: schema, enc: encode, dec: decode}
}

type adapter struct {
	schema *Schema
	enc    func(v interface{}) (*Instance, error)
	dec    func(inst *Instance) (interface{}, error)
}

func (a adapter) Encode(ctx *Context, v interface{}) error {
	wire, err := a.adapt(v)
	if err != nil {
		return err
	}
	return a.schema.Encode(ctx, wire)
}

func (a adapter) Decode(ctx *Context) (interface{}, error) {
	if a.dec == nil {
		return nil, UnsupportedError{Codec: "adapter for " + a.schema.name, Op: "decode"}
	}
	wire, err := a.schema.Decode(ctx)
	if err != nil {
		return nil, err
	}
	v, err := a.dec(wire.(*Instance))
	if err != nil {
		return nil, ParseError{Offset: ctx.Tell(), Field: a.schema.name, Err: err}
	}
	return v, nil
}

func (a adapter) SizeOf(ctx *Context, v interface{}) (int, error) {
	wire, err := a.adapt(v)
	if err != nil {
		return 0, err
	}
	return a.schema.SizeOf(ctx, wire)
}

func (a adapter) adapt(v interface{}) (*Instance, error) {
	if a.enc == nil {
		return nil, UnsupportedError{Codec: "adapter for " + a.schema.name, Op: "encode"}
	}
	wire, err := a.enc(v)
	if err != nil {
		return nil, BuildError{Msg: "adapting value for " + a.schema.name, Err: err}
	}
	return wire, nil
}
