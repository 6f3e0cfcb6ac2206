// SPDX-FileCopyrightText: 2026 The digistruct Authors
//
// SPDX-License-Identifier: MIT

package digistruct // import "github.com/matejcik/digistruct"

// Codec pairs the encode, decode and sizing halves of one wire-level
// concept. Decode consumes exactly the bytes its schema implies; only the
// designated greedy codecs read to the end of the stream. SizeOf computes
// the encoded length without touching the stream.
type Codec interface {
	Encode(ctx *Context, v interface{}) error
	Decode(ctx *Context) (interface{}, error)
	SizeOf(ctx *Context, v interface{}) (int, error)
}

// Contributor is implemented by codecs that derive the value of a sibling
// field at encode time, such as an array whose element count is carried by
// an earlier integer field. Contribute computes the governed field's value
// from the contributing field's own value.
type Contributor interface {
	Governs() *Field
	Contribute(ctx *Context, own interface{}) (int64, error)
}

// wrapper is implemented by codecs that bound another codec. NewField
// walks the chain so a contributor buried under byte-size framing still
// registers with the field it governs.
type wrapper interface {
	inner() Codec
}
