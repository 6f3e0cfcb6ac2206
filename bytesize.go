// SPDX-FileCopyrightText: 2026 The digistruct Authors
//
// SPDX-License-Identifier: MIT

package digistruct // import "github.com/matejcik/digistruct"

import (
	"fmt"

	"github.com/pkg/errors"
)

// The byte-size family bounds an inner codec to an exact byte span. It
// parallels the array family, counting bytes instead of elements: the span
// is fixed, carried by a sibling field, or self-described by a length
// prefix. Decoding isolates the span in a bounded sub-frame so the inner
// codec cannot read past it, and the span must be exactly consumed.

// FixedByteSize bounds inner to exactly length bytes.
func FixedByteSize(length int, inner Codec) Codec {
	return fixedByteSize{length: length, wrapped: inner}
}

type fixedByteSize struct {
	length  int
	wrapped Codec
}

func (b fixedByteSize) inner() Codec { return b.wrapped }

func (b fixedByteSize) Decode(ctx *Context) (interface{}, error) {
	return decodeWindow(ctx, b.wrapped, b.length)
}

func (b fixedByteSize) Encode(ctx *Context, v interface{}) error {
	buf, err := encodeBuffer(ctx, b.wrapped, v)
	if err != nil {
		return err
	}
	if len(buf) != b.length {
		return BuildError{
			Msg: fmt.Sprintf("content length mismatch: encoded %d bytes, expected %d", len(buf), b.length),
		}
	}
	ctx.Write(buf)
	return nil
}

func (b fixedByteSize) SizeOf(ctx *Context, v interface{}) (int, error) {
	n, err := b.wrapped.SizeOf(ctx, v)
	if err != nil {
		return 0, err
	}
	if n != b.length {
		return 0, BuildError{
			Msg: fmt.Sprintf("content length mismatch: encoded %d bytes, expected %d", n, b.length),
		}
	}
	return b.length, nil
}

// ReferentByteSize bounds inner to the byte count carried by an earlier
// sibling field. Encoding registers the codec as the computed source of
// that field, contributing the inner value's encoded size.
func ReferentByteSize(length *Field, inner Codec) Codec {
	return &referentByteSize{length: length, wrapped: inner}
}

type referentByteSize struct {
	length  *Field
	wrapped Codec
}

func (b *referentByteSize) inner() Codec { return b.wrapped }

func (b *referentByteSize) Governs() *Field { return b.length }

func (b *referentByteSize) Contribute(ctx *Context, own interface{}) (int64, error) {
	n, err := b.wrapped.SizeOf(ctx, own)
	if err != nil {
		return 0, err
	}
	return int64(n), nil
}

func (b *referentByteSize) windowSize(ctx *Context) (int, error) {
	v, err := ctx.Value(b.length)
	if err != nil {
		return 0, err
	}
	n, err := asInt(v)
	if err != nil {
		return 0, errors.Wrapf(err, "length field %q", b.length.name)
	}
	return n, nil
}

func (b *referentByteSize) Decode(ctx *Context) (interface{}, error) {
	n, err := b.windowSize(ctx)
	if err != nil {
		return nil, err
	}
	return decodeWindow(ctx, b.wrapped, n)
}

func (b *referentByteSize) Encode(ctx *Context, v interface{}) error {
	buf, err := encodeBuffer(ctx, b.wrapped, v)
	if err != nil {
		return err
	}
	n, err := b.windowSize(ctx)
	if err != nil {
		return err
	}
	if len(buf) != n {
		return BuildError{
			Msg: fmt.Sprintf("content length mismatch: encoded %d bytes, field %q holds %d", len(buf), b.length.name, n),
		}
	}
	ctx.Write(buf)
	return nil
}

func (b *referentByteSize) SizeOf(ctx *Context, v interface{}) (int, error) {
	return b.wrapped.SizeOf(ctx, v)
}

// PrefixedByteSize writes the inner value's byte length through the length
// codec before the content. Self-describing, like PrefixedArray.
func PrefixedByteSize(length Codec, inner Codec) Codec {
	return prefixedByteSize{length: length, wrapped: inner}
}

type prefixedByteSize struct {
	length  Codec
	wrapped Codec
}

func (b prefixedByteSize) inner() Codec { return b.wrapped }

func (b prefixedByteSize) Decode(ctx *Context) (interface{}, error) {
	lv, err := b.length.Decode(ctx)
	if err != nil {
		return nil, err
	}
	n, err := asInt(lv)
	if err != nil {
		return nil, errors.Wrap(err, "byte-size prefix")
	}
	return decodeWindow(ctx, b.wrapped, n)
}

func (b prefixedByteSize) Encode(ctx *Context, v interface{}) error {
	buf, err := encodeBuffer(ctx, b.wrapped, v)
	if err != nil {
		return err
	}
	if err := b.length.Encode(ctx, len(buf)); err != nil {
		return errors.Wrap(err, "byte-size prefix")
	}
	ctx.Write(buf)
	return nil
}

func (b prefixedByteSize) SizeOf(ctx *Context, v interface{}) (int, error) {
	n, err := b.wrapped.SizeOf(ctx, v)
	if err != nil {
		return 0, err
	}
	prefix, err := b.length.SizeOf(ctx, n)
	if err != nil {
		return 0, errors.Wrap(err, "byte-size prefix")
	}
	return prefix + n, nil
}

// decodeWindow reads exactly n bytes and decodes the inner codec inside an
// isolated sub-frame over them. Trailing bytes left in the window after a
// successful inner decode are a parse error.
func decodeWindow(ctx *Context, inner Codec, n int) (interface{}, error) {
	data, err := ctx.Read(n)
	if err != nil {
		return nil, err
	}
	ctx.push(fmt.Sprintf("%d-byte window", n), nil, newStream(data))
	defer ctx.pop()

	v, err := inner.Decode(ctx)
	if err != nil {
		return nil, err
	}
	if rem := ctx.Remaining(); rem > 0 {
		return nil, ParseError{
			Offset: ctx.Tell(),
			Err:    errors.Errorf("%d unparsed bytes at the end of a %d-byte window", rem, n),
		}
	}
	return v, nil
}

// encodeBuffer encodes the inner value into a temporary frame and returns
// the bytes, so the caller can verify the length before committing them to
// the stream. The instance scope is inherited: inner codecs can still read
// sibling fields.
func encodeBuffer(ctx *Context, inner Codec, v interface{}) ([]byte, error) {
	ctx.push("byte-size buffer", nil, newStream(nil))
	buf := ctx.top().stream
	err := inner.Encode(ctx, v)
	ctx.pop()
	if err != nil {
		return nil, err
	}
	return buf.bytes(), nil
}
