// SPDX-FileCopyrightText: 2026 The digistruct Authors
//
// SPDX-License-Identifier: MIT

package digistruct // import "github.com/matejcik/digistruct"

import (
	"fmt"
)

// Bytes returns a codec for a raw byte string of exactly length bytes.
// Encoding a value of any other length is a BuildError.
func Bytes(length int) Codec {
	return bytesCodec{length: length}
}

// GreedyBytes returns a codec that consumes the rest of the stream. Wrap
// it in a byte-size codec to govern its span.
func GreedyBytes() Codec {
	return bytesCodec{length: -1}
}

type bytesCodec struct {
	length int // -1 means greedy
}

func (c bytesCodec) Decode(ctx *Context) (interface{}, error) {
	var data []byte
	if c.length < 0 {
		data = ctx.ReadAll()
	} else {
		var err error
		data, err = ctx.Read(c.length)
		if err != nil {
			return nil, err
		}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (c bytesCodec) Encode(ctx *Context, v interface{}) error {
	data, ok := v.([]byte)
	if !ok {
		return BuildError{Msg: fmt.Sprintf("expected a []byte value, got %T", v)}
	}
	if c.length >= 0 && len(data) != c.length {
		return BuildError{
			Msg: fmt.Sprintf("byte string length mismatch: expected %d, got %d", c.length, len(data)),
		}
	}
	ctx.Write(data)
	return nil
}

func (c bytesCodec) SizeOf(ctx *Context, v interface{}) (int, error) {
	data, ok := v.([]byte)
	if !ok {
		return 0, BuildError{Msg: fmt.Sprintf("expected a []byte value, got %T", v)}
	}
	if c.length >= 0 && len(data) != c.length {
		return 0, BuildError{
			Msg: fmt.Sprintf("byte string length mismatch: expected %d, got %d", c.length, len(data)),
		}
	}
	return len(data), nil
}
