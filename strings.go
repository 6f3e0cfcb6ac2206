// SPDX-FileCopyrightText: 2026 The digistruct Authors
//
// SPDX-License-Identifier: MIT

package digistruct // import "github.com/matejcik/digistruct"

import (
	"fmt"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
)

// String returns a codec for a text string occupying exactly length bytes
// on the wire in the given encoding. A nil encoding means UTF-8. Encoding
// a string whose encoded form has a different length is a BuildError.
func String(length int, enc encoding.Encoding) Codec {
	return stringCodec{length: length, enc: enc}
}

// GreedyString returns a text codec that consumes the rest of the stream.
// A nil encoding means UTF-8.
func GreedyString(enc encoding.Encoding) Codec {
	return stringCodec{length: -1, enc: enc}
}

type stringCodec struct {
	length int // -1 means greedy
	enc    encoding.Encoding
}

func (c stringCodec) encodeText(s string) ([]byte, error) {
	if c.enc == nil {
		return []byte(s), nil
	}
	data, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Wrap(err, "encoding string")
	}
	return data, nil
}

func (c stringCodec) decodeText(data []byte) (string, error) {
	if c.enc == nil {
		return string(data), nil
	}
	decoded, err := c.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", errors.Wrap(err, "decoding string")
	}
	return string(decoded), nil
}

func (c stringCodec) Decode(ctx *Context) (interface{}, error) {
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
	s, err := c.decodeText(data)
	if err != nil {
		return nil, ParseError{Offset: ctx.Tell(), Err: err}
	}
	return s, nil
}

func (c stringCodec) Encode(ctx *Context, v interface{}) error {
	s, ok := v.(string)
	if !ok {
		return BuildError{Msg: fmt.Sprintf("expected a string value, got %T", v)}
	}
	data, err := c.encodeText(s)
	if err != nil {
		return BuildError{Err: err}
	}
	if c.length >= 0 && len(data) != c.length {
		return BuildError{
			Msg: fmt.Sprintf("string length mismatch: expected %d bytes, got %d", c.length, len(data)),
		}
	}
	ctx.Write(data)
	return nil
}

func (c stringCodec) SizeOf(ctx *Context, v interface{}) (int, error) {
	s, ok := v.(string)
	if !ok {
		return 0, BuildError{Msg: fmt.Sprintf("expected a string value, got %T", v)}
	}
	data, err := c.encodeText(s)
	if err != nil {
		return 0, BuildError{Err: err}
	}
	if c.length >= 0 && len(data) != c.length {
		return 0, BuildError{
			Msg: fmt.Sprintf("string length mismatch: expected %d bytes, got %d", c.length, len(data)),
		}
	}
	return len(data), nil
}
