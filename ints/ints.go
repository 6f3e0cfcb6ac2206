// SPDX-FileCopyrightText: 2026 The digistruct Authors
//
// SPDX-License-Identifier: MIT

// Package ints provides the fixed-width integer codecs: signed and
// unsigned, 8 to 64 bits, in either byte order. Decoding yields uint64 for
// the unsigned codecs and int64 for the signed ones; encoding accepts any
// Go integer kind and range-checks it against the wire width.
package ints // import "github.com/matejcik/digistruct/ints"

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/matejcik/digistruct"
)

// Uint8 returns the codec for an unsigned single byte.
func Uint8() digistruct.Codec { return unsigned{size: 1, order: binary.LittleEndian} }

// Int8 returns the codec for a signed single byte.
func Int8() digistruct.Codec { return signed{size: 1, order: binary.LittleEndian} }

// Uint16 returns the codec for an unsigned 16-bit integer in the given
// byte order.
func Uint16(order binary.ByteOrder) digistruct.Codec { return unsigned{size: 2, order: order} }

// Int16 returns the codec for a signed 16-bit integer in the given byte
// order.
func Int16(order binary.ByteOrder) digistruct.Codec { return signed{size: 2, order: order} }

// Uint32 returns the codec for an unsigned 32-bit integer in the given
// byte order.
func Uint32(order binary.ByteOrder) digistruct.Codec { return unsigned{size: 4, order: order} }

// Int32 returns the codec for a signed 32-bit integer in the given byte
// order.
func Int32(order binary.ByteOrder) digistruct.Codec { return signed{size: 4, order: order} }

// Uint64 returns the codec for an unsigned 64-bit integer in the given
// byte order.
func Uint64(order binary.ByteOrder) digistruct.Codec { return unsigned{size: 8, order: order} }

// Int64 returns the codec for a signed 64-bit integer in the given byte
// order.
func Int64(order binary.ByteOrder) digistruct.Codec { return signed{size: 8, order: order} }

type unsigned struct {
	size  int
	order binary.ByteOrder
}

func (c unsigned) Decode(ctx *digistruct.Context) (interface{}, error) {
	data, err := ctx.Read(c.size)
	if err != nil {
		return nil, err
	}
	return load(c.order, data), nil
}

func (c unsigned) Encode(ctx *digistruct.Context, v interface{}) error {
	u, neg, ok := intValue(v)
	if !ok {
		return digistruct.BuildError{Msg: fmt.Sprintf("expected an integer value, got %T", v)}
	}
	if neg {
		return digistruct.BuildError{Msg: fmt.Sprintf("value -%d out of range for uint%d", u, c.size*8)}
	}
	if c.size < 8 && u > (uint64(1)<<(c.size*8))-1 {
		return digistruct.BuildError{Msg: fmt.Sprintf("value %d out of range for uint%d", u, c.size*8)}
	}
	ctx.Write(store(c.order, u, c.size))
	return nil
}

func (c unsigned) SizeOf(ctx *digistruct.Context, v interface{}) (int, error) {
	return c.size, nil
}

type signed struct {
	size  int
	order binary.ByteOrder
}

func (c signed) Decode(ctx *digistruct.Context) (interface{}, error) {
	data, err := ctx.Read(c.size)
	if err != nil {
		return nil, err
	}
	u := load(c.order, data)
	// sign-extend from the wire width
	shift := uint(64 - c.size*8)
	return int64(u<<shift) >> shift, nil
}

func (c signed) Encode(ctx *digistruct.Context, v interface{}) error {
	u, neg, ok := intValue(v)
	if !ok {
		return digistruct.BuildError{Msg: fmt.Sprintf("expected an integer value, got %T", v)}
	}
	bits := uint(c.size * 8)
	if neg {
		if u > uint64(1)<<(bits-1) {
			return digistruct.BuildError{Msg: fmt.Sprintf("value -%d out of range for int%d", u, bits)}
		}
		ctx.Write(store(c.order, uint64(-int64(u)), c.size))
		return nil
	}
	if u > (uint64(1)<<(bits-1))-1 {
		return digistruct.BuildError{Msg: fmt.Sprintf("value %d out of range for int%d", u, bits)}
	}
	ctx.Write(store(c.order, u, c.size))
	return nil
}

func (c signed) SizeOf(ctx *digistruct.Context, v interface{}) (int, error) {
	return c.size, nil
}

func load(order binary.ByteOrder, data []byte) uint64 {
	switch len(data) {
	case 1:
		return uint64(data[0])
	case 2:
		return uint64(order.Uint16(data))
	case 4:
		return uint64(order.Uint32(data))
	default:
		return order.Uint64(data)
	}
}

func store(order binary.ByteOrder, u uint64, size int) []byte {
	data := make([]byte, size)
	switch size {
	case 1:
		data[0] = byte(u)
	case 2:
		order.PutUint16(data, uint16(u))
	case 4:
		order.PutUint32(data, uint32(u))
	default:
		order.PutUint64(data, u)
	}
	return data
}

func intValue(v interface{}) (mag uint64, neg bool, ok bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if i < 0 {
			return uint64(-i), true, true
		}
		return uint64(i), false, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), false, true
	}
	return 0, false, false
}
