// SPDX-FileCopyrightText: 2026 The digistruct Authors
//
// SPDX-License-Identifier: MIT

package ints_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matejcik/digistruct"
	"github.com/matejcik/digistruct/ints"
)

func build(t *testing.T, c digistruct.Codec, v interface{}) ([]byte, error) {
	t.Helper()
	schema := digistruct.MustSchema("wrap", digistruct.NewField("v", c))
	inst, err := schema.New(map[string]interface{}{"v": v})
	require.NoError(t, err)
	return schema.Build(inst)
}

func parse(t *testing.T, c digistruct.Codec, data []byte) (interface{}, error) {
	t.Helper()
	schema := digistruct.MustSchema("wrap", digistruct.NewField("v", c))
	inst, err := schema.Parse(data)
	if err != nil {
		return nil, err
	}
	v, ok := inst.Get("v")
	require.True(t, ok)
	return v, nil
}

func TestByteOrder(t *testing.T) {
	r := require.New(t)

	data, err := build(t, ints.Uint16(binary.LittleEndian), 0x1234)
	r.NoError(err)
	r.Equal([]byte{0x34, 0x12}, data)

	data, err = build(t, ints.Uint16(binary.BigEndian), 0x1234)
	r.NoError(err)
	r.Equal([]byte{0x12, 0x34}, data)

	data, err = build(t, ints.Uint32(binary.BigEndian), 0x01020304)
	r.NoError(err)
	r.Equal([]byte{1, 2, 3, 4}, data)

	data, err = build(t, ints.Uint64(binary.LittleEndian), 3)
	r.NoError(err)
	r.Equal([]byte{3, 0, 0, 0, 0, 0, 0, 0}, data)
}

func TestSignedRoundTrip(t *testing.T) {
	r := require.New(t)

	data, err := build(t, ints.Int16(binary.BigEndian), -2)
	r.NoError(err)
	r.Equal([]byte{0xFF, 0xFE}, data)

	v, err := parse(t, ints.Int16(binary.BigEndian), data)
	r.NoError(err)
	r.Equal(int64(-2), v)

	v, err = parse(t, ints.Int8(), []byte{0x80})
	r.NoError(err)
	r.Equal(int64(-128), v)

	v, err = parse(t, ints.Uint8(), []byte{0x80})
	r.NoError(err)
	r.Equal(uint64(128), v)
}

func TestEncodeAcceptsAnyIntegerKind(t *testing.T) {
	r := require.New(t)

	for _, v := range []interface{}{int8(7), int16(7), int32(7), int64(7), uint8(7), uint(7), 7} {
		data, err := build(t, ints.Uint8(), v)
		r.NoError(err, "value %T", v)
		r.Equal([]byte{7}, data)
	}
}

func TestEncodeRangeChecks(t *testing.T) {
	r := require.New(t)

	cases := []struct {
		codec digistruct.Codec
		value interface{}
	}{
		{ints.Uint8(), 256},
		{ints.Uint8(), -1},
		{ints.Int8(), 128},
		{ints.Int8(), -129},
		{ints.Uint16(binary.BigEndian), 0x10000},
		{ints.Int16(binary.LittleEndian), 0x8000},
		{ints.Uint32(binary.BigEndian), uint64(1) << 32},
	}
	for _, tc := range cases {
		_, err := build(t, tc.codec, tc.value)
		r.Error(err, "%T(%v)", tc.codec, tc.value)
		r.True(digistruct.IsBuildError(err))
	}

	_, err := build(t, ints.Uint8(), "seven")
	r.Error(err)
	r.True(digistruct.IsBuildError(err))
}

func TestDecodeTruncated(t *testing.T) {
	r := require.New(t)

	_, err := parse(t, ints.Uint32(binary.BigEndian), []byte{1, 2})
	r.Error(err)
	r.True(digistruct.IsEndOfStream(err))
}
