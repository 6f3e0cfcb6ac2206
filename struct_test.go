// SPDX-FileCopyrightText: 2026 The digistruct Authors
//
// SPDX-License-Identifier: MIT

package digistruct_test

import (
	"encoding/binary"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/matejcik/digistruct"
	"github.com/matejcik/digistruct/ints"
)

func newExampleSchema() *digistruct.Schema {
	return digistruct.MustSchema("example",
		digistruct.NewField("x", ints.Uint16(binary.LittleEndian)),
		digistruct.NewField("y", ints.Uint32(binary.LittleEndian)),
		digistruct.NewField("z", ints.Uint64(binary.LittleEndian)),
	)
}

func TestStructRoundTrip(t *testing.T) {
	r := require.New(t)

	example := newExampleSchema()
	inst, err := example.New(map[string]interface{}{
		"x": 1, "y": 2, "z": 3,
	})
	r.NoError(err)

	data, err := example.Build(inst)
	r.NoError(err)
	r.Equal([]byte{
		0x01, 0x00,
		0x02, 0x00, 0x00, 0x00,
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}, data)

	g := goldie.New(t)
	g.Assert(t, "example", data)

	size, err := example.Size(inst)
	r.NoError(err)
	r.Equal(14, size)
	r.Equal(len(data), size)

	parsed, err := example.Parse(data)
	r.NoError(err)
	r.True(parsed.Equal(inst))

	x, ok := parsed.Get("x")
	r.True(ok)
	r.Equal(uint64(1), x)
}

func TestStructFieldOrderIsWireOrder(t *testing.T) {
	r := require.New(t)

	example := newExampleSchema()
	parsed, err := example.Parse([]byte{
		0x01, 0x00,
		0x02, 0x00, 0x00, 0x00,
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	})
	r.NoError(err)

	y, ok := parsed.Get("y")
	r.True(ok)
	r.Equal(uint64(2), y)
	z, ok := parsed.Get("z")
	r.True(ok)
	r.Equal(uint64(3), z)
}

func TestStructTrailingBytes(t *testing.T) {
	r := require.New(t)

	single := digistruct.MustSchema("single",
		digistruct.NewField("v", ints.Uint8()),
	)
	_, err := single.Parse([]byte{1, 2})
	r.Error(err)
	r.True(digistruct.IsParseError(err))
	r.Contains(err.Error(), "trailing")
}

func TestStructNested(t *testing.T) {
	r := require.New(t)

	point := digistruct.MustSchema("point",
		digistruct.NewField("x", ints.Uint8()),
		digistruct.NewField("y", ints.Uint8()),
	)
	line := digistruct.MustSchema("line",
		digistruct.NewField("from", point),
		digistruct.NewField("to", point),
	)

	from, err := point.New(map[string]interface{}{"x": 1, "y": 2})
	r.NoError(err)
	to, err := point.New(map[string]interface{}{"x": 3, "y": 4})
	r.NoError(err)
	inst, err := line.New(map[string]interface{}{"from": from, "to": to})
	r.NoError(err)

	data, err := line.Build(inst)
	r.NoError(err)
	r.Equal([]byte{1, 2, 3, 4}, data)

	parsed, err := line.Parse(data)
	r.NoError(err)
	r.True(parsed.Equal(inst))
}

func TestStructDefaults(t *testing.T) {
	r := require.New(t)

	versioned := digistruct.MustSchema("versioned",
		digistruct.NewField("version", ints.Uint8(), digistruct.WithDefault(2)),
		digistruct.NewField("value", ints.Uint8()),
	)

	inst, err := versioned.New(map[string]interface{}{"value": 7})
	r.NoError(err)

	data, err := versioned.Build(inst)
	r.NoError(err)
	r.Equal([]byte{2, 7}, data)
}

func TestStructMissingValue(t *testing.T) {
	r := require.New(t)

	versioned := digistruct.MustSchema("pair",
		digistruct.NewField("a", ints.Uint8()),
		digistruct.NewField("b", ints.Uint8()),
	)
	inst, err := versioned.New(map[string]interface{}{"a": 1})
	r.NoError(err)

	_, err = versioned.Build(inst)
	r.Error(err)
	r.True(digistruct.IsBuildError(err))
	r.Contains(err.Error(), `"b"`)
}

func TestSchemaExtend(t *testing.T) {
	r := require.New(t)

	header := digistruct.MustSchema("header",
		digistruct.NewField("magic", ints.Uint16(binary.BigEndian)),
	)
	message := digistruct.MustExtend(header, "message",
		digistruct.NewField("payload", digistruct.GreedyBytes()),
	)

	names := []string{}
	for _, f := range message.Fields() {
		names = append(names, f.Name())
	}
	r.Equal([]string{"magic", "payload"}, names)

	inst, err := message.New(map[string]interface{}{
		"magic":   0xCAFE,
		"payload": []byte{1, 2, 3},
	})
	r.NoError(err)
	data, err := message.Build(inst)
	r.NoError(err)
	r.Equal([]byte{0xCA, 0xFE, 1, 2, 3}, data)

	// duplicate names across the inheritance chain are rejected
	_, err = digistruct.Extend(header, "clash",
		digistruct.NewField("magic", ints.Uint8()),
	)
	r.Error(err)
	r.Contains(err.Error(), "duplicate field")
}

func TestSchemaDuplicateField(t *testing.T) {
	r := require.New(t)

	_, err := digistruct.NewSchema("dup",
		digistruct.NewField("a", ints.Uint8()),
		digistruct.NewField("a", ints.Uint8()),
	)
	r.Error(err)
	r.Contains(err.Error(), `duplicate field "a"`)
}

func TestSchemaNewRejectsUnknownAndDependent(t *testing.T) {
	r := require.New(t)

	count := digistruct.NewField("count", ints.Uint8())
	items := digistruct.NewField("items", digistruct.ReferentArray(count, ints.Uint8()))
	schema := digistruct.MustSchema("list", count, items)

	_, err := schema.New(map[string]interface{}{"nope": 1})
	r.Error(err)
	r.Contains(err.Error(), `no field "nope"`)

	_, err = schema.New(map[string]interface{}{"count": 1})
	r.Error(err)
	r.Contains(err.Error(), "computed")
}

func TestInstanceEquality(t *testing.T) {
	r := require.New(t)

	example := newExampleSchema()
	a, err := example.New(map[string]interface{}{"x": 1, "y": 2, "z": 3})
	r.NoError(err)
	b, err := example.New(map[string]interface{}{"x": uint64(1), "y": uint64(2), "z": uint64(3)})
	r.NoError(err)
	c, err := example.New(map[string]interface{}{"x": 1, "y": 2, "z": 4})
	r.NoError(err)

	// integer kinds compare by value
	r.True(a.Equal(b))
	r.False(a.Equal(c))

	other := newExampleSchema()
	d, err := other.New(map[string]interface{}{"x": 1, "y": 2, "z": 3})
	r.NoError(err)
	r.False(a.Equal(d), "instances of distinct schemas never compare equal")
}
