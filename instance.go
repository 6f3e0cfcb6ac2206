// SPDX-FileCopyrightText: 2026 The digistruct Authors
//
// SPDX-License-Identifier: MIT

package digistruct // import "github.com/matejcik/digistruct"

import (
	"github.com/pkg/errors"
)

// Instance is one structure value: a named-field aggregate typed by its
// schema. Instances come out of Decode/Parse or out of Schema.New; fields
// stay mutable until the instance is encoded.
type Instance struct {
	schema *Schema
	values map[string]interface{}
}

// Schema returns the schema this instance was created from.
func (inst *Instance) Schema() *Schema { return inst.schema }

// Get returns the stored value of the named field. The second return is
// false when the field was never set; defaults are not applied here.
func (inst *Instance) Get(name string) (interface{}, bool) {
	v, ok := inst.values[name]
	return v, ok
}

// Set stores a value for the named field. Unknown names are rejected.
func (inst *Instance) Set(name string, v interface{}) error {
	if _, ok := inst.schema.byName[name]; !ok {
		return errors.Errorf("schema %s has no field %q", inst.schema.name, name)
	}
	inst.values[name] = v
	return nil
}

// Values returns a snapshot of the instance's fields, with declared
// defaults filled in for unset fields.
func (inst *Instance) Values() map[string]interface{} {
	out := make(map[string]interface{}, len(inst.schema.fields))
	for _, f := range inst.schema.fields {
		if v, ok := inst.values[f.name]; ok {
			out[f.name] = v
		} else if f.hasDefault {
			out[f.name] = f.def
		}
	}
	return out
}

// Equal compares two instances field by field. Nested instances, element
// slices and byte strings compare structurally; integer kinds compare by
// numeric value.
func (inst *Instance) Equal(other *Instance) bool {
	if other == nil || inst.schema != other.schema {
		return false
	}
	for _, f := range inst.schema.fields {
		av, aok := inst.fieldValue(f)
		bv, bok := other.fieldValue(f)
		if aok != bok {
			return false
		}
		if aok && !valueEqual(av, bv) {
			return false
		}
	}
	return true
}

func (inst *Instance) fieldValue(f *Field) (interface{}, bool) {
	if v, ok := inst.values[f.name]; ok {
		return v, true
	}
	if f.hasDefault {
		return f.def, true
	}
	return nil, false
}
