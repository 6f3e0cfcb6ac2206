// SPDX-FileCopyrightText: 2026 The digistruct Authors
//
// SPDX-License-Identifier: MIT

package digistruct // import "github.com/matejcik/digistruct"

import (
	"bytes"
	"reflect"

	"github.com/pkg/errors"
)

// asInt coerces any Go integer kind to a non-negative int, as needed for
// lengths and counts.
func asInt(v interface{}) (int, error) {
	u, neg, ok := intValue(v)
	if !ok {
		return 0, errors.Errorf("expected an integer, got %T", v)
	}
	if neg {
		return 0, errors.Errorf("expected a non-negative length, got -%d", u)
	}
	const maxInt = int(^uint(0) >> 1)
	if u > uint64(maxInt) {
		return 0, errors.Errorf("length %d overflows int", u)
	}
	return int(u), nil
}

// asList coerces a value to the element slice representation used by the
// array codecs.
func asList(v interface{}) ([]interface{}, error) {
	list, ok := v.([]interface{})
	if !ok {
		return nil, errors.Errorf("expected a []interface{} value, got %T", v)
	}
	return list, nil
}

// intValue decomposes any Go integer kind into magnitude and sign.
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

// valueEqual compares two field values structurally. Integer kinds compare
// by numeric value so that a decoded uint64 matches the int64 a dependent
// recalculation assigned.
func valueEqual(a, b interface{}) bool {
	if au, aneg, ok := intValue(a); ok {
		bu, bneg, bok := intValue(b)
		return bok && au == bu && aneg == bneg
	}
	switch av := a.(type) {
	case *Instance:
		bv, ok := b.(*Instance)
		return ok && av.Equal(bv)
	case []interface{}:
		bv, ok := b.([]interface{})
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valueEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case []byte:
		bv, ok := b.([]byte)
		return ok && bytes.Equal(av, bv)
	}
	return reflect.DeepEqual(a, b)
}
