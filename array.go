// SPDX-FileCopyrightText: 2026 The digistruct Authors
//
// SPDX-License-Identifier: MIT

package digistruct // import "github.com/matejcik/digistruct"

import (
	"fmt"

	"github.com/pkg/errors"
)

// The array family: four length disciplines over one element codec.
// Element lists are []interface{} values.

// GreedyArray returns a codec that decodes elements until the stream ends.
// A clean end of stream exactly at an element boundary terminates the
// array; running out of bytes partway into an element is a genuine parse
// error.
func GreedyArray(elem Codec) Codec {
	return greedyArray{elem: elem}
}

type greedyArray struct {
	elem Codec
}

func (a greedyArray) Decode(ctx *Context) (interface{}, error) {
	items := []interface{}{}
	for {
		start := ctx.Tell()
		v, err := a.elem.Decode(ctx)
		if err != nil {
			if IsEndOfStream(err) && ctx.Tell() == start {
				return items, nil
			}
			return nil, err
		}
		items = append(items, v)
	}
}

func (a greedyArray) Encode(ctx *Context, v interface{}) error {
	list, err := asList(v)
	if err != nil {
		return BuildError{Err: err}
	}
	return encodeElements(ctx, a.elem, list)
}

func (a greedyArray) SizeOf(ctx *Context, v interface{}) (int, error) {
	list, err := asList(v)
	if err != nil {
		return 0, BuildError{Err: err}
	}
	return sizeOfElements(ctx, a.elem, list)
}

// FixedArray returns a codec for exactly length elements. Encoding or
// sizing a list of any other length is a BuildError.
func FixedArray(length int, elem Codec) Codec {
	return fixedArray{length: length, elem: elem}
}

type fixedArray struct {
	length int
	elem   Codec
}

func (a fixedArray) Decode(ctx *Context) (interface{}, error) {
	return decodeElements(ctx, a.elem, a.length)
}

func (a fixedArray) Encode(ctx *Context, v interface{}) error {
	list, err := a.checkLength(v)
	if err != nil {
		return err
	}
	return encodeElements(ctx, a.elem, list)
}

func (a fixedArray) SizeOf(ctx *Context, v interface{}) (int, error) {
	list, err := a.checkLength(v)
	if err != nil {
		return 0, err
	}
	return sizeOfElements(ctx, a.elem, list)
}

func (a fixedArray) checkLength(v interface{}) ([]interface{}, error) {
	list, err := asList(v)
	if err != nil {
		return nil, BuildError{Err: err}
	}
	if len(list) != a.length {
		return nil, BuildError{
			Msg: fmt.Sprintf("array length mismatch: expected %d elements, got %d", a.length, len(list)),
		}
	}
	return list, nil
}

// ReferentArray returns a codec whose element count is carried by an
// earlier sibling field. Decoding reads count's already-decoded value;
// encoding registers the codec as the computed source of count, so the
// caller never supplies it.
func ReferentArray(count *Field, elem Codec) Codec {
	return &referentArray{count: count, elem: elem}
}

type referentArray struct {
	count *Field
	elem  Codec
}

func (a *referentArray) Decode(ctx *Context) (interface{}, error) {
	v, err := ctx.Value(a.count)
	if err != nil {
		return nil, err
	}
	length, err := asInt(v)
	if err != nil {
		return nil, errors.Wrapf(err, "length field %q", a.count.name)
	}
	return decodeElements(ctx, a.elem, length)
}

func (a *referentArray) Encode(ctx *Context, v interface{}) error {
	list, err := a.checkLength(ctx, v)
	if err != nil {
		return err
	}
	return encodeElements(ctx, a.elem, list)
}

func (a *referentArray) SizeOf(ctx *Context, v interface{}) (int, error) {
	list, err := a.checkLength(ctx, v)
	if err != nil {
		return 0, err
	}
	return sizeOfElements(ctx, a.elem, list)
}

func (a *referentArray) Governs() *Field { return a.count }

func (a *referentArray) Contribute(ctx *Context, own interface{}) (int64, error) {
	list, err := asList(own)
	if err != nil {
		return 0, err
	}
	return int64(len(list)), nil
}

// checkLength verifies the recalculated count field against the actual
// element count. After recalculation the two always agree; a mismatch
// means the codec is used outside a schema.
func (a *referentArray) checkLength(ctx *Context, v interface{}) ([]interface{}, error) {
	list, err := asList(v)
	if err != nil {
		return nil, BuildError{Err: err}
	}
	cv, err := ctx.Value(a.count)
	if err != nil {
		return nil, err
	}
	length, err := asInt(cv)
	if err != nil {
		return nil, BuildError{Field: a.count.name, Err: err}
	}
	if len(list) != length {
		return nil, BuildError{
			Msg: fmt.Sprintf("array length mismatch: field %q holds %d, got %d elements", a.count.name, length, len(list)),
		}
	}
	return list, nil
}

// PrefixedArray returns a codec that carries its own element count as a
// length prefix. It is self-describing: no sibling field is involved.
func PrefixedArray(length Codec, elem Codec) Codec {
	return prefixedArray{length: length, elem: elem}
}

type prefixedArray struct {
	length Codec
	elem   Codec
}

func (a prefixedArray) Decode(ctx *Context) (interface{}, error) {
	lv, err := a.length.Decode(ctx)
	if err != nil {
		return nil, err
	}
	length, err := asInt(lv)
	if err != nil {
		return nil, errors.Wrap(err, "array length prefix")
	}
	return decodeElements(ctx, a.elem, length)
}

func (a prefixedArray) Encode(ctx *Context, v interface{}) error {
	list, err := asList(v)
	if err != nil {
		return BuildError{Err: err}
	}
	if err := a.length.Encode(ctx, len(list)); err != nil {
		return errors.Wrap(err, "array length prefix")
	}
	return encodeElements(ctx, a.elem, list)
}

func (a prefixedArray) SizeOf(ctx *Context, v interface{}) (int, error) {
	list, err := asList(v)
	if err != nil {
		return 0, BuildError{Err: err}
	}
	prefix, err := a.length.SizeOf(ctx, len(list))
	if err != nil {
		return 0, errors.Wrap(err, "array length prefix")
	}
	elems, err := sizeOfElements(ctx, a.elem, list)
	if err != nil {
		return 0, err
	}
	return prefix + elems, nil
}

func decodeElements(ctx *Context, elem Codec, length int) ([]interface{}, error) {
	// length may come straight off the wire, so it must not drive the
	// allocation. Cap it by the bytes actually present; an impossible
	// count then fails on the first missing element.
	capacity := length
	if rem := ctx.Remaining(); capacity > rem {
		capacity = rem
	}
	items := make([]interface{}, 0, capacity)
	for i := 0; i < length; i++ {
		v, err := elem.Decode(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		items = append(items, v)
	}
	return items, nil
}

func encodeElements(ctx *Context, elem Codec, list []interface{}) error {
	for i, item := range list {
		if err := elem.Encode(ctx, item); err != nil {
			return errors.Wrapf(err, "element %d", i)
		}
	}
	return nil
}

func sizeOfElements(ctx *Context, elem Codec, list []interface{}) (int, error) {
	var total int
	for i, item := range list {
		n, err := elem.SizeOf(ctx, item)
		if err != nil {
			return 0, errors.Wrapf(err, "element %d", i)
		}
		total += n
	}
	return total, nil
}
