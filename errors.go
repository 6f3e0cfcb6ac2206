// SPDX-FileCopyrightText: 2026 The digistruct Authors
//
// SPDX-License-Identifier: MIT

package digistruct // import "github.com/matejcik/digistruct"

import (
	"errors"
	"fmt"
)

// UnsupportedError signals that a codec was asked to perform an operation
// it does not implement. It is a programming mismatch, not a data error.
type UnsupportedError struct {
	Codec string
	Op    string
}

func (e UnsupportedError) Error() string {
	return fmt.Sprintf("cannot %s value of codec %s", e.Op, e.Codec)
}

// ParseError signals structurally invalid wire data. Offset is the stream
// position at the point of failure, Field the offending field if known.
type ParseError struct {
	Offset int
	Field  string
	Err    error
}

func (e ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("parse error in field %q at offset %d: %v", e.Field, e.Offset, e.Err)
	}
	return fmt.Sprintf("parse error at offset %d: %v", e.Offset, e.Err)
}

func (e ParseError) Unwrap() error { return e.Err }

// EndOfStream is the parse failure for reads past the end of the stream.
// GreedyArray inspects it to detect a clean element boundary.
type EndOfStream struct {
	Offset int
}

func (e EndOfStream) Error() string {
	return fmt.Sprintf("end of stream at offset %d", e.Offset)
}

// BuildError signals an encode-time invariant violation, such as a length
// mismatch or disagreeing computed values for a dependent field.
type BuildError struct {
	Field string
	Msg   string
	Err   error
}

func (e BuildError) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Field != "" {
		return fmt.Sprintf("build error in field %q: %s", e.Field, msg)
	}
	return fmt.Sprintf("build error: %s", msg)
}

func (e BuildError) Unwrap() error { return e.Err }

// IsEndOfStream returns whether err was caused by reading past the end of
// the stream.
func IsEndOfStream(err error) bool {
	var eos EndOfStream
	return errors.As(err, &eos)
}

// IsParseError returns whether err describes invalid wire data. This
// includes end-of-stream failures.
func IsParseError(err error) bool {
	var pe ParseError
	return errors.As(err, &pe) || IsEndOfStream(err)
}

// IsBuildError returns whether err was caused by an encode-time invariant
// violation.
func IsBuildError(err error) bool {
	var be BuildError
	return errors.As(err, &be)
}

// IsUnsupported returns whether err was caused by an operation a codec
// does not implement.
func IsUnsupported(err error) bool {
	var ue UnsupportedError
	return errors.As(err, &ue)
}
