// SPDX-FileCopyrightText: 2026 The digistruct Authors
//
// SPDX-License-Identifier: MIT

package digistruct // import "github.com/matejcik/digistruct"

// Context carries the state of one encode, decode or sizing run: the
// underlying stream and a stack of frames, one per structure scope.
//
// A frame binds a structure instance to a stream. Pushing without an
// explicit stream shares the parent's cursor; pushing a bounded sub-stream
// isolates the cursor so inner codecs cannot cross the window boundary.
// Frames nest strictly LIFO, mirroring structural nesting.
//
// A Context is owned exclusively by the call that created it and must not
// be shared across concurrent operations.
type Context struct {
	stream *stream
	stack  []frame
}

type frame struct {
	instance *Instance
	stream   *stream
	label    string
}

// NewContext returns a context reading from (and writing to) data. Pass
// nil to start with an empty build stream.
func NewContext(data []byte) *Context {
	return &Context{stream: newStream(data)}
}

func (ctx *Context) top() *frame {
	if len(ctx.stack) == 0 {
		panic("digistruct: operation with no active frame")
	}
	return &ctx.stack[len(ctx.stack)-1]
}

// push opens a new scope. A nil instance or stream is inherited from the
// current frame; with an empty stack the context's own stream is used.
func (ctx *Context) push(label string, instance *Instance, st *stream) {
	if st == nil {
		if len(ctx.stack) > 0 {
			st = ctx.top().stream
		} else {
			st = ctx.stream
		}
	}
	if instance == nil {
		instance = ctx.top().instance
	}
	ctx.stack = append(ctx.stack, frame{instance: instance, stream: st, label: label})
}

func (ctx *Context) pop() {
	if len(ctx.stack) == 0 {
		panic("digistruct: pop with no active frame")
	}
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
}

// Read consumes exactly n bytes from the current frame's stream. It fails
// with EndOfStream when fewer than n bytes remain.
func (ctx *Context) Read(n int) ([]byte, error) {
	return ctx.top().stream.read(n)
}

// ReadAll consumes all bytes remaining in the current frame's stream.
func (ctx *Context) ReadAll() []byte {
	return ctx.top().stream.readAll()
}

// Write appends data at the current frame's cursor.
func (ctx *Context) Write(data []byte) {
	ctx.top().stream.write(data)
}

// Tell reports the cursor position of the current frame's stream.
func (ctx *Context) Tell() int {
	return ctx.top().stream.tell()
}

// Seek moves the cursor of the current frame's stream to pos. Positions
// outside the stream panic.
func (ctx *Context) Seek(pos int) {
	ctx.top().stream.seek(pos)
}

// Skip advances the cursor of the current frame's stream by n bytes.
// Skipping past either end of the stream panics.
func (ctx *Context) Skip(n int) {
	st := ctx.top().stream
	st.seek(st.tell() + n)
}

// Remaining reports how many unread bytes the current frame's stream holds.
func (ctx *Context) Remaining() int {
	return ctx.top().stream.remaining()
}

// Value reads field's value from the instance bound to the current frame,
// falling back to the field default. A missing value without a default is
// a BuildError.
func (ctx *Context) Value(field *Field) (interface{}, error) {
	inst := ctx.top().instance
	if inst == nil {
		panic("digistruct: value access with no bound instance")
	}
	if v, ok := inst.Get(field.name); ok {
		return v, nil
	}
	if field.hasDefault {
		return field.def, nil
	}
	return nil, BuildError{Field: field.name, Msg: "no value set and no default declared"}
}

// SetValue stores v as field's value on the instance bound to the current
// frame.
func (ctx *Context) SetValue(field *Field, v interface{}) {
	inst := ctx.top().instance
	if inst == nil {
		panic("digistruct: value access with no bound instance")
	}
	inst.values[field.name] = v
}
