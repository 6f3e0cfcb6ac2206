// SPDX-FileCopyrightText: 2026 The digistruct Authors
//
// SPDX-License-Identifier: MIT

package digistruct // import "github.com/matejcik/digistruct"

// stream is an in-memory byte cursor. Reads and writes share one position,
// the way the engine's frames expect: a decode context wraps existing
// bytes, a build context starts empty and grows.
type stream struct {
	buf []byte
	pos int
}

func newStream(data []byte) *stream {
	return &stream{buf: data}
}

// read consumes exactly n bytes. A short read consumes what is left and
// fails, so a caller can tell a clean end of data (cursor unmoved) from
// running dry partway through.
func (s *stream) read(n int) ([]byte, error) {
	if s.pos+n > len(s.buf) {
		s.pos = len(s.buf)
		return nil, EndOfStream{Offset: s.pos}
	}
	data := s.buf[s.pos : s.pos+n]
	s.pos += n
	return data, nil
}

func (s *stream) readAll() []byte {
	data := s.buf[s.pos:]
	s.pos = len(s.buf)
	return data
}

func (s *stream) write(p []byte) {
	if s.pos+len(p) <= len(s.buf) {
		copy(s.buf[s.pos:], p)
	} else {
		s.buf = append(s.buf[:s.pos], p...)
	}
	s.pos += len(p)
}

func (s *stream) tell() int { return s.pos }

// seek moves the cursor. Positions outside [0, len] are a programming
// error: they would make remaining() negative and reads undefined.
func (s *stream) seek(pos int) {
	if pos < 0 || pos > len(s.buf) {
		panic("digistruct: seek out of bounds")
	}
	s.pos = pos
}

func (s *stream) remaining() int { return len(s.buf) - s.pos }

func (s *stream) bytes() []byte { return s.buf }
