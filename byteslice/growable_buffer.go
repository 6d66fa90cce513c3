package byteslice

import "fmt"

// Buffer is a byte sequence with the slice operations as methods. Every edit
// returns a new Buffer; the receiver is never modified.
type Buffer struct {
	buffer  []byte
	toolkit *Toolkit
}

// NewBuffer returns a Buffer holding a copy of b. A nil b gives an absent
// Buffer.
func NewBuffer(b []byte) Buffer {
	if b == nil {
		return Buffer{}
	}
	return Buffer{buffer: cloneBytes(b)}
}

// WithToolkit returns the same sequence edited through t from now on.
func (b Buffer) WithToolkit(t *Toolkit) Buffer {
	b.toolkit = t
	return b
}

func (b Buffer) tk() *Toolkit {
	if b.toolkit == nil {
		return defaultToolkit
	}
	return b.toolkit
}

func (b Buffer) derive(data []byte) Buffer {
	return Buffer{buffer: data, toolkit: b.toolkit}
}

func (b Buffer) Len() int {
	return len(b.buffer)
}

// IsAbsent reports whether the Buffer holds no sequence at all, as opposed to
// an empty one.
func (b Buffer) IsAbsent() bool {
	return b.buffer == nil
}

// Bytes returns a copy of the sequence. It is never nil.
func (b Buffer) Bytes() []byte {
	return cloneBytes(b.buffer)
}

// View returns the sequence itself, nil when absent. The slice may be shared
// with other Buffers and must not be modified.
func (b Buffer) View() []byte {
	return b.buffer
}

func (b Buffer) Get(startAt, length int) Buffer {
	return b.derive(b.tk().GetBytes(b.buffer, startAt, length))
}

// Append returns the sequence followed by data. Appending to an absent
// Buffer adopts a copy of data.
func (b Buffer) Append(data []byte) Buffer {
	out := b.tk().AppendBytes(b.buffer, data)
	if b.buffer == nil && data != nil {
		out = cloneBytes(out)
	}
	return b.derive(out)
}

func (b Buffer) Insert(data []byte, insertAt int) Buffer {
	return b.derive(b.tk().InsertBytes(b.buffer, data, insertAt))
}

func (b Buffer) Remove(removeAt, length int) Buffer {
	return b.derive(b.tk().RemoveBytes(b.buffer, removeAt, length))
}

func (b Buffer) String() string {
	if b.buffer == nil {
		return "Buffer(absent)"
	}
	return fmt.Sprintf("Buffer(len %v: %x)", len(b.buffer), b.buffer)
}
