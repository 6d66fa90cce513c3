package byteslice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer_Chain(t *testing.T) {
	b := NewBuffer([]byte{1, 2, 3})

	edited := b.Insert([]byte{4, 5}, 2).Remove(0, 1).Append([]byte{6})
	require.Equal(t, []byte{2, 4, 5, 3, 6}, edited.Bytes())
	require.Equal(t, []byte{5, 3}, edited.Get(2, 2).Bytes())

	// the receiver is left untouched
	require.Equal(t, []byte{1, 2, 3}, b.Bytes())
}

func TestBuffer_Independence(t *testing.T) {
	data := []byte{1, 2}
	b := NewBuffer(data)
	data[0] = 9
	require.Equal(t, []byte{1, 2}, b.View())

	out := b.Bytes()
	out[1] = 9
	require.Equal(t, []byte{1, 2}, b.View())

	tail := []byte{3}
	grown := NewBuffer(nil).Append(tail)
	tail[0] = 9
	require.Equal(t, []byte{3}, grown.View())
}

func TestBuffer_Absent(t *testing.T) {
	var zero Buffer
	require.True(t, zero.IsAbsent())
	require.True(t, NewBuffer(nil).IsAbsent())
	require.False(t, NewBuffer([]byte{}).IsAbsent())

	require.NotNil(t, zero.Bytes())
	require.Equal(t, 0, zero.Len())
	require.Equal(t, "Buffer(absent)", zero.String())

	// edits of an absent buffer give an empty, present one
	require.False(t, zero.Get(0, 1).IsAbsent())
	require.False(t, zero.Append(nil).IsAbsent())
	require.Equal(t, 0, zero.Insert([]byte{1}, 0).Len())
	require.Equal(t, 0, zero.Remove(0, 1).Len())
}

func TestBuffer_WithToolkit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Length = LengthStrict
	cfg.NegativeInsert = NegativeInsertClamp
	b := NewBuffer([]byte{1, 2}).WithToolkit(NewToolkit(cfg))

	require.Equal(t, 0, b.Get(0, 3).Len())
	require.Equal(t, []byte{0, 1, 2}, b.Insert([]byte{0}, -1).Bytes())
	// derived buffers keep the toolkit
	require.Equal(t, 0, b.Append([]byte{3}).Get(1, 5).Len())

	require.Equal(t, []byte{1, 2}, NewBuffer([]byte{1, 2}).Get(0, 3).Bytes())
}

func TestBuffer_String(t *testing.T) {
	require.Equal(t, "Buffer(len 3: 0a0bff)", NewBuffer([]byte{0x0a, 0x0b, 0xff}).String())
}
