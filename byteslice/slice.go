// Package byteslice produces edited copies of byte slices: sub-range
// extraction, concatenation, insertion and removal.
//
// A nil slice is an absent sequence. Inputs are never modified and results
// are never nil. A few documented branches hand back one of the inputs
// instead of a copy; callers that intend to mutate a result should not
// assume it is independent of the arguments in those branches.
package byteslice

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Toolkit applies a Config to the four slice operations. It is immutable and
// safe for concurrent use.
type Toolkit struct {
	cfg Config
}

var defaultToolkit = NewToolkit(DefaultConfig())

// NewToolkit builds a Toolkit from cfg. It panics if cfg does not validate;
// use TryNewToolkit to get the error instead.
func NewToolkit(cfg Config) *Toolkit {
	t, err := TryNewToolkit(cfg)
	if err != nil {
		panic(err)
	}
	return t
}

// TryNewToolkit builds a Toolkit from cfg.
func TryNewToolkit(cfg Config) (*Toolkit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, wrapError(KindInvalidArgument, "NewToolkit", "invalid config", err)
	}
	return &Toolkit{cfg: cfg}, nil
}

// Config returns the configuration the Toolkit was built with.
func (t *Toolkit) Config() Config {
	return t.cfg
}

func (t *Toolkit) fallback(op, reason string) *zerolog.Event {
	return t.cfg.Logger.Debug().Str("op", op).Str("reason", reason)
}

// GetBytes returns a copy of at most length bytes of source starting at
// startAt.
//
// The result is empty when source is nil or empty, when length < 1, or when
// startAt lies outside source. When the range runs past the end of source
// the result is the tail from startAt, or empty under LengthStrict.
func (t *Toolkit) GetBytes(source []byte, startAt, length int) []byte {
	if len(source) == 0 {
		t.fallback("GetBytes", "empty source").Send()
		return []byte{}
	}
	if length < 1 {
		t.fallback("GetBytes", "non-positive length").Int("length", length).Send()
		return []byte{}
	}
	if startAt < 0 || startAt >= len(source) {
		t.fallback("GetBytes", "start out of range").
			Int("startAt", startAt).Int("size", len(source)).Send()
		return []byte{}
	}

	if pastEnd(startAt, length, len(source)) {
		if t.cfg.Length == LengthStrict {
			t.fallback("GetBytes", "range past end").
				Int("startAt", startAt).Int("length", length).Int("size", len(source)).Send()
			return []byte{}
		}
		t.fallback("GetBytes", "clamped to tail").
			Int("startAt", startAt).Int("length", length).Int("size", len(source)).Send()
		return cloneBytes(source[startAt:])
	}

	return cloneBytes(source[startAt : startAt+length])
}

// AppendBytes returns source followed by bytesToAppend.
//
// If exactly one argument is nil the other one is returned as is, sharing
// its backing array. If both are nil the result is empty. Otherwise the
// result is a new slice.
func (t *Toolkit) AppendBytes(source, bytesToAppend []byte) []byte {
	if source == nil && bytesToAppend == nil {
		t.fallback("AppendBytes", "both absent").Send()
		return []byte{}
	}
	if source == nil {
		t.fallback("AppendBytes", "source absent").Send()
		return bytesToAppend
	}
	if bytesToAppend == nil {
		t.fallback("AppendBytes", "nothing to append").Send()
		return source
	}

	bytes := make([]byte, len(source)+len(bytesToAppend))
	copy(bytes, source)
	copy(bytes[len(source):], bytesToAppend)
	return bytes
}

// InsertBytes returns source with bytesToInsert spliced in at insertAt.
//
// A nil or empty source yields an empty result, whatever bytesToInsert
// holds. If bytesToInsert is nil or empty, or insertAt > len(source),
// source is returned as is. A negative insertAt is handled according to
// the NegativeInsert policy: it either panics with a KindInvalidArgument
// *Error or inserts at the front.
func (t *Toolkit) InsertBytes(source, bytesToInsert []byte, insertAt int) []byte {
	if len(source) == 0 {
		t.fallback("InsertBytes", "empty source").Send()
		return []byte{}
	}
	if len(bytesToInsert) == 0 || insertAt > len(source) {
		t.fallback("InsertBytes", "nothing to insert").
			Int("insertAt", insertAt).Int("size", len(source)).Send()
		return source
	}
	if insertAt < 0 {
		if t.cfg.NegativeInsert == NegativeInsertPanic {
			panic(newError(KindInvalidArgument, "InsertBytes",
				fmt.Sprintf("negative insert index %d", insertAt)))
		}
		t.fallback("InsertBytes", "negative index clamped").Int("insertAt", insertAt).Send()
		insertAt = 0
	}

	bytes := make([]byte, len(source)+len(bytesToInsert))
	copy(bytes, source[:insertAt])
	copy(bytes[insertAt:], bytesToInsert)
	copy(bytes[insertAt+len(bytesToInsert):], source[insertAt:])
	return bytes
}

// RemoveBytes returns source without the length bytes starting at removeAt.
//
// A nil or empty source yields an empty result. If removeAt < 0,
// removeAt > len(source) or length < 1, source is returned as is. When the
// region runs past the end everything from removeAt on is dropped.
func (t *Toolkit) RemoveBytes(source []byte, removeAt, length int) []byte {
	if len(source) == 0 {
		t.fallback("RemoveBytes", "empty source").Send()
		return []byte{}
	}
	if removeAt < 0 || removeAt > len(source) || length < 1 {
		t.fallback("RemoveBytes", "nothing to remove").
			Int("removeAt", removeAt).Int("length", length).Int("size", len(source)).Send()
		return source
	}

	if pastEnd(removeAt, length, len(source)) {
		t.fallback("RemoveBytes", "truncated").
			Int("removeAt", removeAt).Int("length", length).Int("size", len(source)).Send()
		return cloneBytes(source[:removeAt])
	}

	bytes := make([]byte, len(source)-length)
	copy(bytes, source[:removeAt])
	copy(bytes[removeAt:], source[removeAt+length:])
	return bytes
}

// GetBytes calls GetBytes on the default Toolkit.
func GetBytes(source []byte, startAt, length int) []byte {
	return defaultToolkit.GetBytes(source, startAt, length)
}

// AppendBytes calls AppendBytes on the default Toolkit.
func AppendBytes(source, bytesToAppend []byte) []byte {
	return defaultToolkit.AppendBytes(source, bytesToAppend)
}

// InsertBytes calls InsertBytes on the default Toolkit. It panics on a
// negative insertAt.
func InsertBytes(source, bytesToInsert []byte, insertAt int) []byte {
	return defaultToolkit.InsertBytes(source, bytesToInsert, insertAt)
}

// RemoveBytes calls RemoveBytes on the default Toolkit.
func RemoveBytes(source []byte, removeAt, length int) []byte {
	return defaultToolkit.RemoveBytes(source, removeAt, length)
}
