package byteslice

import (
	"fmt"

	"github.com/rs/zerolog"
)

// LengthPolicy decides what GetBytes does when the requested range runs past
// the end of the source.
type LengthPolicy int

const (
	// Return the tail from startAt to the end of the source
	LengthClamp LengthPolicy = iota

	// Return an empty sequence, as the first revision of GetBytes did
	LengthStrict
)

// NegativeInsertPolicy decides what InsertBytes does with an insertion index
// below zero.
type NegativeInsertPolicy int

const (
	// Panic with a KindInvalidArgument *Error
	NegativeInsertPanic NegativeInsertPolicy = iota

	// Insert at index 0
	NegativeInsertClamp
)

func (p LengthPolicy) String() string {
	switch p {
	case LengthClamp:
		return "clamp"
	case LengthStrict:
		return "strict"
	}
	return "unknown"
}

func (p NegativeInsertPolicy) String() string {
	switch p {
	case NegativeInsertPanic:
		return "panic"
	case NegativeInsertClamp:
		return "clamp"
	}
	return "unknown"
}

// Config holds the parameters of a Toolkit. They are fixed once the Toolkit
// is built.
type Config struct {
	// What GetBytes does with a range running past the end
	Length LengthPolicy

	// What InsertBytes does with a negative index
	NegativeInsert NegativeInsertPolicy

	// Receives a debug event each time an operation takes a fallback branch
	Logger zerolog.Logger
}

// DefaultConfig returns the canonical configuration: clamped GetBytes, panic
// on negative insertion index and no logging.
func DefaultConfig() Config {
	return Config{
		Length:         LengthClamp,
		NegativeInsert: NegativeInsertPanic,
		Logger:         zerolog.Nop(),
	}
}

// Validate checks that every policy holds a known value.
func (c Config) Validate() error {
	if c.Length != LengthClamp && c.Length != LengthStrict {
		return newError(KindInvalidArgument, "config", fmt.Sprintf("unknown length policy %d", int(c.Length)))
	}
	if c.NegativeInsert != NegativeInsertPanic && c.NegativeInsert != NegativeInsertClamp {
		return newError(KindInvalidArgument, "config", fmt.Sprintf("unknown negative insert policy %d", int(c.NegativeInsert)))
	}
	return nil
}
