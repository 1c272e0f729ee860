// Package generator builds random passwords by sampling uniformly from a
// union of character sets. Lowercase letters are always part of the pool.
package generator

import (
	"errors"
	"strings"
)

const (
	MinLength     = 7
	MaxLength     = 32
	DefaultLength = MinLength
)

var (
	ErrInvalidLength    = errors.New("password length must not be negative")
	ErrLengthOutOfRange = errors.New("password length must be between 7 and 32")
)

// Options configures a single generation request.
type Options struct {
	Length    int
	Digits    bool
	Uppercase bool
	Symbols   bool
}

// DefaultOptions returns the starting state of the generator screen:
// 7 characters, lowercase only.
func DefaultOptions() Options {
	return Options{Length: DefaultLength}
}

// Validate checks that Length lies in [MinLength, MaxLength].
// Generate does not call it; callers that accept user input do.
func (o Options) Validate() error {
	if o.Length < MinLength || o.Length > MaxLength {
		return ErrLengthOutOfRange
	}
	return nil
}

// ClampLength forces n into [MinLength, MaxLength].
func ClampLength(n int) int {
	return min(max(n, MinLength), MaxLength)
}

// Pool returns the active character pool for opts. It is never empty.
func Pool(opts Options) CharacterSet {
	pool := Lowercase
	if opts.Digits {
		pool += Digits
	}
	if opts.Uppercase {
		pool += Uppercase
	}
	if opts.Symbols {
		pool += Symbols
	}
	return pool
}

// Generator draws passwords from an injected RandomSource.
type Generator struct {
	src RandomSource
}

// New creates a Generator. A nil src selects DefaultSource.
func New(src RandomSource) *Generator {
	if src == nil {
		src = DefaultSource()
	}
	return &Generator{src: src}
}

// Generate returns a password of exactly opts.Length characters, each drawn
// independently and uniformly from Pool(opts). No character class is
// guaranteed to appear. A zero length yields the empty string.
func (g *Generator) Generate(opts Options) (string, error) {
	if opts.Length < 0 {
		return "", ErrInvalidLength
	}

	pool := Pool(opts)

	var sb strings.Builder
	sb.Grow(opts.Length)
	for range opts.Length {
		sb.WriteByte(pool[g.src.IntN(len(pool))])
	}

	return sb.String(), nil
}

var std = New(nil)

// Generate creates a password using the default random source.
func Generate(opts Options) (string, error) {
	return std.Generate(opts)
}
