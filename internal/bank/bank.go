// Package bank finds the largest joltage a battery bank can produce.
//
// A bank is a line of decimal digits. Turning on exactly N batteries, in the
// order they appear, produces a joltage equal to the N-digit number formed by
// their digits. The largest such number is found greedily: each digit is the
// leftmost maximum of the window that still leaves room for the rest.
package bank

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/exp/constraints"
)

var (
	// ErrMalformedDigit is returned when a bank contains a non-digit.
	ErrMalformedDigit = errors.New("malformed digit")
	// ErrSequenceTooShort is returned when a bank has fewer digits than the
	// requested width.
	ErrSequenceTooShort = errors.New("sequence too short")
	// ErrWidthOverflow is returned when the requested width cannot be
	// represented by the digit type.
	ErrWidthOverflow = errors.New("width overflows digit type")
	// ErrInvalidWidth is returned for a width below 1.
	ErrInvalidWidth = errors.New("invalid width")
)

// ParseError describes a bank that could not be parsed.
type ParseError struct {
	Input string
	Width int
	Pos   int // byte offset of the bad rune, -1 if not applicable
	Err   error
}

func (e *ParseError) Error() string {
	if e.Pos >= 0 {
		r, _ := utf8.DecodeRuneInString(e.Input[e.Pos:])
		return fmt.Sprintf("bank %q: %v %q at %d", e.Input, e.Err, r, e.Pos)
	}
	return fmt.Sprintf("bank %q (width %d): %v", e.Input, e.Width, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Bank is an immutable sequence of digits from which Width digits will be
// selected.
type Bank[T constraints.Unsigned] struct {
	digits []T
	width  int
}

// MaxWidth reports the largest number of decimal digits T can always hold.
func MaxWidth[T constraints.Unsigned]() int {
	top := ^T(0)
	n := 1
	for v := T(9); v <= top/10; v = v*10 + 9 {
		n++
	}
	return n
}

// Parse parses s as a bank from which n digits will be selected. All digits
// of s are kept; n only constrains construction.
func Parse[T constraints.Unsigned](s string, n int) (*Bank[T], error) {
	switch {
	case n < 1:
		return nil, &ParseError{Input: s, Width: n, Pos: -1, Err: ErrInvalidWidth}
	case n > MaxWidth[T]():
		return nil, &ParseError{Input: s, Width: n, Pos: -1, Err: ErrWidthOverflow}
	}
	digits := make([]T, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, &ParseError{Input: s, Width: n, Pos: i, Err: ErrMalformedDigit}
		}
		digits = append(digits, T(c-'0'))
	}
	if len(digits) < n {
		return nil, &ParseError{Input: s, Width: n, Pos: -1, Err: ErrSequenceTooShort}
	}
	return &Bank[T]{digits: digits, width: n}, nil
}

// MustParse is like Parse but panics on error.
func MustParse[T constraints.Unsigned](s string, n int) *Bank[T] {
	b, err := Parse[T](s, n)
	if err != nil {
		panic(err)
	}
	return b
}

// Len returns the number of digits in the bank.
func (b *Bank[T]) Len() int { return len(b.digits) }

// Width returns the number of digits Select picks.
func (b *Bank[T]) Width() int { return b.width }

// Digit returns the digit at index i.
func (b *Bank[T]) Digit(i int) T { return b.digits[i] }

func (b *Bank[T]) String() string {
	buf := make([]byte, len(b.digits))
	for i, d := range b.digits {
		buf[i] = byte(d) + '0'
	}
	return string(buf)
}

// Select returns the strictly increasing indices of the Width digits that
// form the largest number.
func (b *Bank[T]) Select() []int {
	return selectIndices(b.digits, b.width, true)
}

// Joltage returns the largest number formed by Width digits of b, taken in
// order.
func (b *Bank[T]) Joltage() T {
	idx := b.Select()
	digits := make([]T, len(idx))
	for i, ix := range idx {
		digits[i] = b.digits[ix]
	}
	return Compose(digits...)
}

// selectIndices picks n indices of digits greedily. If shortcut is set, it
// takes the whole tail once the tail is exactly as long as what is missing.
// It panics if len(digits) < n.
func selectIndices[T constraints.Unsigned](digits []T, n int, shortcut bool) []int {
	if len(digits) < n {
		panic(fmt.Sprintf("bank: %d digits cannot fill width %d", len(digits), n))
	}
	out := make([]int, 0, n)
	start := 0
	for len(out) < n {
		missing := n - len(out)
		if shortcut && len(digits)-start == missing {
			for i := start; i < len(digits); i++ {
				out = append(out, i)
			}
			break
		}
		// Latest position that still leaves missing-1 digits after it.
		end := len(digits) - missing + 1
		best := start
		for i := start + 1; i < end; i++ {
			if digits[i] > digits[best] {
				best = i
			}
		}
		out = append(out, best)
		start = best + 1
	}
	return out
}

// Compose folds digits, most significant first, into a single value.
func Compose[T constraints.Unsigned](digits ...T) T {
	var v T
	for _, d := range digits {
		v = v*10 + d
	}
	return v
}
