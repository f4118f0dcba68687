// Package ids finds invalid product ids for day 2. An id is invalid when its
// decimal form is a block of digits repeated.
package ids

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrBadRange = errors.New("bad id range")

// Range is an inclusive range of ids.
type Range struct {
	Lo, Hi uint64
}

func (r Range) String() string { return fmt.Sprintf("%d-%d", r.Lo, r.Hi) }

// Len returns the number of ids in r.
func (r Range) Len() uint64 { return r.Hi - r.Lo + 1 }

type Ranges []Range

// ParseRanges parses a comma separated list of ranges like "11-22,95-115".
func ParseRanges(s string) (Ranges, error) {
	var out Ranges
	for _, group := range strings.Split(strings.TrimSpace(s), ",") {
		lo, hi, ok := strings.Cut(strings.TrimSpace(group), "-")
		if !ok {
			return nil, fmt.Errorf("%w: failed to split %q", ErrBadRange, group)
		}
		a, err := strconv.ParseUint(lo, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadRange, group, err)
		}
		b, err := strconv.ParseUint(hi, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadRange, group, err)
		}
		if b < a {
			return nil, fmt.Errorf("%w: %q is reversed", ErrBadRange, group)
		}
		out = append(out, Range{Lo: a, Hi: b})
	}
	return out, nil
}

// Each calls fn for every id in every range, in order.
func (rs Ranges) Each(fn func(id uint64)) {
	for _, r := range rs {
		for id := r.Lo; ; id++ {
			fn(id)
			if id == r.Hi {
				break
			}
		}
	}
}

// Count returns the total number of ids in rs.
func (rs Ranges) Count() uint64 {
	var n uint64
	for _, r := range rs {
		n += r.Len()
	}
	return n
}

// SumFunc returns the sum of the ids in rs for which keep reports true.
func (rs Ranges) SumFunc(keep func(uint64) bool) uint64 {
	var sum uint64
	rs.Each(func(id uint64) {
		if keep(id) {
			sum += id
		}
	})
	return sum
}

// Doubled reports whether id is some block of digits written twice, like
// 6464 or 123123.
func Doubled(id uint64) bool {
	s := strconv.FormatUint(id, 10)
	if len(s)%2 != 0 {
		return false
	}
	return s[:len(s)/2] == s[len(s)/2:]
}

// Repeated reports whether id is some block of digits written at least
// twice, like 111, 1212 or 123123123.
func Repeated(id uint64) bool {
	s := strconv.FormatUint(id, 10)
	for size := 1; size <= len(s)/2; size++ {
		if len(s)%size != 0 {
			continue
		}
		if strings.Repeat(s[:size], len(s)/size) == s {
			return true
		}
	}
	return false
}
