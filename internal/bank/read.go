package bank

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// ReadAll parses one bank of width n per non-blank line of r.
func ReadAll[T constraints.Unsigned](r io.Reader, n int) ([]*Bank[T], error) {
	var banks []*Bank[T]
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}
		b, err := Parse[T](text, n)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		banks = append(banks, b)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading banks: %w", err)
	}
	return banks, nil
}

// Total returns the sum of the joltages of banks.
func Total[T constraints.Unsigned](banks []*Bank[T]) uint64 {
	var sum uint64
	for _, b := range banks {
		sum += uint64(b.Joltage())
	}
	return sum
}
