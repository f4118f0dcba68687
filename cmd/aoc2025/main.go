// Command aoc2025 solves Advent of Code 2025.
package main

import (
	_ "embed"

	"github.com/joltlab/aoc"
	"github.com/joltlab/aoc/internal/bank"
	"github.com/joltlab/aoc/internal/dial"
	"github.com/joltlab/aoc/internal/ids"
	log "github.com/sirupsen/logrus"
)

func main() {
	aoc.Run(2025, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) instructions() []dial.Instruction {
	var out []dial.Instruction
	for _, line := range s.Lines() {
		out = append(out, aoc.MustGet(dial.ParseInstruction(line)))
	}
	return out
}

/*
want=3

L68
L30
R48
L5
R60
L55
L1
L99
R14
L82
*/
func (s solver) D1p1() any {
	d := dial.New(dial.Start)
	zeroes := 0
	for _, ins := range s.instructions() {
		d.Apply(ins)
		if d.Position() == 0 {
			zeroes++
		}
	}
	return zeroes
}

// want=6
func (s solver) D1p2() any {
	d := dial.New(dial.Start)
	zeroes := 0
	for _, ins := range s.instructions() {
		zeroes += d.Apply(ins)
	}
	return zeroes
}

func (s solver) ranges() ids.Ranges {
	rs := aoc.MustGet(ids.ParseRanges(string(s.Input())))
	s.Debugf("%d ranges, %d ids", len(rs), rs.Count())
	return rs
}

/*
want=1227775554

11-22,95-115,998-1012,1188511880-1188511890,222220-222224,1698522-1698528,446443-446449,38593856-38593862,565653-565659,824824821-824824827,2121212118-2121212124
*/
func (s solver) D2p1() any {
	return s.ranges().SumFunc(ids.Doubled)
}

// want=4174379265
func (s solver) D2p2() any {
	return s.ranges().SumFunc(ids.Repeated)
}

type joltageKey struct {
	Bank  string
	Width int
}

var joltages = aoc.Memoize(func(k joltageKey) uint64 {
	if k.Width <= bank.MaxWidth[uint32]() {
		return uint64(aoc.MustGet(bank.Parse[uint32](k.Bank, k.Width)).Joltage())
	}
	return aoc.MustGet(bank.Parse[uint64](k.Bank, k.Width)).Joltage()
})

func (s solver) totalJoltage(width int) uint64 {
	total := aoc.ParallelMapFold(s.Lines(),
		func(line string) uint64 {
			return joltages.Get(joltageKey{Bank: line, Width: width})
		},
		func(sum, v uint64) uint64 { return sum + v },
		0,
	)
	log.Debugf("width %d: %d memo hits", width, joltages.Hits())
	return total
}

/*
want=357

987654321111111
811111111111119
234234234234278
818181911112111
*/
func (s solver) D3p1() any {
	return s.totalJoltage(2)
}

// want=3121910778619
func (s solver) D3p2() any {
	return s.totalJoltage(12)
}
