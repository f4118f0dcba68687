// Package dial models the safe dial from day 1: a ring of 100 positions
// turned left or right by a number of clicks.
package dial

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/joltlab/aoc"
)

// Size is the number of positions on the dial.
const Size = 100

// Start is the position the dial points at before any rotation.
const Start = 50

var ErrBadInstruction = errors.New("bad instruction")

type Direction byte

const (
	Left  Direction = 'L'
	Right Direction = 'R'
)

// Instruction is a single rotation.
type Instruction struct {
	Dir    Direction
	Clicks int
}

func (i Instruction) String() string {
	return fmt.Sprintf("%c%d", i.Dir, i.Clicks)
}

// FullRotations is the number of complete turns in i.
func (i Instruction) FullRotations() int {
	return i.Clicks / Size
}

// ParseInstruction parses an instruction such as "L68" or "R1000".
func ParseInstruction(s string) (Instruction, error) {
	if len(s) < 2 {
		return Instruction{}, fmt.Errorf("%w: %q", ErrBadInstruction, s)
	}
	d := Direction(s[0])
	if d != Left && d != Right {
		return Instruction{}, fmt.Errorf("%w: %q: unknown direction", ErrBadInstruction, s)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 0 {
		return Instruction{}, fmt.Errorf("%w: %q: bad magnitude", ErrBadInstruction, s)
	}
	return Instruction{Dir: d, Clicks: n}, nil
}

// Dial is the current position of the dial.
type Dial struct {
	pos int
}

// New returns a dial pointing at pos.
func New(pos int) *Dial {
	return &Dial{pos: aoc.Mod(pos, Size)}
}

func (d *Dial) Position() int { return d.pos }

// Reset points the dial back at Start.
func (d *Dial) Reset() { d.pos = Start }

// Apply rotates the dial and returns how many times it pointed at 0 during
// the rotation, including where it stops. Leaving 0 is not counted.
func (d *Dial) Apply(ins Instruction) int {
	zeroes := ins.FullRotations()
	rem := ins.Clicks % Size
	switch ins.Dir {
	case Left:
		if d.pos > 0 && d.pos <= rem {
			zeroes++
		}
		d.pos = aoc.Mod(d.pos-rem, Size)
	case Right:
		if d.pos+rem >= Size {
			zeroes++
		}
		d.pos = (d.pos + rem) % Size
	}
	return zeroes
}
