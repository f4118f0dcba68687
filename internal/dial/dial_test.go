package dial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func L(n int) Instruction { return Instruction{Dir: Left, Clicks: n} }
func R(n int) Instruction { return Instruction{Dir: Right, Clicks: n} }

func TestParseInstruction(t *testing.T) {
	tests := []struct {
		in      string
		want    Instruction
		wantErr bool
	}{
		{in: "L68", want: L(68)},
		{in: "R1000", want: R(1000)},
		{in: "R0", want: R(0)},
		{in: "X5", wantErr: true},
		{in: "L", wantErr: true},
		{in: "L-4", wantErr: true},
		{in: "Rabc", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInstruction(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBadInstruction)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestFullRotations(t *testing.T) {
	assert.Equal(t, 10, R(1000).FullRotations())
	assert.Equal(t, 0, L(99).FullRotations())
}

func TestDialSpinning(t *testing.T) {
	d := New(Start)
	assert.Equal(t, 10, d.Apply(R(1000)))
	assert.Equal(t, 10, d.Apply(L(1000)))
	assert.Equal(t, 0, d.Apply(R(49))) // 99
	assert.Equal(t, 0, d.Apply(L(98))) // 1
	assert.Equal(t, 1, d.Apply(L(1))) // 0
	d.Apply(R(50))
	assert.Equal(t, 1, d.Apply(R(50)))
	assert.Equal(t, 1, d.Apply(R(100)))
	assert.Equal(t, 1, d.Apply(L(100)))
}

func TestApplyStepwise(t *testing.T) {
	steps := []struct {
		ins    Instruction
		zeroes int
		pos    int
	}{
		{L(68), 1, 82},
		{L(30), 0, 52},
		{R(48), 1, 0},
		{L(5), 0, 95},
		{R(60), 1, 55},
		{L(55), 1, 0},
		{L(1), 0, 99},
		{L(99), 1, 0},
		{R(14), 0, 14},
		{L(82), 1, 32},
	}
	d := New(Start)
	for _, s := range steps {
		assert.Equal(t, s.zeroes, d.Apply(s.ins), "apply %v", s.ins)
		assert.Equal(t, s.pos, d.Position(), "after %v", s.ins)
	}
	d.Reset()
	assert.Equal(t, Start, d.Position())
}

func TestNewWraps(t *testing.T) {
	assert.Equal(t, 99, New(-1).Position())
	assert.Equal(t, 5, New(205).Position())
}
