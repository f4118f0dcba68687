package aoc

import (
	"slices"
	"sync"
	"testing"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
		ok      bool
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
			ok: true,
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
			ok: true,
		},
		{
			comment: `// want=42`,
			want:    sample{want: "42"},
			ok:      true,
		},
		{
			comment: `// D1p1 solves part one.`,
		},
	}

	for _, tt := range tests {
		got, ok := parseSample(tt.comment)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseSample(%q) = %v, %v; want %v, %v", tt.comment, got, ok, tt.want, tt.ok)
		}
	}
}

const solverSrc = `package main

/*
want=7

3
4
*/
func (s solver) D1p1() any { return nil }

// want=12
func (s solver) D1p2() any { return nil }

func (s solver) helper() {}
`

func TestExtractSamples(t *testing.T) {
	samples, err := extractSamples([]byte(solverSrc))
	if err != nil {
		t.Fatal(err)
	}
	if len(samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(samples))
	}
	if got := samples["D1p1"]; got.want != "7" || got.input != "3\n4\n" {
		t.Errorf("D1p1 sample = %+v", got)
	}
	if got := samples["D1p2"]; got.want != "12" || got.input != "3\n4\n" {
		t.Errorf("D1p2 sample = %+v; want input carried over", got)
	}
	if _, err := extractSamples([]byte("not go")); err == nil {
		t.Error("extractSamples of invalid source succeeded")
	}
}

type testSolver struct {
	*Puzzle
}

func (testSolver) D2p2() any  { return 4 }
func (testSolver) D2p1() any  { return 3 }
func (testSolver) D10p1() any { return 10 }
func (testSolver) Other() any { return nil }

func TestExtractMethods(t *testing.T) {
	days, err := extractMethods(&testSolver{})
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	var parts []string
	for _, p := range days[2].parts {
		parts = append(parts, p.Part)
	}
	if !slices.Equal(parts, []string{"1", "2"}) {
		t.Errorf("day 2 parts = %v", parts)
	}
	if got := days[10].parts[0].fn(); got != 10 {
		t.Errorf("D10p1() = %v", got)
	}
	if _, err := extractMethods(testSolver{}); err == nil {
		t.Error("extractMethods of non-pointer succeeded")
	}
}

func TestPuzzleSampleInput(t *testing.T) {
	p := &Puzzle{
		SampleMode: true,
		solver:     partSolver{Name: "D1p1"},
		samples:    map[string]sample{"D1p1": {want: "2", input: "a\n\n b \n"}},
	}
	if got := p.Lines(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Lines() = %q", got)
	}
	var ys []int
	p.ForLinesY(func(y int, _ string) { ys = append(ys, y) })
	if !slices.Equal(ys, []int{0, 1, 2}) {
		t.Errorf("ForLinesY rows = %v", ys)
	}
}

func TestStack(t *testing.T) {
	var s Stack[int]
	if _, ok := s.Pop(); ok {
		t.Fatal("Pop on empty stack succeeded")
	}
	s.Push(1)
	s.Push(2)
	if v, _ := s.Peek(); v != 2 {
		t.Errorf("Peek = %v, want 2", v)
	}
	if v, _ := s.Pop(); v != 2 {
		t.Errorf("Pop = %v, want 2", v)
	}
	if s.Len() != 1 || !slices.Equal(s.Slice(), []int{1}) {
		t.Errorf("stack = %v", s.Slice())
	}
}

func TestMemo(t *testing.T) {
	type key struct {
		S string
		N int
	}
	var mu sync.Mutex
	calls := 0
	m := Memoize(func(k key) int {
		mu.Lock()
		calls++
		mu.Unlock()
		return len(k.S) * k.N
	})
	keys := []key{{"ab", 2}, {"ab", 2}, {"abc", 2}, {"ab", 3}, {"ab", 2}}
	got := Parallel(keys, m.Get)
	if !slices.Equal(got, []int{4, 4, 6, 6, 4}) {
		t.Errorf("Get = %v", got)
	}
	if m.Get(key{"ab", 2}) != 4 || m.Hits() == 0 {
		t.Errorf("expected cache hit, hits = %d", m.Hits())
	}
	if calls < 3 || calls > 5 {
		t.Errorf("fn called %d times", calls)
	}
}

func TestMod(t *testing.T) {
	tests := []struct{ x, m, want int }{
		{5, 100, 5},
		{-1, 100, 99},
		{-200, 100, 0},
		{250, 100, 50},
	}
	for _, tt := range tests {
		if got := Mod(tt.x, tt.m); got != tt.want {
			t.Errorf("Mod(%d, %d) = %d, want %d", tt.x, tt.m, got, tt.want)
		}
	}
}

func TestFolds(t *testing.T) {
	if got := Sum(1, 2, 3); got != 6 {
		t.Errorf("Sum = %d", got)
	}
	if got := AbsDiff[uint](3, 7); got != 4 {
		t.Errorf("AbsDiff = %d", got)
	}
	got := ParallelMapFold([]string{"1", "22", "333"}, Int, func(a, b int) int { return a + b }, 0)
	if got != 356 {
		t.Errorf("ParallelMapFold = %d", got)
	}
	if got := Or("", "x", "y"); got != "x" {
		t.Errorf("Or = %q", got)
	}
}
