package cubenet

import (
	"errors"
	"strings"
	"testing"
)

const sampleInput = `        ...#
        .#..
        #...
        ....
...#.......#
........#...
..#....#....
..........#.
        ...#....
        .....#..
        .#......
        ......#.

10R5L5R10L4R5L5
`

func TestSimulateSample(t *testing.T) {
	g, path, err := Parse(strings.NewReader(sampleInput))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(path) != 13 {
		t.Errorf("parsed %d instructions, want 13", len(path))
	}

	flat, err := SimulateFlat(g, path)
	if err != nil {
		t.Fatalf("SimulateFlat: %v", err)
	}
	if flat != 6032 {
		t.Errorf("SimulateFlat = %d, want 6032", flat)
	}

	folded, err := SimulateCube(g, path)
	if err != nil {
		t.Fatalf("SimulateCube: %v", err)
	}
	if folded != 5031 {
		t.Errorf("SimulateCube = %d, want 5031", folded)
	}
}

func TestWalkWithTrace(t *testing.T) {
	g, path, err := Parse(strings.NewReader(sampleInput))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	net, err := Fold(g)
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	res, err := Walk(g, path, net, WithTrace(true))
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if res.Score != 5031 || len(res.Trace) != len(path) {
		t.Errorf("Walk = score %d, %d steps; want 5031, %d steps", res.Score, len(res.Trace), len(path))
	}

	res, err = Walk(g, path, nil)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if res.Score != 6032 {
		t.Errorf("flat Walk = %d, want 6032", res.Score)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmptyGrid},
		{"no path", "...\n...\n\n", ErrNoInstructions},
		{"bad token", "...\n\n3X\n", ErrUnknownInstructionToken},
		{"bad cell", "..?\n\n3\n", ErrInvalidCell},
	}
	for _, tt := range tests {
		if _, _, err := Parse(strings.NewReader(tt.input)); !errors.Is(err, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestSimulateCubeRejectsFlatMap(t *testing.T) {
	g, path, err := Parse(strings.NewReader("....\n....\n....\n....\n\n5R5\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := SimulateFlat(g, path); err != nil {
		t.Errorf("SimulateFlat: %v", err)
	}
	if _, err := SimulateCube(g, path); !errors.Is(err, ErrMalformedNet) {
		t.Errorf("SimulateCube: got %v, want ErrMalformedNet", err)
	}
}
