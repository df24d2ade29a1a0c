package grid

import (
	"errors"
	"strings"
	"testing"
)

var sample = []string{
	"        ...#",
	"        .#..",
	"        #...",
	"        ....",
	"...#.......#",
	"........#...",
	"..#....#....",
	"..........#.",
	"        ...#....",
	"        .....#..",
	"        .#......",
	"        ......#.",
}

func TestParseRowBounds(t *testing.T) {
	r, err := ParseRow("        .#..   ")
	if err != nil {
		t.Fatalf("ParseRow: %v", err)
	}
	if r.Start != 8 || r.End != 12 {
		t.Errorf("bounds = [%d,%d), want [8,12)", r.Start, r.End)
	}
	if !r.IsWall(9) || r.IsWall(8) || r.IsWall(10) {
		t.Error("wall lookup disagrees with input")
	}
	if r.Contains(7) || !r.Contains(11) || r.Contains(12) {
		t.Error("Contains disagrees with bounds")
	}
}

func TestParseRowErrors(t *testing.T) {
	if _, err := ParseRow("     "); !errors.Is(err, ErrEmptyRow) {
		t.Errorf("blank row: got %v, want ErrEmptyRow", err)
	}
	if _, err := ParseRow("  ..x."); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("bad cell: got %v, want ErrInvalidCell", err)
	}
}

func TestParseSample(t *testing.T) {
	g, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Height() != 12 || g.Width() != 16 {
		t.Errorf("size = %dx%d, want 12x16", g.Height(), g.Width())
	}
	if got := g.String(); got != strings.Join(sample, "\n")+"\n" {
		t.Errorf("String() does not reproduce input:\n%s", got)
	}
	if _, err := Parse(nil); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("empty input: got %v, want ErrEmptyGrid", err)
	}
}

func TestColumnRun(t *testing.T) {
	g, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		col, row   int
		start, end int
	}{
		{col: 8, row: 0, start: 0, end: 12},
		{col: 8, row: 11, start: 0, end: 12},
		{col: 0, row: 5, start: 4, end: 8},
		{col: 13, row: 9, start: 8, end: 12},
		{col: 11, row: 3, start: 0, end: 12},
	}
	for _, tt := range tests {
		start, end := g.ColumnRun(tt.col, tt.row)
		if start != tt.start || end != tt.end {
			t.Errorf("ColumnRun(%d, %d) = [%d,%d), want [%d,%d)", tt.col, tt.row, start, end, tt.start, tt.end)
		}
	}
}

func TestStart(t *testing.T) {
	g, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	row, col, err := g.Start()
	if err != nil || row != 0 || col != 8 {
		t.Errorf("Start() = (%d, %d, %v), want (0, 8, nil)", row, col, err)
	}

	g, err = Parse([]string{"  ##.", "  ..."})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, col, _ := g.Start(); col != 4 {
		t.Errorf("Start() skipped walls to col %d, want 4", col)
	}

	g, err = Parse([]string{"  ###", "  ..."})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, _, err := g.Start(); !errors.Is(err, ErrNoStartCell) {
		t.Errorf("all-wall first row: got %v, want ErrNoStartCell", err)
	}
}

func TestOffNetCells(t *testing.T) {
	g, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Contains(-1, 8) || g.Contains(12, 8) || g.Contains(0, 7) {
		t.Error("Contains accepted an off-net cell")
	}
	if g.IsWall(-1, 11) || g.IsWall(40, 0) {
		t.Error("IsWall reported a wall off the net")
	}
	if !g.IsWall(0, 11) {
		t.Error("IsWall(0, 11) = false, want true")
	}
}
