package cube

import (
	"errors"
	"testing"
)

// boundaryCells returns every cell on the d edge of f.
func boundaryCells(f Face, d Direction, size int) []Position {
	cells := make([]Position, 0, size)
	for i := 0; i < size; i++ {
		var row, col int
		switch d {
		case North:
			row, col = f.Row, f.Col+i
		case South:
			row, col = f.Row+size-1, f.Col+i
		case East:
			row, col = f.Row+i, f.Col+size-1
		case West:
			row, col = f.Row+i, f.Col
		}
		cells = append(cells, Position{Row: row, Col: col, Facing: d})
	}
	return cells
}

func TestWrapSampleEdges(t *testing.T) {
	n := sampleNet(t)

	tests := []struct {
		name string
		from Position
		want Position
	}{
		{
			name: "front east onto right",
			from: Position{Row: 5, Col: 11, Facing: East},
			want: Position{Row: 8, Col: 14, Facing: South},
		},
		{
			name: "bottom south onto back",
			from: Position{Row: 11, Col: 10, Facing: South},
			want: Position{Row: 7, Col: 1, Facing: North},
		},
		{
			name: "top north onto back",
			from: Position{Row: 0, Col: 8, Facing: North},
			want: Position{Row: 4, Col: 3, Facing: South},
		},
		{
			name: "left north onto top",
			from: Position{Row: 4, Col: 5, Facing: North},
			want: Position{Row: 1, Col: 8, Facing: East},
		},
	}
	for _, tt := range tests {
		got, err := n.Wrap(tt.from, tt.from.Facing)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: Wrap(%v) = %v, want %v", tt.name, tt.from, got, tt.want)
		}
	}
}

func TestWrapOffNet(t *testing.T) {
	n := sampleNet(t)
	if _, err := n.Wrap(Position{Row: 0, Col: 0, Facing: North}, North); !errors.Is(err, ErrOffNet) {
		t.Errorf("got %v, want ErrOffNet", err)
	}
}

// Crossing any edge and stepping straight back lands on the starting cell.
func TestWrapRoundTrip(t *testing.T) {
	for _, blocks := range validNets {
		for _, size := range []int{1, 2, 4, 5} {
			n, err := Resolve(blockSheet{blocks: blocks, size: size})
			if err != nil {
				t.Fatalf("%v: %v", blocks, err)
			}
			for _, f := range n.Faces() {
				for _, d := range Directions {
					for _, p := range boundaryCells(f, d, size) {
						there, err := n.Wrap(p, d)
						if err != nil {
							t.Fatalf("%v: wrap %v: %v", blocks, p, err)
						}
						to, ok := n.FaceAt(there.Row, there.Col)
						if !ok {
							t.Fatalf("%v: %v wrapped off the net to %v", blocks, p, there)
						}
						if want, _ := Adjacent(f.Side, d.Rotate(f.Rotation)); to.Side != want {
							t.Errorf("%v: %v from %v landed on %v, want %v", blocks, p, f.Side, to.Side, want)
						}

						back, err := n.Wrap(there, there.Facing.Opposite())
						if err != nil {
							t.Fatalf("%v: wrap back %v: %v", blocks, there, err)
						}
						if back.Row != p.Row || back.Col != p.Col || back.Facing != d.Opposite() {
							t.Errorf("%v size %d: %v -> %v -> %v", blocks, size, p, there, back)
						}
					}
				}
			}
		}
	}
}

// Where two faces already touch on the sheet, wrapping must agree with a
// plain step into the neighbouring cell.
func TestWrapMatchesSheetNeighbours(t *testing.T) {
	for _, blocks := range validNets {
		size := 3
		n, err := Resolve(blockSheet{blocks: blocks, size: size})
		if err != nil {
			t.Fatalf("%v: %v", blocks, err)
		}
		for _, f := range n.Faces() {
			for _, d := range Directions {
				dr, dc := d.Delta()
				if !n.mask.Has(f.Row/size+dr, f.Col/size+dc) {
					continue
				}
				for _, p := range boundaryCells(f, d, size) {
					got, err := n.Wrap(p, d)
					if err != nil {
						t.Fatalf("%v: %v", blocks, err)
					}
					want := Position{Row: p.Row + dr, Col: p.Col + dc, Facing: d}
					if got != want {
						t.Errorf("%v: %v across a drawn edge = %v, want %v", blocks, p, got, want)
					}
				}
			}
		}
	}
}
