package cube

import (
	"errors"
	"testing"

	"github.com/SeamusWaldron/cubenet/internal/grid"
)

var sampleLines = []string{
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

func sampleNet(t *testing.T) *Net {
	t.Helper()
	g, err := grid.Parse(sampleLines)
	if err != nil {
		t.Fatalf("grid.Parse: %v", err)
	}
	n, err := Resolve(g)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return n
}

// blockSheet draws a net from a block layout, one character per face.
type blockSheet struct {
	blocks []string
	size   int
}

func (s blockSheet) Height() int { return len(s.blocks) * s.size }

func (s blockSheet) Width() int {
	w := 0
	for _, b := range s.blocks {
		w = max(w, len(b))
	}
	return w * s.size
}

func (s blockSheet) Contains(row, col int) bool {
	if row < 0 || col < 0 {
		return false
	}
	br, bc := row/s.size, col/s.size
	return br < len(s.blocks) && bc < len(s.blocks[br]) && s.blocks[br][bc] == '#'
}

var validNets = [][]string{
	{"#...", "####", "#..."},
	{"#...", "####", ".#.."},
	{"#...", "####", "..#."},
	{"#...", "####", "...#"},
	{".#..", "####", ".#.."},
	{".#..", "####", "..#."},
	{"##..", ".###", ".#.."},
	{"##..", ".###", "..#."},
	{"##..", ".###", "...#"},
	{"##..", ".##.", "..##"},
	{"..#.", "###.", "..##"},
	{".#.", "###", ".#.", ".#."},
	{"#..", "##.", ".##", "..#"},
}

func TestAdjacencyTableIsInverseClosed(t *testing.T) {
	for _, s := range Sides {
		seen := map[Side]bool{}
		for _, d := range Directions {
			other, delta := Adjacent(s, d)
			if other == s {
				t.Errorf("%v is its own neighbour to the %v", s, d)
			}
			seen[other] = true

			arrival := d.Rotate(delta)
			back, backDelta := Adjacent(other, arrival.Opposite())
			if back != s || backDelta != delta.Neg() {
				t.Errorf("%v %v -> %v/%v, but %v %v -> %v/%v",
					s, d, other, delta, other, arrival.Opposite(), back, backDelta)
			}
		}
		if len(seen) != 4 {
			t.Errorf("%v has %d distinct neighbours, want 4", s, len(seen))
		}
	}
}

func TestCubeSize(t *testing.T) {
	g, err := grid.Parse(sampleLines)
	if err != nil {
		t.Fatalf("grid.Parse: %v", err)
	}
	if got := CubeSize(g); got != 4 {
		t.Errorf("CubeSize = %d, want 4", got)
	}
	if got := CubeSize(blockSheet{blocks: validNets[11], size: 50}); got != 50 {
		t.Errorf("CubeSize of a tall net = %d, want 50", got)
	}
}

func TestSegmentSample(t *testing.T) {
	g, err := grid.Parse(sampleLines)
	if err != nil {
		t.Fatalf("grid.Parse: %v", err)
	}
	want := Mask{
		{false, false, true, false},
		{true, true, true, false},
		{false, false, true, true},
		{false, false, false, false},
	}
	if got := Segment(g, 4); got != want {
		t.Errorf("Segment mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestResolveSample(t *testing.T) {
	n := sampleNet(t)
	want := map[Side]Face{
		Top:    {Side: Top, Row: 0, Col: 8, Rotation: None},
		Front:  {Side: Front, Row: 4, Col: 8, Rotation: None},
		Right:  {Side: Right, Row: 8, Col: 12, Rotation: Counterclockwise},
		Back:   {Side: Back, Row: 4, Col: 0, Rotation: None},
		Left:   {Side: Left, Row: 4, Col: 4, Rotation: None},
		Bottom: {Side: Bottom, Row: 8, Col: 8, Rotation: None},
	}
	for side, w := range want {
		if got := n.Face(side); got != w {
			t.Errorf("Face(%v) = %+v, want %+v", side, got, w)
		}
	}
	if n.Size() != 4 {
		t.Errorf("Size() = %d, want 4", n.Size())
	}
	if f, ok := n.FaceAt(10, 13); !ok || f.Side != Right {
		t.Errorf("FaceAt(10,13) = %v %v, want Right", f.Side, ok)
	}
	if _, ok := n.FaceAt(0, 0); ok {
		t.Error("FaceAt(0,0) found a face in the padding")
	}
}

func TestResolveValidNets(t *testing.T) {
	for _, blocks := range validNets {
		for _, size := range []int{1, 2, 3} {
			n, err := Resolve(blockSheet{blocks: blocks, size: size})
			if err != nil {
				t.Errorf("%v size %d: %v", blocks, size, err)
				continue
			}
			seen := map[Side]bool{}
			for _, f := range n.Faces() {
				seen[f.Side] = true
				if !n.mask.Has(f.Row/size, f.Col/size) {
					t.Errorf("%v: %v placed on an empty block", blocks, f.Side)
				}
			}
			if len(seen) != 6 {
				t.Errorf("%v size %d: %d distinct sides, want 6", blocks, size, len(seen))
			}
		}
	}
}

func TestResolveMalformedNets(t *testing.T) {
	bad := map[string][]string{
		"five faces":     {"#...", "###.", "#..."},
		"seven faces":    {"#...", "####", "##.."},
		"square of four": {"####", "##..", "...."},
		"overlapping":    {"####", "#...", "#..."},
		"disconnected":   {"#..#", ".###", ".#.."},
		"empty":          {"....", "....", "...."},
		"ring of sides":  {"###.", "#.#.", "###."},
	}
	for name, blocks := range bad {
		if _, err := Resolve(blockSheet{blocks: blocks, size: 2}); !errors.Is(err, ErrMalformedNet) {
			t.Errorf("%s: got %v, want ErrMalformedNet", name, err)
		}
	}

	tiny := blockSheet{blocks: []string{"#"}, size: 1}
	if _, err := Resolve(tiny); !errors.Is(err, ErrMalformedNet) {
		t.Errorf("tiny sheet: got %v, want ErrMalformedNet", err)
	}
}
