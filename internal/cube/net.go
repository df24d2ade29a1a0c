package cube

import (
	"fmt"
	"strings"
)

// Sheet is the flat drawing a net is read from.
type Sheet interface {
	Height() int
	Width() int
	Contains(row, col int) bool
}

// Mask marks the blocks of a 4×4 overlay that hold a face. Every net handled
// here fits inside that overlay.
type Mask [4][4]bool

// Has reports whether the block at (row, col) is inside the overlay and holds
// a face.
func (m Mask) Has(row, col int) bool {
	if row < 0 || row >= 4 || col < 0 || col >= 4 {
		return false
	}
	return m[row][col]
}

// Count returns the number of occupied blocks.
func (m Mask) Count() int {
	n := 0
	for _, row := range m {
		for _, ok := range row {
			if ok {
				n++
			}
		}
	}
	return n
}

func (m Mask) String() string {
	var b strings.Builder
	for _, row := range m {
		for _, ok := range row {
			if ok {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Face is a square of the net with the side it folds onto.
type Face struct {
	Side     Side
	Row      int // top-left corner on the sheet
	Col      int
	Rotation Rotation
}

// Contains reports whether (row, col) lies on the face.
func (f Face) Contains(row, col, size int) bool {
	return row >= f.Row && row < f.Row+size && col >= f.Col && col < f.Col+size
}

// Net is a resolved cube net. It is not modified after Resolve returns.
type Net struct {
	size  int
	mask  Mask
	faces [6]Face
}

// CubeSize returns the edge length of a face. A net is always drawn inside a
// 4×4 block overlay, so the longer sheet dimension spans four faces.
func CubeSize(s Sheet) int {
	return max(s.Height(), s.Width()) / 4
}

// Segment reduces the sheet to the blocks whose leading cell is on the net.
func Segment(s Sheet, size int) Mask {
	var m Mask
	if size <= 0 {
		return m
	}
	for br := 0; br < 4; br++ {
		for bc := 0; bc < 4; bc++ {
			m[br][bc] = s.Contains(br*size, bc*size)
		}
	}
	return m
}

type block struct{ row, col int }

// Resolve folds the net drawn on s. The first face found scanning blocks row
// by row is Top, unrotated; the others are placed breadth-first through the
// adjacency table.
func Resolve(s Sheet) (*Net, error) {
	size := CubeSize(s)
	if size == 0 {
		return nil, fmt.Errorf("%w: sheet %dx%d is too small", ErrMalformedNet, s.Height(), s.Width())
	}
	mask := Segment(s, size)

	start, ok := firstBlock(mask)
	if !ok {
		return nil, fmt.Errorf("%w: no faces found", ErrMalformedNet)
	}

	placed := map[block]Face{
		start: {Side: Top, Row: start.row * size, Col: start.col * size, Rotation: None},
	}
	where := map[Side]block{Top: start}
	queue := []block{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		face := placed[cur]

		for _, d := range Directions {
			dr, dc := d.Delta()
			next := block{cur.row + dr, cur.col + dc}
			if !mask.Has(next.row, next.col) {
				continue
			}

			side, delta := Adjacent(face.Side, d.Rotate(face.Rotation))
			rotation := delta.Add(face.Rotation)

			if existing, seen := placed[next]; seen {
				if existing.Side != side || existing.Rotation != rotation {
					return nil, fmt.Errorf("%w: block (%d,%d) folds to %s/%s from %s but was placed as %s/%s",
						ErrMalformedNet, next.row, next.col, side, rotation, face.Side, existing.Side, existing.Rotation)
				}
				continue
			}
			if other, dup := where[side]; dup {
				return nil, fmt.Errorf("%w: blocks (%d,%d) and (%d,%d) both fold to %s",
					ErrMalformedNet, other.row, other.col, next.row, next.col, side)
			}

			placed[next] = Face{Side: side, Row: next.row * size, Col: next.col * size, Rotation: rotation}
			where[side] = next
			queue = append(queue, next)
		}
	}

	if len(placed) != 6 || mask.Count() != 6 {
		return nil, fmt.Errorf("%w: %d connected faces in %d blocks, want 6", ErrMalformedNet, len(placed), mask.Count())
	}

	n := &Net{size: size, mask: mask}
	for _, f := range placed {
		n.faces[f.Side] = f
	}
	return n, nil
}

func firstBlock(m Mask) (block, bool) {
	for br := 0; br < 4; br++ {
		for bc := 0; bc < 4; bc++ {
			if m[br][bc] {
				return block{br, bc}, true
			}
		}
	}
	return block{}, false
}

// Size returns the edge length of a face.
func (n *Net) Size() int {
	return n.size
}

// Mask returns the block overlay the net was resolved from.
func (n *Net) Mask() Mask {
	return n.mask
}

// Face returns the face that folds onto side.
func (n *Net) Face(side Side) Face {
	return n.faces[side%6]
}

// Faces returns all six faces in side order.
func (n *Net) Faces() []Face {
	faces := make([]Face, len(n.faces))
	copy(faces, n.faces[:])
	return faces
}

// FaceAt returns the face containing (row, col).
func (n *Net) FaceAt(row, col int) (Face, bool) {
	for _, f := range n.faces {
		if f.Contains(row, col, n.size) {
			return f, true
		}
	}
	return Face{}, false
}
