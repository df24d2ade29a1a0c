package cube

import "fmt"

// Position is a cell on the sheet and the heading of whoever stands on it.
type Position struct {
	Row    int
	Col    int
	Facing Direction
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d) %s", p.Row, p.Col, p.Facing)
}

// Wrap carries p over the edge of its face in direction d and onto the
// neighbouring face. p must sit on that edge.
func (n *Net) Wrap(p Position, d Direction) (Position, error) {
	from, ok := n.FaceAt(p.Row, p.Col)
	if !ok {
		return p, fmt.Errorf("%w: %s", ErrOffNet, p)
	}

	canonical := d.Rotate(from.Rotation)
	side, entry := Adjacent(from.Side, canonical)
	to := n.faces[side]

	row, col := RotateLocal(p.Row-from.Row, p.Col-from.Col, from.Rotation, n.size)

	// The coordinate along the crossed edge wraps to the far side of the
	// canonical frame; the other one is already in range.
	dr, dc := canonical.Delta()
	row, col = wrapIndex(row+dr, n.size), wrapIndex(col+dc, n.size)

	row, col = RotateLocal(row, col, entry, n.size)
	row, col = RotateLocal(row, col, to.Rotation.Neg(), n.size)

	return Position{
		Row:    to.Row + row,
		Col:    to.Col + col,
		Facing: d.Rotate(from.Rotation.Add(entry).Add(to.Rotation.Neg())),
	}, nil
}

func wrapIndex(v, size int) int {
	return ((v % size) + size) % size
}
