// Package cube resolves cube nets drawn on a flat grid and moves positions
// across the edges between their faces.
package cube

import "errors"

var (
	ErrMalformedNet = errors.New("cubenet: malformed cube net")
	ErrOffNet       = errors.New("cubenet: position is not on any face")
)

// Side is one of the six physical sides of the cube.
type Side uint8

const (
	Top    Side = 0
	Front  Side = 1
	Right  Side = 2
	Back   Side = 3
	Left   Side = 4
	Bottom Side = 5
)

// Sides lists every side in table order.
var Sides = [6]Side{Top, Front, Right, Back, Left, Bottom}

func (s Side) String() string {
	switch s {
	case Top:
		return "Top"
	case Front:
		return "Front"
	case Right:
		return "Right"
	case Back:
		return "Back"
	case Left:
		return "Left"
	case Bottom:
		return "Bottom"
	default:
		return "?"
	}
}

type edge struct {
	side     Side
	rotation Rotation
}

// adjacency[side][direction] is the neighbour across that edge and the
// rotation of the neighbour relative to side, both in canonical orientation.
//
// Canonical orientation: Top is the anchor and never rotated, the four ring
// sides have their top edge against Top, and Bottom has its top edge against
// Front.
var adjacency = [6][4]edge{
	Top: {
		North: {Back, UpsideDown},
		East:  {Right, Clockwise},
		South: {Front, None},
		West:  {Left, Counterclockwise},
	},
	Front: {
		North: {Top, None},
		East:  {Right, None},
		South: {Bottom, None},
		West:  {Left, None},
	},
	Right: {
		North: {Top, Counterclockwise},
		East:  {Back, None},
		South: {Bottom, Clockwise},
		West:  {Front, None},
	},
	Back: {
		North: {Top, UpsideDown},
		East:  {Left, None},
		South: {Bottom, UpsideDown},
		West:  {Right, None},
	},
	Left: {
		North: {Top, Clockwise},
		East:  {Front, None},
		South: {Bottom, Counterclockwise},
		West:  {Back, None},
	},
	Bottom: {
		North: {Front, None},
		East:  {Right, Counterclockwise},
		South: {Back, UpsideDown},
		West:  {Left, Clockwise},
	},
}

// Adjacent returns the side across the canonical edge d of s and the rotation
// picked up when crossing it.
func Adjacent(s Side, d Direction) (Side, Rotation) {
	e := adjacency[s%6][d%4]
	return e.side, e.rotation
}
