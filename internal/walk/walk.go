// Package walk drives a sequence of instructions over a map, wrapping either
// linearly around rows and columns or across the faces of a folded cube.
package walk

import (
	"github.com/SeamusWaldron/cubenet/internal/cube"
	"github.com/SeamusWaldron/cubenet/internal/grid"
	"github.com/SeamusWaldron/cubenet/pkg/types"
)

type modeKind uint8

const (
	flatMode modeKind = iota
	cubeMode
)

// Mode selects how a walker leaving the map re-enters it. It is chosen once
// per run.
type Mode struct {
	kind modeKind
	net  *cube.Net
}

// Flat wraps to the far end of the current row or column.
func Flat() Mode {
	return Mode{kind: flatMode}
}

// Cube wraps across the edges of the folded net.
func Cube(net *cube.Net) Mode {
	return Mode{kind: cubeMode, net: net}
}

// Net returns the folded net for cube mode, nil otherwise.
func (m Mode) Net() *cube.Net {
	return m.net
}

func (m Mode) String() string {
	if m.kind == cubeMode {
		return "cube"
	}
	return "flat"
}

// Step records the walker after one instruction.
type Step struct {
	Index       int    `json:"index"`
	Instruction string `json:"instruction"`
	Row         int    `json:"row"`
	Col         int    `json:"col"`
	Facing      string `json:"facing"`
	Face        string `json:"face,omitempty"`
	Wraps       int    `json:"wraps"`
	Blocked     bool   `json:"blocked"`
}

// Result is the outcome of a run.
type Result struct {
	Final cube.Position
	Score int
	Trace []Step
}

// Score returns the password for a final position.
func Score(p cube.Position) int {
	return 1000*(p.Row+1) + 4*(p.Col+1) + p.Facing.Ordinal()
}

// Option configures a run.
type Option func(*config)

type config struct {
	trace bool
}

// WithTrace records one Step per instruction in Result.Trace.
func WithTrace(enabled bool) Option {
	return func(c *config) {
		c.trace = enabled
	}
}

// Run walks instructions from the start cell of g, facing East.
func Run(g *grid.Grid, instructions []types.Instruction, mode Mode, opts ...Option) (Result, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	row, col, err := g.Start()
	if err != nil {
		return Result{}, err
	}

	w := &walker{
		grid: g,
		mode: mode,
		pos:  cube.Position{Row: row, Col: col, Facing: cube.East},
	}

	var trace []Step
	if cfg.trace {
		trace = make([]Step, 0, len(instructions))
	}

	for i, in := range instructions {
		var wraps int
		var blocked bool

		switch in.Kind {
		case types.KindRotate:
			w.turn(in.Turn)
		case types.KindMove:
			wraps, blocked, err = w.move(in.Steps)
			if err != nil {
				return Result{}, err
			}
		}

		if cfg.trace {
			trace = append(trace, w.step(i, in, wraps, blocked))
		}
	}

	return Result{Final: w.pos, Score: Score(w.pos), Trace: trace}, nil
}

// walker owns the only mutable state of a run.
type walker struct {
	grid *grid.Grid
	mode Mode
	pos  cube.Position
}

func (w *walker) turn(t types.Turn) {
	if t == types.TurnLeft {
		w.pos.Facing = w.pos.Facing.Rotate(cube.Counterclockwise)
		return
	}
	w.pos.Facing = w.pos.Facing.Rotate(cube.Clockwise)
}

// move walks up to steps cells. A wall ends the whole instruction.
func (w *walker) move(steps int) (wraps int, blocked bool, err error) {
	lo, hi := w.bounds()
	for i := 0; i < steps; i++ {
		next, inside := w.next(lo, hi)
		if !inside {
			next, err = w.wrap(lo, hi)
			if err != nil {
				return wraps, false, err
			}
		}

		if w.grid.IsWall(next.Row, next.Col) {
			return wraps, true, nil
		}
		w.pos = next

		if !inside {
			wraps++
			lo, hi = w.bounds()
		}
	}
	return wraps, false, nil
}

// bounds returns the on-map range along the current heading: the row's
// columns for East/West, the column's contiguous rows for North/South.
func (w *walker) bounds() (int, int) {
	if w.pos.Facing.Horizontal() {
		return w.grid.RowBounds(w.pos.Row)
	}
	return w.grid.ColumnRun(w.pos.Col, w.pos.Row)
}

func (w *walker) next(lo, hi int) (cube.Position, bool) {
	dr, dc := w.pos.Facing.Delta()
	p := cube.Position{Row: w.pos.Row + dr, Col: w.pos.Col + dc, Facing: w.pos.Facing}
	v := p.Row
	if w.pos.Facing.Horizontal() {
		v = p.Col
	}
	return p, v >= lo && v < hi
}

func (w *walker) wrap(lo, hi int) (cube.Position, error) {
	switch w.mode.kind {
	case cubeMode:
		return w.mode.net.Wrap(w.pos, w.pos.Facing)
	default:
		p := w.pos
		switch p.Facing {
		case cube.East:
			p.Col = lo
		case cube.West:
			p.Col = hi - 1
		case cube.South:
			p.Row = lo
		case cube.North:
			p.Row = hi - 1
		}
		return p, nil
	}
}

func (w *walker) step(i int, in types.Instruction, wraps int, blocked bool) Step {
	s := Step{
		Index:       i,
		Instruction: in.Notation(),
		Row:         w.pos.Row,
		Col:         w.pos.Col,
		Facing:      w.pos.Facing.String(),
		Wraps:       wraps,
		Blocked:     blocked,
	}
	if net := w.mode.Net(); net != nil {
		if f, ok := net.FaceAt(w.pos.Row, w.pos.Col); ok {
			s.Face = f.Side.String()
		}
	}
	return s
}
