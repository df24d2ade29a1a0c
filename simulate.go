package cubenet

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/SeamusWaldron/cubenet/internal/cube"
	"github.com/SeamusWaldron/cubenet/internal/grid"
	"github.com/SeamusWaldron/cubenet/internal/notation"
	"github.com/SeamusWaldron/cubenet/internal/walk"
	"github.com/SeamusWaldron/cubenet/pkg/types"
)

// maxLineSize bounds a single input line; path lines run to several KB.
const maxLineSize = 1 << 20

// Result is the outcome of a walk.
type Result = walk.Result

// Parse reads a map, a blank line and a path line.
func Parse(r io.Reader) (*grid.Grid, []types.Instruction, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			if len(lines) == 0 {
				continue
			}
			break
		}
		lines = append(lines, line)
	}

	g, err := grid.Parse(lines)
	if err != nil {
		return nil, nil, err
	}

	var path string
	for sc.Scan() {
		if path = strings.TrimSpace(sc.Text()); path != "" {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read input: %w", err)
	}
	if path == "" {
		return nil, nil, ErrNoInstructions
	}

	instructions, err := notation.ParseInstructions(path)
	if err != nil {
		return nil, nil, err
	}
	return g, instructions, nil
}

// SimulateFlat walks the path with linear wraparound and returns the password.
func SimulateFlat(g *grid.Grid, instructions []types.Instruction) (int, error) {
	res, err := walk.Run(g, instructions, walk.Flat())
	if err != nil {
		return 0, err
	}
	return res.Score, nil
}

// SimulateCube folds the map into a cube, walks the path across its faces
// and returns the password.
func SimulateCube(g *grid.Grid, instructions []types.Instruction) (int, error) {
	net, err := cube.Resolve(g)
	if err != nil {
		return 0, err
	}
	res, err := walk.Run(g, instructions, walk.Cube(net))
	if err != nil {
		return 0, err
	}
	return res.Score, nil
}

// Fold resolves the cube net drawn on g.
func Fold(g *grid.Grid) (*cube.Net, error) {
	return cube.Resolve(g)
}

// Walk runs the path in flat mode, or in cube mode when net is non-nil.
func Walk(g *grid.Grid, instructions []types.Instruction, net *cube.Net, opts ...Option) (Result, error) {
	mode := walk.Flat()
	if net != nil {
		mode = walk.Cube(net)
	}
	return walk.Run(g, instructions, mode, opts...)
}
