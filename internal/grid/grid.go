// Package grid loads the flat map a net is drawn on.
package grid

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrEmptyGrid   = errors.New("cubenet: grid has no rows")
	ErrEmptyRow    = errors.New("cubenet: row has no cells")
	ErrInvalidCell = errors.New("cubenet: invalid cell")
	ErrNoStartCell = errors.New("cubenet: no open cell on the first row")
)

// Cell characters.
const (
	Void = ' '
	Open = '.'
	Wall = '#'
)

// Row is one line of the map. Columns in [Start, End) are on the net.
type Row struct {
	Start int
	End   int
	walls []int // sorted
}

// ParseRow reads a single map line. Leading blanks pad the row, trailing
// blanks are ignored.
func ParseRow(line string) (Row, error) {
	line = strings.TrimRight(line, " ")
	start := strings.IndexAny(line, string(Open)+string(Wall))
	if start < 0 {
		return Row{}, ErrEmptyRow
	}

	r := Row{Start: start, End: len(line)}
	for col := start; col < len(line); col++ {
		switch line[col] {
		case Open:
		case Wall:
			r.walls = append(r.walls, col)
		default:
			return Row{}, fmt.Errorf("%w %q at column %d", ErrInvalidCell, line[col], col)
		}
	}
	return r, nil
}

// Contains reports whether col is on the net.
func (r Row) Contains(col int) bool {
	return col >= r.Start && col < r.End
}

// IsWall reports whether col holds a wall.
func (r Row) IsWall(col int) bool {
	i := sort.SearchInts(r.walls, col)
	return i < len(r.walls) && r.walls[i] == col
}

// Grid is the whole map.
type Grid struct {
	rows  []Row
	width int
}

// Parse reads map lines until the end of lines.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{rows: make([]Row, 0, len(lines))}
	for i, line := range lines {
		r, err := ParseRow(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		g.rows = append(g.rows, r)
		g.width = max(g.width, r.End)
	}
	return g, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.rows)
}

// Width returns the largest column end over all rows.
func (g *Grid) Width() int {
	return g.width
}

// Row returns row i.
func (g *Grid) Row(i int) Row {
	return g.rows[i]
}

// Contains reports whether (row, col) is on the net.
func (g *Grid) Contains(row, col int) bool {
	if row < 0 || row >= len(g.rows) {
		return false
	}
	return g.rows[row].Contains(col)
}

// IsWall reports whether (row, col) is a wall. Cells off the net are not.
func (g *Grid) IsWall(row, col int) bool {
	if row < 0 || row >= len(g.rows) {
		return false
	}
	return g.rows[row].IsWall(col)
}

// RowBounds returns the on-net column range of row.
func (g *Grid) RowBounds(row int) (start, end int) {
	r := g.rows[row]
	return r.Start, r.End
}

// ColumnRun returns the contiguous range of rows around row whose bounds
// contain col.
func (g *Grid) ColumnRun(col, row int) (start, end int) {
	start, end = row, row+1
	for start > 0 && g.rows[start-1].Contains(col) {
		start--
	}
	for end < len(g.rows) && g.rows[end].Contains(col) {
		end++
	}
	return start, end
}

// Start returns the leftmost open cell of the first row.
func (g *Grid) Start() (row, col int, err error) {
	if len(g.rows) == 0 {
		return 0, 0, ErrNoStartCell
	}
	first := g.rows[0]
	for col := first.Start; col < first.End; col++ {
		if !first.IsWall(col) {
			return 0, col, nil
		}
	}
	return 0, 0, ErrNoStartCell
}

func (g *Grid) String() string {
	var b strings.Builder
	for _, r := range g.rows {
		b.WriteString(strings.Repeat(string(Void), r.Start))
		for col := r.Start; col < r.End; col++ {
			if r.IsWall(col) {
				b.WriteByte(Wall)
			} else {
				b.WriteByte(Open)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
