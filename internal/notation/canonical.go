// Package notation parses and formats walk instruction strings.
package notation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SeamusWaldron/cubenet/pkg/types"
)

var ErrUnknownInstructionToken = errors.New("cubenet: unknown instruction token")

// ParseInstructions parses a string such as "10R5L5" into instructions.
// Digit runs become moves; R and L become turns.
func ParseInstructions(s string) ([]types.Instruction, error) {
	s = strings.TrimSpace(s)
	instructions := make([]types.Instruction, 0, len(s)/2+1)

	for i := 0; i < len(s); {
		switch c := s[i]; {
		case c == 'R':
			instructions = append(instructions, types.Rotate(types.TurnRight))
			i++
		case c == 'L':
			instructions = append(instructions, types.Rotate(types.TurnLeft))
			i++
		case c >= '0' && c <= '9':
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(s[i:j])
			if err != nil {
				return nil, fmt.Errorf("%w %q at offset %d: %v", ErrUnknownInstructionToken, s[i:j], i, err)
			}
			instructions = append(instructions, types.Move(n))
			i = j
		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrUnknownInstructionToken, c, i)
		}
	}

	return instructions, nil
}

// FormatInstructions joins instructions back into puzzle notation.
func FormatInstructions(instructions []types.Instruction) string {
	var b strings.Builder
	for _, in := range instructions {
		b.WriteString(in.Notation())
	}
	return b.String()
}

// CountMoves returns the total number of cells the instructions ask to walk.
func CountMoves(instructions []types.Instruction) int {
	total := 0
	for _, in := range instructions {
		if in.Kind == types.KindMove {
			total += in.Steps
		}
	}
	return total
}
