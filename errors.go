package cubenet

import (
	"errors"

	"github.com/SeamusWaldron/cubenet/internal/cube"
	"github.com/SeamusWaldron/cubenet/internal/grid"
	"github.com/SeamusWaldron/cubenet/internal/notation"
)

// Sentinel errors for the cubenet package.
var (
	// Net errors
	ErrMalformedNet = cube.ErrMalformedNet
	ErrOffNet       = cube.ErrOffNet

	// Input errors
	ErrEmptyGrid               = grid.ErrEmptyGrid
	ErrEmptyRow                = grid.ErrEmptyRow
	ErrInvalidCell             = grid.ErrInvalidCell
	ErrNoStartCell             = grid.ErrNoStartCell
	ErrUnknownInstructionToken = notation.ErrUnknownInstructionToken
	ErrNoInstructions          = errors.New("cubenet: no instruction line")
)
