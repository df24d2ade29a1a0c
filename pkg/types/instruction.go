// Package types contains shared type definitions for the cubenet application.
package types

import "strconv"

// Turn is the direction of an in-place rotation.
type Turn int

const (
	TurnLeft  Turn = -1 // Counter-clockwise quarter turn
	TurnRight Turn = 1  // Clockwise quarter turn
)

// Kind distinguishes the two instruction variants.
type Kind uint8

const (
	KindMove Kind = iota
	KindRotate
)

// Instruction is a single step of a walk: move forward some cells or turn.
type Instruction struct {
	Kind  Kind `json:"kind"`
	Steps int  `json:"steps,omitempty"`
	Turn  Turn `json:"turn,omitempty"`
}

// Move returns an instruction that walks n cells forward.
func Move(n int) Instruction {
	return Instruction{Kind: KindMove, Steps: n}
}

// Rotate returns an instruction that turns in place.
func Rotate(t Turn) Instruction {
	return Instruction{Kind: KindRotate, Turn: t}
}

// Notation returns the puzzle notation for this instruction.
// Examples: 10, R, L
func (i Instruction) Notation() string {
	if i.Kind == KindRotate {
		if i.Turn == TurnLeft {
			return "L"
		}
		return "R"
	}
	return strconv.Itoa(i.Steps)
}
