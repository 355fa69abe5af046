package chess

import (
	"errors"
	"fmt"
)

// ErrGameOver is returned by ApplyMove once the game has reached a
// terminal classification.
var ErrGameOver = errors.New("the game is already over")

// IllegalMoveError is returned when a candidate move is not in the legal
// move set. The caller recovers by re-prompting; it is never fatal.
type IllegalMoveError struct {
	Move Move
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("the move %q is illegal", e.Move.String())
}

// InvalidPromotionError is returned when a pawn move reaches the last rank
// without a promotion piece type, or any other move specifies one.
type InvalidPromotionError struct {
	Move Move
}

func (e *InvalidPromotionError) Error() string {
	return fmt.Sprintf("the move %q has an invalid promotion", e.Move.String())
}

// MalformedSquareError is returned at the input boundary for coordinates
// that do not denote a board square.
type MalformedSquareError struct {
	Input string
}

func (e *MalformedSquareError) Error() string {
	return fmt.Sprintf("the input %q is invalid", e.Input)
}

// InvalidFENError is returned by ParseFEN for unparseable position strings.
type InvalidFENError struct {
	FEN    string
	Reason string
}

func (e *InvalidFENError) Error() string {
	return fmt.Sprintf("the fen code %q is invalid: %s", e.FEN, e.Reason)
}
