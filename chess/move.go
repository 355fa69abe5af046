package chess

import "strings"

// MoveFlag marks the special move kinds that relocate or remove pieces
// beyond the plain from/to relocation.
type MoveFlag uint8

const (
	FlagNone      MoveFlag = 0
	FlagCastle    MoveFlag = 1
	FlagEnPassant MoveFlag = 2
)

// Move is a value object: origin, destination, an optional promotion piece
// type and a special-move flag. Moves are comparable; legality is
// membership in the game's current legal move set.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
	Flags     MoveFlag
}

// String produces the coordinate representation of the move
// (e.g. "e2e4", "e7e8q"). Castling prints as the king move.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	switch m.Promotion {
	case Knight:
		s += "n"
	case Bishop:
		s += "b"
	case Rook:
		s += "r"
	case Queen:
		s += "q"
	}
	return s
}

// ParseMove converts a coordinate move string ("e2e4", "e7e8q") into a
// Move, resolving the castling and en-passant flags against the current
// position. The result is not checked for legality; ApplyMove does that.
func (g *Game) ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) < 4 || len(s) > 5 {
		return Move{}, &MalformedSquareError{Input: s}
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}

	m := Move{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			m.Promotion = Knight
		case 'b':
			m.Promotion = Bishop
		case 'r':
			m.Promotion = Rook
		case 'q':
			m.Promotion = Queen
		default:
			return Move{}, &InvalidPromotionError{Move: m}
		}
	}

	switch p := g.board.PieceAt(from); {
	case p.Type() == King && abs(to.File()-from.File()) == 2:
		m.Flags = FlagCastle
	case p.Type() == Pawn && to == g.enPassant && to.File() != from.File():
		m.Flags = FlagEnPassant
	}
	return m, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
