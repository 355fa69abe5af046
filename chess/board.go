package chess

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece.
type PieceType uint8

const (
	NoPieceType PieceType = 0
	Pawn        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	Rook        PieceType = 4
	Queen       PieceType = 5
	King        PieceType = 6
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// MakePiece combines a colorless type with a side to produce a concrete Piece.
func MakePiece(color Color, pt PieceType) Piece {
	if pt == NoPieceType || pt > King {
		return NoPiece
	}
	p := Piece(pt)
	if color == Black {
		p |= 8
	}
	return p
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return 1 - c }

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ

	CastlingAll = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

// Square represents a board position (0-63, rank*8+file).
type Square int

const NoSquare Square = -1

// SquareOf builds a square from file and rank indices, both in [0,7].
// Out-of-range components yield NoSquare.
func SquareOf(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

// ParseSquare converts algebraic coordinates ("e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, &MalformedSquareError{Input: s}
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, &MalformedSquareError{Input: s}
	}
	return Square(int(rank-'1')*8 + int(file-'a')), nil
}

// File returns the file index (0 = a-file).
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the rank index (0 = rank 1).
func (sq Square) Rank() int { return int(sq) / 8 }

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool { return sq >= 0 && sq < 64 }

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// Board is a mailbox of 64 squares. It holds piece occupancy and nothing
// else: no legality checking happens here, callers are trusted. The zero
// value is an empty board, and Board is a plain value so the legality
// filter can simulate moves on a copy.
type Board struct {
	squares [64]Piece
}

// PieceAt returns the piece on a square, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.squares[sq]
}

// Place puts a piece on a square, replacing any occupant.
func (b *Board) Place(sq Square, p Piece) {
	if sq.Valid() {
		b.squares[sq] = p
	}
}

// Remove clears a square and returns whatever occupied it.
func (b *Board) Remove(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	p := b.squares[sq]
	b.squares[sq] = NoPiece
	return p
}

// MovePiece relocates the piece on from to to, overwriting any occupant of
// to (a capture). En-passant captures remove a pawn from a third square;
// that is the caller's job.
func (b *Board) MovePiece(from, to Square) {
	moving := b.Remove(from)
	b.Place(to, moving)
}

// KingSquare returns the square of the given side's king, or NoSquare if
// it is absent (only possible on hand-built boards).
func (b *Board) KingSquare(c Color) Square {
	king := MakePiece(c, King)
	for sq := Square(0); sq < 64; sq++ {
		if b.squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Squares returns a copy of the occupancy array, index 0 = a1 through 63 = h8.
func (b *Board) Squares() [64]Piece { return b.squares }

// applyMove performs the piece relocations of a move for the given mover:
// capture (including the displaced en-passant pawn), the castling rook hop
// and promotion substitution. Rights and clocks are game-level state and
// are not touched here.
func (b *Board) applyMove(m Move, mover Color) {
	if m.Flags == FlagEnPassant {
		// The captured pawn sits behind the destination square.
		if mover == White {
			b.Remove(m.To - 8)
		} else {
			b.Remove(m.To + 8)
		}
	}

	b.MovePiece(m.From, m.To)

	if m.Promotion != NoPieceType {
		b.Place(m.To, MakePiece(mover, m.Promotion))
	}

	if m.Flags == FlagCastle {
		switch m.To {
		case SquareG1:
			b.MovePiece(SquareH1, SquareF1)
		case SquareC1:
			b.MovePiece(SquareA1, SquareD1)
		case SquareG8:
			b.MovePiece(SquareH8, SquareF8)
		case SquareC8:
			b.MovePiece(SquareA8, SquareD8)
		}
	}
}

// Named squares used by castling and rights bookkeeping.
const (
	SquareA1 Square = 0
	SquareC1 Square = 2
	SquareD1 Square = 3
	SquareE1 Square = 4
	SquareF1 Square = 5
	SquareG1 Square = 6
	SquareH1 Square = 7
	SquareA8 Square = 56
	SquareC8 Square = 58
	SquareD8 Square = 59
	SquareE8 Square = 60
	SquareF8 Square = 61
	SquareG8 Square = 62
	SquareH8 Square = 63
)
