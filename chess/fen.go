package chess

import (
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// pieceFromChar converts a FEN character to the corresponding Piece constant.
func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// charFromPiece converts a Piece constant to its FEN character representation.
func charFromPiece(p Piece) byte {
	switch p {
	case WhitePawn:
		return 'P'
	case WhiteKnight:
		return 'N'
	case WhiteBishop:
		return 'B'
	case WhiteRook:
		return 'R'
	case WhiteQueen:
		return 'Q'
	case WhiteKing:
		return 'K'
	case BlackPawn:
		return 'p'
	case BlackKnight:
		return 'n'
	case BlackBishop:
		return 'b'
	case BlackRook:
		return 'r'
	case BlackQueen:
		return 'q'
	case BlackKing:
		return 'k'
	default:
		return '?' // should not happen for valid pieces
	}
}

// String returns the piece's FEN letter, or "." for an empty square.
func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	return string(charFromPiece(p))
}

// ParseFEN parses a FEN string and returns a game set up to that position.
// Positions must carry exactly one king per side.
func ParseFEN(fen string) (*Game, error) {
	fail := func(reason string) (*Game, error) {
		return nil, &InvalidFENError{FEN: fen, Reason: reason}
	}

	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fail("not enough fields")
	}

	g := &Game{enPassant: NoSquare, fullmoveNumber: 1}

	// 1. Piece placement
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fail("incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i // FEN lists rank 8 first
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return fail("unrecognized piece character")
			}
			if file >= 8 {
				return fail("too many squares in rank")
			}
			g.board.Place(SquareOf(file, rank), piece)
			file++
		}
		if file != 8 {
			return fail("rank does not have 8 columns")
		}
	}

	// 2. Side to move
	switch fields[1] {
	case "w":
		g.sideToMove = White
	case "b":
		g.sideToMove = Black
	default:
		return fail("side to move must be 'w' or 'b'")
	}

	// 3. Castling rights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				g.castlingRights |= CastlingWhiteK
			case 'Q':
				g.castlingRights |= CastlingWhiteQ
			case 'k':
				g.castlingRights |= CastlingBlackK
			case 'q':
				g.castlingRights |= CastlingBlackQ
			default:
				return fail("invalid castling rights character")
			}
		}
	}

	// 4. En passant target square
	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return fail("en passant square out of range")
		}
		g.enPassant = sq
	}

	// 5. Halfmove clock
	if len(fields) > 4 {
		halfmove, err := strconv.Atoi(fields[4])
		if err != nil || halfmove < 0 {
			return fail("halfmove clock is not a number")
		}
		g.halfmoveClock = halfmove
	}

	// 6. Fullmove number
	if len(fields) > 5 {
		fullmove, err := strconv.Atoi(fields[5])
		if err != nil || fullmove < 1 {
			return fail("fullmove number is not a number")
		}
		g.fullmoveNumber = fullmove
	}

	if !oneKingEach(&g.board) {
		return fail("position must have exactly one king per side")
	}

	g.key = g.computeZobrist()
	g.history = append(g.history, g.key)
	return g, nil
}

func oneKingEach(b *Board) bool {
	white, black := 0, 0
	for sq := Square(0); sq < 64; sq++ {
		switch b.PieceAt(sq) {
		case WhiteKing:
			white++
		case BlackKing:
			black++
		}
	}
	return white == 1 && black == 1
}

// FEN produces the FEN string representation of the game's current state.
func (g *Game) FEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := g.board.PieceAt(SquareOf(file, rank))
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteByte(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	if g.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	// 3. Castling rights
	if g.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if g.castlingRights&CastlingWhiteK != 0 {
			sb.WriteByte('K')
		}
		if g.castlingRights&CastlingWhiteQ != 0 {
			sb.WriteByte('Q')
		}
		if g.castlingRights&CastlingBlackK != 0 {
			sb.WriteByte('k')
		}
		if g.castlingRights&CastlingBlackQ != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	// 4. En passant square
	sb.WriteString(g.enPassant.String())
	sb.WriteByte(' ')

	// 5-6. Clocks
	sb.WriteString(strconv.Itoa(g.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.fullmoveNumber))
	return sb.String()
}
