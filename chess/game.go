package chess

import "golang.org/x/exp/slices"

// Status classifies the position for the side to move.
type Status uint8

const (
	StatusOngoing Status = iota
	// StatusCheck: the side to move is in check but has legal moves.
	StatusCheck
	// StatusCheckmate: the side to move is in check with no legal moves.
	StatusCheckmate
	// StatusStalemate: not in check, no legal moves.
	StatusStalemate
	// StatusDrawFiftyMove: 100 half-moves without a capture or pawn move.
	StatusDrawFiftyMove
	// StatusDrawRepetition: the position occurred three times.
	StatusDrawRepetition
)

// Terminal reports whether the status ends the game.
func (s Status) Terminal() bool { return s >= StatusCheckmate }

func (s Status) String() string {
	switch s {
	case StatusCheck:
		return "check"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	case StatusDrawFiftyMove:
		return "draw (fifty-move rule)"
	case StatusDrawRepetition:
		return "draw (threefold repetition)"
	default:
		return "ongoing"
	}
}

// Game is the turn state machine. It exclusively owns the board, the
// castling rights, the en-passant target and the clocks; every query
// returns derived values, never aliases into internal storage. One Game
// value is mutated by exactly one ApplyMove at a time.
type Game struct {
	board          Board
	sideToMove     Color
	castlingRights CastlingRights
	enPassant      Square
	halfmoveClock  int
	fullmoveNumber int

	// Zobrist key of the current position plus the keys of every position
	// since the last irreversible move, for threefold repetition.
	key     uint64
	history []uint64
}

// NewGame returns a game in the standard initial position, White to move,
// all castling rights available, no en-passant target.
func NewGame() *Game {
	g, err := ParseFEN(FENStartPos)
	if err != nil {
		panic("chess: bad start position: " + err.Error())
	}
	return g
}

// Clone returns an independent copy of the game.
func (g *Game) Clone() *Game {
	ng := *g
	ng.history = append([]uint64(nil), g.history...)
	return &ng
}

// SideToMove reports which side is to play.
func (g *Game) SideToMove() Color { return g.sideToMove }

// CastlingRights returns the remaining castling rights.
func (g *Game) CastlingRights() CastlingRights { return g.castlingRights }

// EnPassantSquare returns the current en-passant target square or NoSquare.
// It is set only on the move immediately after a pawn double-step.
func (g *Game) EnPassantSquare() Square { return g.enPassant }

// HalfmoveClock counts half-moves since the last capture or pawn advance.
func (g *Game) HalfmoveClock() int { return g.halfmoveClock }

// FullmoveNumber starts at 1 and increments after Black's move.
func (g *Game) FullmoveNumber() int { return g.fullmoveNumber }

// Hash returns the Zobrist key of the current position.
func (g *Game) Hash() uint64 { return g.key }

// PieceAt returns the piece on a square.
func (g *Game) PieceAt(sq Square) Piece { return g.board.PieceAt(sq) }

// Squares returns a snapshot of the board for display.
func (g *Game) Squares() [64]Piece { return g.board.Squares() }

// IsAttacked reports whether the square is attacked by the given side.
func (g *Game) IsAttacked(sq Square, by Color) bool { return g.board.IsAttacked(sq, by) }

// InCheck reports whether the given side's king is attacked.
func (g *Game) InCheck(c Color) bool { return g.board.InCheck(c) }

// LegalMoves returns the legal moves of the side to move, sorted for
// stable presentation. A pseudo-legal candidate survives iff simulating it
// on a scratch board leaves the mover's own king unattacked; this single
// filter also keeps the king off attacked squares and enforces pins.
func (g *Game) LegalMoves() []Move {
	pseudo := g.pseudoMoves()
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if !g.leavesKingInCheck(m) {
			legal = append(legal, m)
		}
	}
	slices.SortFunc(legal, moveLess)
	return legal
}

func moveLess(a, b Move) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	if a.To != b.To {
		return a.To < b.To
	}
	return a.Promotion < b.Promotion
}

// leavesKingInCheck simulates the move on a copy of the board and reports
// whether the mover's king ends up attacked. The copy is created and
// discarded within this call; the real game is untouched.
func (g *Game) leavesKingInCheck(m Move) bool {
	sim := g.board
	sim.applyMove(m, g.sideToMove)
	return sim.InCheck(g.sideToMove)
}

// Status classifies the current position for the side to move. Mate and
// stalemate are decided before the draw rules, so a mating move on the
// hundredth half-move still ends the game decisively.
func (g *Game) Status() Status {
	hasMoves := len(g.LegalMoves()) > 0
	inCheck := g.InCheck(g.sideToMove)
	switch {
	case inCheck && !hasMoves:
		return StatusCheckmate
	case !inCheck && !hasMoves:
		return StatusStalemate
	case g.halfmoveClock >= 100:
		return StatusDrawFiftyMove
	case g.repeated():
		return StatusDrawRepetition
	case inCheck:
		return StatusCheck
	default:
		return StatusOngoing
	}
}

// repeated reports a threefold repetition of the current position within
// the reversible-move history. The Zobrist key encodes side to move,
// castling rights and en-passant file, as the rule requires.
func (g *Game) repeated() bool {
	count := 0
	for _, k := range g.history {
		if k == g.key {
			count++
			if count >= 3 {
				return true
			}
		}
	}
	return false
}

// ApplyMove validates the candidate against the current legal move set and
// applies it. The game either commits the move fully or is left untouched:
// validation happens before any mutation. The returned status classifies
// the position for the new side to move.
func (g *Game) ApplyMove(m Move) (Status, error) {
	status := g.Status()
	if status.Terminal() {
		return status, ErrGameOver
	}
	if !m.From.Valid() || !m.To.Valid() {
		return status, &MalformedSquareError{Input: m.String()}
	}
	if err := g.checkPromotion(m); err != nil {
		return status, err
	}
	if !slices.Contains(g.LegalMoves(), m) {
		return status, &IllegalMoveError{Move: m}
	}

	g.apply(m)
	return g.Status(), nil
}

// checkPromotion rejects malformed promotion shapes before the membership
// test so the caller sees the specific error: a pawn reaching the final
// rank must name queen, rook, bishop or knight, and nothing else may name
// a promotion at all.
func (g *Game) checkPromotion(m Move) error {
	p := g.board.PieceAt(m.From)
	lastRank := 7
	if g.sideToMove == Black {
		lastRank = 0
	}
	promoting := p.Type() == Pawn && p.Color() == g.sideToMove && m.To.Rank() == lastRank

	switch m.Promotion {
	case NoPieceType:
		if promoting {
			return &InvalidPromotionError{Move: m}
		}
	case Queen, Rook, Bishop, Knight:
		if !promoting {
			return &InvalidPromotionError{Move: m}
		}
	default:
		return &InvalidPromotionError{Move: m}
	}
	return nil
}

// apply mutates the game with an already-validated move: board changes,
// castling rights, en-passant target, clocks, side to move and the
// repetition history.
func (g *Game) apply(m Move) {
	moved := g.board.PieceAt(m.From)
	captured := g.board.PieceAt(m.To)
	if m.Flags == FlagEnPassant {
		captured = MakePiece(g.sideToMove.Other(), Pawn)
	}

	g.board.applyMove(m, g.sideToMove)

	// Moving a king or rook revokes that side's rights; so does capturing
	// a rook on its home square.
	g.castlingRights &^= rightsLostFrom(m.From, moved)
	if captured != NoPiece {
		g.castlingRights &^= rightsLostFrom(m.To, captured)
	}

	// The en-passant target exists only immediately after a double step.
	g.enPassant = NoSquare
	if moved.Type() == Pawn && abs(m.To.Rank()-m.From.Rank()) == 2 {
		g.enPassant = (m.From + m.To) / 2
	}

	irreversible := moved.Type() == Pawn || captured != NoPiece
	if irreversible {
		g.halfmoveClock = 0
	} else {
		g.halfmoveClock++
	}
	if g.sideToMove == Black {
		g.fullmoveNumber++
	}
	g.sideToMove = g.sideToMove.Other()

	g.key = g.computeZobrist()
	if irreversible {
		// Earlier positions can never recur; drop them.
		g.history = g.history[:0]
	}
	g.history = append(g.history, g.key)
}

// rightsLostFrom maps a king or rook leaving (or being captured on) a home
// square to the castling rights that disappear with it.
func rightsLostFrom(sq Square, p Piece) CastlingRights {
	switch p {
	case WhiteKing:
		return CastlingWhiteK | CastlingWhiteQ
	case BlackKing:
		return CastlingBlackK | CastlingBlackQ
	case WhiteRook:
		switch sq {
		case SquareA1:
			return CastlingWhiteQ
		case SquareH1:
			return CastlingWhiteK
		}
	case BlackRook:
		switch sq {
		case SquareA8:
			return CastlingBlackQ
		case SquareH8:
			return CastlingBlackK
		}
	}
	return 0
}
