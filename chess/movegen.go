package chess

// Movement offsets as (file, rank) deltas. Sliding pieces project along
// their directions until blocked; knight and king moves are fixed sets.
var (
	knightOffsets = [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	kingOffsets = [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	rookDirs   = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
)

// promotionTypes is the set of pieces a pawn may promote to.
var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// IsAttacked reports whether the given square is attacked by any piece of
// the given side. Pawns count with their capture pattern only: a pawn does
// not attack the square directly ahead of it.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	file, rank := sq.File(), sq.Rank()

	// Pawns: look at the two squares a pawn of 'by' would capture from.
	pawnRank := rank - 1
	if by == Black {
		pawnRank = rank + 1
	}
	pawn := MakePiece(by, Pawn)
	if b.PieceAt(SquareOf(file-1, pawnRank)) == pawn {
		return true
	}
	if b.PieceAt(SquareOf(file+1, pawnRank)) == pawn {
		return true
	}

	// Knights
	knight := MakePiece(by, Knight)
	for _, off := range knightOffsets {
		if b.PieceAt(SquareOf(file+off[0], rank+off[1])) == knight {
			return true
		}
	}

	// Kings
	king := MakePiece(by, King)
	for _, off := range kingOffsets {
		if b.PieceAt(SquareOf(file+off[0], rank+off[1])) == king {
			return true
		}
	}

	// Sliders: walk each ray until the first occupied square and test its identity.
	if b.rayHits(file, rank, rookDirs, MakePiece(by, Rook), MakePiece(by, Queen)) {
		return true
	}
	return b.rayHits(file, rank, bishopDirs, MakePiece(by, Bishop), MakePiece(by, Queen))
}

func (b *Board) rayHits(file, rank int, dirs [4][2]int, want1, want2 Piece) bool {
	for _, d := range dirs {
		for f, r := file+d[0], rank+d[1]; ; f, r = f+d[0], r+d[1] {
			sq := SquareOf(f, r)
			if sq == NoSquare {
				break
			}
			p := b.PieceAt(sq)
			if p == NoPiece {
				continue
			}
			if p == want1 || p == want2 {
				return true
			}
			break
		}
	}
	return false
}

// InCheck reports whether the given side's king is attacked.
func (b *Board) InCheck(c Color) bool {
	ks := b.KingSquare(c)
	if ks == NoSquare {
		return false
	}
	return b.IsAttacked(ks, c.Other())
}

// pseudoMoves produces the candidate moves of the side to move by movement
// pattern alone, ignoring whether the mover's own king is left in check.
// Castling is the exception: its not-through-attack preconditions are part
// of the movement rule and are enforced here.
func (g *Game) pseudoMoves() []Move {
	moves := make([]Move, 0, 64)
	for sq := Square(0); sq < 64; sq++ {
		p := g.board.PieceAt(sq)
		if p == NoPiece || p.Color() != g.sideToMove {
			continue
		}
		switch p.Type() {
		case Pawn:
			moves = g.pawnMoves(moves, sq)
		case Knight:
			moves = g.offsetMoves(moves, sq, knightOffsets)
		case Bishop:
			moves = g.slidingMoves(moves, sq, bishopDirs[:])
		case Rook:
			moves = g.slidingMoves(moves, sq, rookDirs[:])
		case Queen:
			moves = g.slidingMoves(moves, sq, rookDirs[:])
			moves = g.slidingMoves(moves, sq, bishopDirs[:])
		case King:
			moves = g.offsetMoves(moves, sq, kingOffsets)
			moves = g.castlingMoves(moves)
		}
	}
	return moves
}

// offsetMoves appends fixed-offset moves (knight, king), filtered to board
// bounds and to squares not occupied by a friendly piece.
func (g *Game) offsetMoves(dst []Move, from Square, offsets [8][2]int) []Move {
	for _, off := range offsets {
		to := SquareOf(from.File()+off[0], from.Rank()+off[1])
		if to == NoSquare {
			continue
		}
		if p := g.board.PieceAt(to); p != NoPiece && p.Color() == g.sideToMove {
			continue
		}
		dst = append(dst, Move{From: from, To: to})
	}
	return dst
}

// slidingMoves appends ray moves: each direction is projected until
// blocked. A friendly blocker is excluded, an enemy blocker is included as
// a capture and stops the projection.
func (g *Game) slidingMoves(dst []Move, from Square, dirs [][2]int) []Move {
	for _, d := range dirs {
		for f, r := from.File()+d[0], from.Rank()+d[1]; ; f, r = f+d[0], r+d[1] {
			to := SquareOf(f, r)
			if to == NoSquare {
				break
			}
			p := g.board.PieceAt(to)
			if p == NoPiece {
				dst = append(dst, Move{From: from, To: to})
				continue
			}
			if p.Color() != g.sideToMove {
				dst = append(dst, Move{From: from, To: to})
			}
			break
		}
	}
	return dst
}

// pawnMoves appends pushes, double pushes, diagonal captures, en-passant
// captures and promotions. A push or capture onto the final rank is
// emitted once per promotion piece type.
func (g *Game) pawnMoves(dst []Move, from Square) []Move {
	dir, startRank, lastRank := 1, 1, 7
	if g.sideToMove == Black {
		dir, startRank, lastRank = -1, 6, 0
	}
	file, rank := from.File(), from.Rank()

	// Forward pushes onto empty squares.
	one := SquareOf(file, rank+dir)
	if one != NoSquare && g.board.PieceAt(one) == NoPiece {
		dst = g.appendPawnMove(dst, from, one, lastRank, FlagNone)
		if rank == startRank {
			two := SquareOf(file, rank+2*dir)
			if g.board.PieceAt(two) == NoPiece {
				dst = append(dst, Move{From: from, To: two})
			}
		}
	}

	// Diagonal captures, onto an enemy piece or the en-passant target.
	for _, df := range [2]int{-1, 1} {
		to := SquareOf(file+df, rank+dir)
		if to == NoSquare {
			continue
		}
		if p := g.board.PieceAt(to); p != NoPiece && p.Color() != g.sideToMove {
			dst = g.appendPawnMove(dst, from, to, lastRank, FlagNone)
		} else if to == g.enPassant {
			dst = append(dst, Move{From: from, To: to, Flags: FlagEnPassant})
		}
	}
	return dst
}

func (g *Game) appendPawnMove(dst []Move, from, to Square, lastRank int, flags MoveFlag) []Move {
	if to.Rank() != lastRank {
		return append(dst, Move{From: from, To: to, Flags: flags})
	}
	for _, pt := range promotionTypes {
		dst = append(dst, Move{From: from, To: to, Promotion: pt, Flags: flags})
	}
	return dst
}

// castlingMoves appends the castling candidates for the side to move:
// rights intact, all squares between king and rook empty, the rook on its
// home square, and the king not starting on, passing through, or landing
// on an attacked square.
func (g *Game) castlingMoves(dst []Move) []Move {
	them := g.sideToMove.Other()
	if g.sideToMove == White {
		if g.castlingRights&CastlingWhiteK != 0 &&
			g.board.PieceAt(SquareF1) == NoPiece && g.board.PieceAt(SquareG1) == NoPiece &&
			g.board.PieceAt(SquareH1) == WhiteRook &&
			!g.board.IsAttacked(SquareE1, them) && !g.board.IsAttacked(SquareF1, them) && !g.board.IsAttacked(SquareG1, them) {
			dst = append(dst, Move{From: SquareE1, To: SquareG1, Flags: FlagCastle})
		}
		if g.castlingRights&CastlingWhiteQ != 0 &&
			g.board.PieceAt(SquareD1) == NoPiece && g.board.PieceAt(SquareC1) == NoPiece && g.board.PieceAt(Square(1)) == NoPiece &&
			g.board.PieceAt(SquareA1) == WhiteRook &&
			!g.board.IsAttacked(SquareE1, them) && !g.board.IsAttacked(SquareD1, them) && !g.board.IsAttacked(SquareC1, them) {
			dst = append(dst, Move{From: SquareE1, To: SquareC1, Flags: FlagCastle})
		}
		return dst
	}
	if g.castlingRights&CastlingBlackK != 0 &&
		g.board.PieceAt(SquareF8) == NoPiece && g.board.PieceAt(SquareG8) == NoPiece &&
		g.board.PieceAt(SquareH8) == BlackRook &&
		!g.board.IsAttacked(SquareE8, them) && !g.board.IsAttacked(SquareF8, them) && !g.board.IsAttacked(SquareG8, them) {
		dst = append(dst, Move{From: SquareE8, To: SquareG8, Flags: FlagCastle})
	}
	if g.castlingRights&CastlingBlackQ != 0 &&
		g.board.PieceAt(SquareD8) == NoPiece && g.board.PieceAt(SquareC8) == NoPiece && g.board.PieceAt(Square(57)) == NoPiece &&
		g.board.PieceAt(SquareA8) == BlackRook &&
		!g.board.IsAttacked(SquareE8, them) && !g.board.IsAttacked(SquareD8, them) && !g.board.IsAttacked(SquareC8, them) {
		dst = append(dst, Move{From: SquareE8, To: SquareC8, Flags: FlagCastle})
	}
	return dst
}
