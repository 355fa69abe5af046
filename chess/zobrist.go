package chess

import "math/rand"

// Zobrist hashing tables for pieces, castling, en passant, and side to move.
// The key backs threefold-repetition detection; it must encode everything
// the repetition rule cares about.
var (
	zobristPiece     [15][64]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64
)

func init() {
	// Fixed seed for reproducibility in tests.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 15; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// computeZobrist calculates the Zobrist key for the current game state.
func (g *Game) computeZobrist() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		if p := g.board.PieceAt(sq); p != NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	if g.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[g.castlingRights]
	if g.enPassant != NoSquare {
		key ^= zobristEnPassant[g.enPassant.File()]
	}
	return key
}
